package parlador

import "testing"

func TestEspeakInitializeReturnsSampleRate(t *testing.T) {
	sr, err := EspeakInitialize(AudioOutputRetrieval, 500, nil, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr != SampleRate {
		t.Errorf("EspeakInitialize returned %d, want %d", sr, SampleRate)
	}
}

func TestEspeakSetVoiceByNameValidatesLanguage(t *testing.T) {
	if err := EspeakSetVoiceByName("en"); err != nil {
		t.Errorf("unexpected error for valid language: %v", err)
	}
	if err := EspeakSetVoiceByName("klingon"); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestEspeakSynth(t *testing.T) {
	samples, err := EspeakSynth("Hello", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) == 0 {
		t.Error("expected non-empty samples")
	}
}

func TestEspeakSynthUnsupportedLanguage(t *testing.T) {
	if _, err := EspeakSynth("Hello", "zz"); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestEspeakTextToPhonemes(t *testing.T) {
	phonemes, err := EspeakTextToPhonemes("Hello", "en", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if phonemes == "" {
		t.Error("expected non-empty phoneme string")
	}
}

func TestEspeakTerminateNoPanic(t *testing.T) {
	EspeakTerminate()
}
