package formant

import (
	"testing"

	"github.com/hubenschmidt/parlador/internal/phoneme"
)

func TestSynthesizePhonemeSilenceIsZero(t *testing.T) {
	s := New(DefaultConfig())
	p := phoneme.Phoneme{Symbol: "_", Category: phoneme.Silence}
	samples := s.SynthesizePhoneme(p, 100)
	for i, v := range samples {
		if v != 0 {
			t.Fatalf("sample %d of silence phoneme is %f, want 0", i, v)
		}
	}
}

func TestSynthesizePhonemeZeroDuration(t *testing.T) {
	s := New(DefaultConfig())
	p := phoneme.Phoneme{Symbol: "p", Category: phoneme.Plosive, Voiced: false}
	samples := s.SynthesizePhoneme(p, 0)
	if len(samples) != 0 {
		t.Errorf("expected zero-length output for zero duration, got %d samples", len(samples))
	}
}

func TestSynthesizePhonemeSampleCount(t *testing.T) {
	s := New(DefaultConfig())
	inv := phoneme.English()
	p, _ := inv.Get("i")
	samples := s.SynthesizePhoneme(p, 100)
	want := int(100.0 / 1000.0 * float64(SampleRate) / s.Config.Rate)
	if len(samples) != want {
		t.Errorf("got %d samples, want %d", len(samples), want)
	}
}

func TestToPCM16Clamps(t *testing.T) {
	out := ToPCM16([]float64{2.0, -2.0, 0.5})
	if out[0] != 32767 {
		t.Errorf("expected clamp to max int16 scale, got %d", out[0])
	}
	if out[1] != -32767 {
		t.Errorf("expected clamp to min int16 scale, got %d", out[1])
	}
}

func TestDeterministicSynthesis(t *testing.T) {
	inv := phoneme.English()
	p, _ := inv.Get("a")

	s1 := New(DefaultConfig())
	s2 := New(DefaultConfig())
	out1 := s1.SynthesizePhoneme(p, 50)
	out2 := s2.SynthesizePhoneme(p, 50)

	if len(out1) != len(out2) {
		t.Fatalf("length mismatch: %d vs %d", len(out1), len(out2))
	}
	for i := range out1 {
		if out1[i] != out2[i] {
			t.Fatalf("sample %d differs: %f vs %f — synthesis should be deterministic", i, out1[i], out2[i])
		}
	}
}

func TestSynthesizePhonemeWithPitchModRestoresPitch(t *testing.T) {
	s := New(DefaultConfig())
	original := s.Config.PitchHz
	p := phoneme.Phoneme{Symbol: "m", Category: phoneme.Nasal, Formants: &phoneme.Formants{F1: 250, F2: 1000, F3: 2500, B1: 60, B2: 90, B3: 150}, Voiced: true}
	s.SynthesizePhonemeWithPitchMod(p, 50, 1.5)
	if s.Config.PitchHz != original {
		t.Errorf("pitch not restored: got %f, want %f", s.Config.PitchHz, original)
	}
}

func TestSynthesizePhonemesHandlesPause(t *testing.T) {
	s := New(DefaultConfig())
	inv := phoneme.English()
	samples := s.SynthesizePhonemes(phoneme.Pause, inv)
	if len(samples) == 0 {
		t.Error("expected non-empty pause output")
	}
}
