package g2p

import (
	"strings"
	"testing"

	"github.com/hubenschmidt/parlador/internal/phoneme"
)

func TestConvertExceptionLexicon(t *testing.T) {
	conv := English()
	got := conv.Convert("hello")
	if got != "h E l o" {
		t.Errorf("Convert(\"hello\") = %q, want %q", got, "h E l o")
	}
}

func TestConvertMultiWordInsertsPause(t *testing.T) {
	conv := English()
	got := conv.Convert("a a")
	if !strings.Contains(got, " "+phoneme.Pause+" ") {
		t.Errorf("expected pause token between words, got %q", got)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	if got := English().Convert(""); got != "" {
		t.Errorf("Convert(\"\") = %q, want empty string", got)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	conv := English()
	a := conv.Convert("testing phonemes")
	b := conv.Convert("testing phonemes")
	if a != b {
		t.Errorf("expected deterministic output, got %q then %q", a, b)
	}
}

func TestSpanishDigraphRules(t *testing.T) {
	conv := Spanish()
	got := conv.Convert("chico")
	if !strings.HasPrefix(got, "tS") {
		t.Errorf("Convert(\"chico\") = %q, want prefix \"tS\"", got)
	}
}

func TestSpanishCeceoContext(t *testing.T) {
	conv := Spanish()
	got := conv.Convert("cielo")
	if !strings.HasPrefix(got, "T") {
		t.Errorf("Convert(\"cielo\") = %q, want ceceo /T/ before front vowel", got)
	}
}

func TestTextToIPA(t *testing.T) {
	result := TextToIPA("hello", English(), phoneme.English())
	if result == "" {
		t.Error("expected non-empty IPA transcription")
	}
}

func TestConverterSingleton(t *testing.T) {
	if English() != English() {
		t.Error("expected English() to return the same converter instance")
	}
}
