package ssml

import (
	"strings"
	"testing"

	"github.com/hubenschmidt/parlador/internal/prosody"
)

func TestParsePlainTextPassthrough(t *testing.T) {
	doc, err := Parse("just plain text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Elements) != 1 {
		t.Fatalf("expected single element, got %d", len(doc.Elements))
	}
	text, ok := doc.Elements[0].(TextElement)
	if !ok || text.Text != "just plain text" {
		t.Errorf("expected TextElement with original text, got %#v", doc.Elements[0])
	}
}

func TestIsSSML(t *testing.T) {
	if !IsSSML("<speak>hello</speak>") {
		t.Error("expected <speak> document to be recognized as SSML")
	}
	if IsSSML("plain text") {
		t.Error("expected plain text not to be recognized as SSML")
	}
}

func TestParseSimpleSpeakElement(t *testing.T) {
	doc, err := Parse(`<speak>Hello world</speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plain := doc.ToPlainText()
	if !strings.Contains(plain, "Hello world") {
		t.Errorf("ToPlainText() = %q, want to contain %q", plain, "Hello world")
	}
}

func TestParseBreakElement(t *testing.T) {
	doc, err := Parse(`<speak>one<break time="500ms"/>two</speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	segments := doc.ToSynthesisSegments()
	found := false
	for _, seg := range segments {
		if seg.Text == "__break_500__" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a break segment encoding 500ms, got %#v", segments)
	}
}

func TestProsodyElementMergesMultiplicatively(t *testing.T) {
	doc, err := Parse(`<speak><prosody rate="200%" pitch="150%">fast and high</prosody></speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	segments := doc.ToSynthesisSegments()
	if len(segments) != 1 {
		t.Fatalf("expected one segment, got %d", len(segments))
	}
	if segments[0].Prosody.RateMultiplier != 2.0 {
		t.Errorf("expected rate multiplier 2.0, got %f", segments[0].Prosody.RateMultiplier)
	}
	if segments[0].Prosody.PitchMultiplier != 1.5 {
		t.Errorf("expected pitch multiplier 1.5, got %f", segments[0].Prosody.PitchMultiplier)
	}
}

func TestEmphasisMergeIsMaxNotOverwrite(t *testing.T) {
	doc, err := Parse(`<speak><prosody pitch="110%"><emphasis level="moderate">text</emphasis></prosody></speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	segments := doc.ToSynthesisSegments()
	if len(segments) != 1 {
		t.Fatalf("expected one segment, got %d", len(segments))
	}
	// Parent emphasis is 0 (default), moderate emphasis is 0.5; max(0, 0.5) = 0.5.
	if segments[0].Prosody.Emphasis != 0.5 {
		t.Errorf("expected merged emphasis 0.5 (max of parent and child), got %f", segments[0].Prosody.Emphasis)
	}
}

func TestSayAsElement(t *testing.T) {
	doc, err := Parse(`<speak><say-as interpret-as="cardinal">42</say-as></speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	segments := doc.ToSynthesisSegments()
	if len(segments) != 1 || segments[0].Text != "42" {
		t.Errorf("expected say-as text to flatten to its content, got %#v", segments)
	}
}

func TestEntityDecoding(t *testing.T) {
	doc, err := Parse(`<speak>Tom &amp; Jerry</speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plain := doc.ToPlainText()
	if !strings.Contains(plain, "Tom & Jerry") {
		t.Errorf("expected decoded entity, got %q", plain)
	}
}

func TestUnclosedAttributeValueErrors(t *testing.T) {
	_, err := Parse(`<speak><prosody rate="200%>text</prosody></speak>`)
	if err == nil {
		t.Error("expected error for unclosed attribute value")
	}
}

func TestMissingCloseBracketErrors(t *testing.T) {
	_, err := Parse(`<speak><break time="1s"</speak>`)
	if err == nil {
		t.Error("expected error for missing '>'")
	}
}

func TestEmptySpeakProducesNoSegments(t *testing.T) {
	doc, err := Parse(`<speak></speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segments := doc.ToSynthesisSegments(); len(segments) != 0 {
		t.Errorf("expected no segments for empty <speak>, got %d", len(segments))
	}
}

func TestContourPassthroughFromProsodyElement(t *testing.T) {
	doc, err := Parse(`<speak><prosody contour="(0%,100%,+20%)">rising</prosody></speak>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	segments := doc.ToSynthesisSegments()
	if len(segments) != 1 {
		t.Fatalf("expected one segment, got %d", len(segments))
	}
	if segments[0].Prosody.Contour != prosody.Rising {
		t.Errorf("expected Rising contour, got %v", segments[0].Prosody.Contour)
	}
}
