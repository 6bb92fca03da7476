package prosody

import "testing"

func TestDetectSentenceType(t *testing.T) {
	cases := map[string]SentenceType{
		"This is a statement.":  Statement,
		"Is this a question?":   Question,
		"What time is it?":      WhQuestion,
		"Amazing!":              Exclamation,
		"¿Dónde está?":          WhQuestion,
		"¡Increíble!":           Exclamation,
	}
	for text, want := range cases {
		if got := DetectSentenceType(text); got != want {
			t.Errorf("DetectSentenceType(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestPitchContourMapping(t *testing.T) {
	if Question.PitchContour() != Rising {
		t.Error("expected Question to map to Rising contour")
	}
	if WhQuestion.PitchContour() != FallingRising {
		t.Error("expected WhQuestion to map to FallingRising contour")
	}
}

func TestConfigClamping(t *testing.T) {
	c := NewConfig().WithPitch(10).WithRate(10).WithVolume(10).WithEmphasis(10)
	if c.PitchMultiplier != 2.0 {
		t.Errorf("expected pitch clamped to 2.0, got %f", c.PitchMultiplier)
	}
	if c.RateMultiplier != 4.0 {
		t.Errorf("expected rate clamped to 4.0, got %f", c.RateMultiplier)
	}
	if c.VolumeMultiplier != 2.0 {
		t.Errorf("expected volume clamped to 2.0, got %f", c.VolumeMultiplier)
	}
	if c.Emphasis != 1.0 {
		t.Errorf("expected emphasis clamped to 1.0, got %f", c.Emphasis)
	}
}

func TestPitchAtPositionFlatIsConstant(t *testing.T) {
	c := NewConfig()
	for _, pos := range []float64{0, 0.3, 0.7, 1.0} {
		if got := c.PitchAtPosition(pos); got != 1.0 {
			t.Errorf("Flat contour at %f = %f, want 1.0", pos, got)
		}
	}
}

func TestPitchAtPositionRisingIncreases(t *testing.T) {
	c := NewConfig().WithContour(Rising)
	start := c.PitchAtPosition(0)
	end := c.PitchAtPosition(1)
	if end <= start {
		t.Errorf("expected rising contour to increase: start=%f end=%f", start, end)
	}
}

func TestPitchAtPositionClampsOutOfRange(t *testing.T) {
	c := NewConfig().WithContour(Falling)
	below := c.PitchAtPosition(-5)
	atZero := c.PitchAtPosition(0)
	if below != atZero {
		t.Errorf("expected position below 0 to clamp to 0: got %f vs %f", below, atZero)
	}
}

func TestAnalyzeSplitsSentences(t *testing.T) {
	segments := Analyze("Hello there. How are you? Great!")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	if segments[1].Prosody.Contour != FallingRising {
		t.Errorf("expected wh-question segment to carry FallingRising contour, got %v", segments[1].Prosody.Contour)
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	if segments := Analyze(""); segments != nil {
		t.Errorf("expected nil segments for empty text, got %v", segments)
	}
}

func TestAnalyzeUnpunctuatedTextIsSingleSegment(t *testing.T) {
	segments := Analyze("one sentence only")
	if len(segments) != 1 {
		t.Fatalf("expected a single segment, got %d", len(segments))
	}
}
