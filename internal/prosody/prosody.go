// Package prosody classifies sentence types and computes parametric pitch
// contours applied across an utterance, plus the phrase splitter that feeds
// per-sentence prosody into the synthesis pipeline.
package prosody

import (
	"strings"
	"unicode"
)

// SentenceType is the classification a sentence receives before a contour
// is assigned to it.
type SentenceType int

const (
	Statement SentenceType = iota
	Question
	WhQuestion
	Exclamation
	Command
)

var whWords = []string{
	"what", "who", "where", "when", "why", "how", "which", "whose",
	"qué", "quién", "dónde", "cuándo", "por qué", "cómo", "cuál",
}

// DetectSentenceType classifies a trimmed sentence by its terminal/initial
// punctuation and, for questions, whether it opens with a wh-word.
func DetectSentenceType(text string) SentenceType {
	trimmed := strings.TrimSpace(text)

	if strings.HasSuffix(trimmed, "?") || strings.HasPrefix(trimmed, "¿") {
		lower := strings.ToLower(trimmed)
		content := strings.TrimLeftFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) })
		for _, w := range whWords {
			if strings.HasPrefix(content, w) {
				return WhQuestion
			}
		}
		return Question
	}
	if strings.HasSuffix(trimmed, "!") || strings.HasPrefix(trimmed, "¡") {
		return Exclamation
	}
	return Statement
}

// PitchContour returns the contour assigned to a sentence type.
func (t SentenceType) PitchContour() Contour {
	switch t {
	case Question:
		return Rising
	case WhQuestion:
		return FallingRising
	case Exclamation:
		return Emphasized
	case Command:
		return Flat
	default:
		return Falling
	}
}

// Contour is the shape of F0 across a phrase.
type Contour int

const (
	Flat Contour = iota
	Rising
	Falling
	FallingRising
	Emphasized
)

// Config is the five-parameter prosody record applied to a segment or
// phrase: multiplicative pitch/rate/volume, a contour shape, and an
// emphasis level.
type Config struct {
	PitchMultiplier  float64
	RateMultiplier   float64
	VolumeMultiplier float64
	Contour          Contour
	Emphasis         float64
}

// NewConfig returns the all-neutral/Flat/0 default.
func NewConfig() Config {
	return Config{PitchMultiplier: 1.0, RateMultiplier: 1.0, VolumeMultiplier: 1.0, Contour: Flat, Emphasis: 0}
}

// WithPitch returns a copy with the pitch multiplier clamped to [0.5, 2.0].
func (c Config) WithPitch(m float64) Config { c.PitchMultiplier = clamp(m, 0.5, 2.0); return c }

// WithRate returns a copy with the rate multiplier clamped to [0.25, 4.0].
func (c Config) WithRate(m float64) Config { c.RateMultiplier = clamp(m, 0.25, 4.0); return c }

// WithVolume returns a copy with the volume multiplier clamped to [0.0, 2.0].
func (c Config) WithVolume(m float64) Config { c.VolumeMultiplier = clamp(m, 0.0, 2.0); return c }

// WithContour returns a copy with the contour set.
func (c Config) WithContour(ct Contour) Config { c.Contour = ct; return c }

// WithEmphasis returns a copy with emphasis clamped to [0.0, 1.0].
func (c Config) WithEmphasis(e float64) Config { c.Emphasis = clamp(e, 0.0, 1.0); return c }

// FromSentenceType builds the prosody config the planner assigns to a
// sentence of the given type.
func FromSentenceType(t SentenceType) Config {
	switch t {
	case Question:
		return NewConfig().WithContour(Rising).WithPitch(1.1)
	case WhQuestion:
		return NewConfig().WithContour(FallingRising)
	case Exclamation:
		return NewConfig().WithContour(Emphasized).WithEmphasis(0.5).WithVolume(1.2)
	case Command:
		return NewConfig().WithContour(Flat).WithEmphasis(0.3)
	default:
		return NewConfig().WithContour(Falling)
	}
}

// PitchAtPosition computes the final pitch multiplier at a fractional
// position t in [0,1] within a phrase: pitch_multiplier × contour(t) ×
// (1 + emphasis·0.2·(1−t)).
func (c Config) PitchAtPosition(t float64) float64 {
	pos := clamp(t, 0.0, 1.0)

	var contourValue float64
	switch c.Contour {
	case Rising:
		contourValue = 1.0 + 0.3*pos*pos
	case Falling:
		contourValue = 1.1 - 0.15*pos
	case FallingRising:
		if pos < 0.5 {
			contourValue = 1.05 - 0.3*pos
		} else {
			contourValue = 0.9 + 0.4*(pos-0.5)
		}
	case Emphasized:
		switch {
		case pos < 0.3:
			contourValue = 1.2 - 0.667*pos
		case pos < 0.8:
			contourValue = 1.0 - 0.2*(pos-0.3)
		default:
			contourValue = 0.9 + 0.5*(pos-0.8)
		}
	default: // Flat
		contourValue = 1.0
	}

	emphasisBoost := 1.0 + c.Emphasis*0.2*(1.0-pos)
	return c.PitchMultiplier * contourValue * emphasisBoost
}

// Segment is one prosodic phrase: its text, the prosody derived from its
// sentence type, and its fractional start/end positions within the whole
// input text.
type Segment struct {
	Text          string
	Prosody       Config
	StartPosition float64
	EndPosition   float64
}

// Analyze splits text into sentences and assigns each one a prosody
// config derived from its detected sentence type.
func Analyze(text string) []Segment {
	sentences := splitSentences(text)
	totalLen := 0
	for _, s := range sentences {
		totalLen += len(s)
	}
	if totalLen == 0 {
		return nil
	}

	segments := make([]Segment, 0, len(sentences))
	pos := 0
	for _, sentence := range sentences {
		n := len(sentence)
		if n == 0 {
			continue
		}
		start := float64(pos) / float64(totalLen)
		end := float64(pos+n) / float64(totalLen)
		st := DetectSentenceType(sentence)
		segments = append(segments, Segment{
			Text:          sentence,
			Prosody:       FromSentenceType(st),
			StartPosition: start,
			EndPosition:   end,
		})
		pos += n
	}
	return segments
}

var sentenceEnders = map[rune]bool{'.': true, '!': true, '?': true, '¿': true, '¡': true}

// splitSentences separates text on .!?¿¡. A '.' only terminates a
// sentence when followed by whitespace, an uppercase letter, or end of
// text — a cheap abbreviation filter, not a complete one (e.g. "Dr." still
// mis-splits).
func splitSentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	start := 0

	for i, c := range runes {
		if !sentenceEnders[c] {
			continue
		}
		isEnd := c != '.' || i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) || unicode.IsUpper(runes[i+1])
		if !isEnd {
			continue
		}
		sentence := strings.TrimSpace(string(runes[start : i+1]))
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = i + 1
	}

	if start < len(runes) {
		remaining := strings.TrimSpace(string(runes[start:]))
		if remaining != "" {
			sentences = append(sentences, remaining)
		}
	}

	if len(sentences) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
