// Package voice defines the language and voice-variant configuration used
// to parameterize a synthesis run.
package voice

import "strings"

// Language is a supported synthesis language.
type Language int

const (
	English Language = iota
	Spanish
)

// Code returns the ISO-ish two-letter language code.
func (l Language) Code() string {
	if l == Spanish {
		return "es"
	}
	return "en"
}

// Name returns a human-readable language name.
func (l Language) Name() string {
	if l == Spanish {
		return "Spanish"
	}
	return "English"
}

func (l Language) String() string { return l.Name() }

// LanguageFromCode accepts common language-code spellings and returns the
// matching Language, or false if the code is not recognized.
func LanguageFromCode(code string) (Language, bool) {
	switch strings.ToLower(code) {
	case "en", "eng", "english", "en-us", "en-gb":
		return English, true
	case "es", "spa", "spanish", "es-es", "es-mx":
		return Spanish, true
	default:
		return 0, false
	}
}

// Variant is a named voice with a fixed base fundamental frequency.
type Variant int

const (
	Default Variant = iota
	Male1
	Male2
	Male3
	Female1
	Female2
	Female3
)

// BasePitchHz returns the variant's fixed base F0.
func (v Variant) BasePitchHz() float64 {
	switch v {
	case Male1:
		return 100
	case Male2:
		return 120
	case Male3:
		return 140
	case Female1:
		return 180
	case Female2:
		return 200
	case Female3:
		return 220
	default:
		return 130
	}
}

// Name returns a human-readable variant name.
func (v Variant) Name() string {
	switch v {
	case Male1:
		return "Male 1"
	case Male2:
		return "Male 2"
	case Male3:
		return "Male 3"
	case Female1:
		return "Female 1"
	case Female2:
		return "Female 2"
	case Female3:
		return "Female 3"
	default:
		return "Default"
	}
}

// Config parameterizes a synthesis run: language, voice variant, speech
// rate, pitch adjustment, and volume. The WithRate, WithPitch and WithVolume
// setters clamp to the documented ranges; fields assigned directly are not
// clamped.
type Config struct {
	Language Language
	Variant  Variant
	Rate     int // words per minute, clamped [50, 500], nominal 175
	Pitch    int // -100..100, 0 = default
	Volume   int // 0..200, 100 = normal
}

// NewConfig returns a default configuration for the given language.
func NewConfig(language Language) Config {
	return Config{Language: language, Variant: Default, Rate: 175, Pitch: 0, Volume: 100}
}

// WithVariant returns a copy with the voice variant set.
func (c Config) WithVariant(v Variant) Config { c.Variant = v; return c }

// WithRate returns a copy with the rate set and clamped to [50, 500].
func (c Config) WithRate(rate int) Config { c.Rate = clamp(rate, 50, 500); return c }

// WithPitch returns a copy with the pitch set and clamped to [-100, 100].
func (c Config) WithPitch(pitch int) Config { c.Pitch = clamp(pitch, -100, 100); return c }

// WithVolume returns a copy with the volume set and clamped to [0, 200].
func (c Config) WithVolume(volume int) Config { c.Volume = clamp(volume, 0, 200); return c }

// EffectivePitchHz computes the variant's base F0 adjusted by Pitch: base × (1 + pitch/200).
func (c Config) EffectivePitchHz() float64 {
	base := c.Variant.BasePitchHz()
	return base * (1.0 + float64(c.Pitch)/100.0*0.5)
}

// RateMultiplier returns Rate/175.
func (c Config) RateMultiplier() float64 { return float64(c.Rate) / 175.0 }

// VolumeLevel returns Volume/100.
func (c Config) VolumeLevel() float64 { return float64(c.Volume) / 100.0 }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
