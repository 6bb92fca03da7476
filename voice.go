package parlador

import "github.com/hubenschmidt/parlador/internal/voice"

// Language identifies a supported synthesis language.
type Language = voice.Language

const (
	English = voice.English
	Spanish = voice.Spanish
)

// Variant identifies a named voice with a fixed base pitch.
type Variant = voice.Variant

const (
	DefaultVariant = voice.Default
	Male1          = voice.Male1
	Male2          = voice.Male2
	Male3          = voice.Male3
	Female1        = voice.Female1
	Female2        = voice.Female2
	Female3        = voice.Female3
)

// VoiceConfig parameterizes a synthesis run: language, variant, rate,
// pitch, and volume.
type VoiceConfig = voice.Config

// NewVoiceConfig returns the default configuration for the given language.
func NewVoiceConfig(language Language) VoiceConfig { return voice.NewConfig(language) }

// LanguageFromCode maps a language code string (e.g. "en", "es-mx") to a
// Language, reporting false for unrecognized codes.
func LanguageFromCode(code string) (Language, bool) { return voice.LanguageFromCode(code) }

// SupportedLanguages returns every language this synthesizer supports.
func SupportedLanguages() []Language { return []Language{English, Spanish} }
