// Package parlador is a self-contained formant speech synthesizer: text in,
// 16-bit PCM out, no external model or network dependency for the core
// synthesis path.
package parlador

import (
	"strconv"
	"strings"

	"github.com/hubenschmidt/parlador/internal/formant"
	"github.com/hubenschmidt/parlador/internal/g2p"
	"github.com/hubenschmidt/parlador/internal/phoneme"
	"github.com/hubenschmidt/parlador/internal/prosody"
	"github.com/hubenschmidt/parlador/internal/ssml"
)

// PhonemeFormat selects the phoneme output encoding of TextToPhonemes.
type PhonemeFormat int

const (
	// PhonemeFormatIPA renders phonemes as International Phonetic Alphabet symbols.
	PhonemeFormatIPA PhonemeFormat = iota
	// PhonemeFormatASCII renders phonemes in the engine's internal ASCII symbols.
	PhonemeFormatASCII
)

// PhonemeResult is the output of TextToPhonemes.
type PhonemeResult struct {
	Text     string
	Phonemes string
	Format   PhonemeFormat
	Language Language
}

// Synthesizer is the main speech synthesizer: it holds the current voice
// configuration, selects the shared, once-built G2P converter and phoneme
// inventory for the configured language, and drives a fresh formant DSP
// engine per call.
type Synthesizer struct {
	config VoiceConfig
}

// New returns a synthesizer with the default English voice configuration.
func New() *Synthesizer {
	return WithVoiceConfig(NewVoiceConfig(English))
}

// WithVoiceConfig returns a synthesizer using the given voice configuration.
func WithVoiceConfig(config VoiceConfig) *Synthesizer {
	return &Synthesizer{config: config}
}

// Config returns the synthesizer's current voice configuration.
func (s *Synthesizer) Config() VoiceConfig { return s.config }

// SetConfig replaces the synthesizer's voice configuration wholesale.
func (s *Synthesizer) SetConfig(config VoiceConfig) { s.config = config }

// SetLanguage switches the active language.
func (s *Synthesizer) SetLanguage(language Language) { s.config.Language = language }

// SetRate sets the speech rate in words per minute, clamped to [50, 500].
func (s *Synthesizer) SetRate(rate int) { s.config = s.config.WithRate(rate) }

// SetPitch sets the pitch adjustment, clamped to [-100, 100].
func (s *Synthesizer) SetPitch(pitch int) { s.config = s.config.WithPitch(pitch) }

// SetVolume sets the volume, capped at 200.
func (s *Synthesizer) SetVolume(volume int) { s.config = s.config.WithVolume(volume) }

// SampleRate returns the fixed output sample rate in Hz.
func (s *Synthesizer) SampleRate() int { return SampleRate }

func (s *Synthesizer) g2pConverter() *g2p.Converter {
	if s.config.Language == Spanish {
		return g2p.Spanish()
	}
	return g2p.English()
}

func (s *Synthesizer) inventory() *phoneme.Inventory {
	if s.config.Language == Spanish {
		return phoneme.Spanish()
	}
	return phoneme.English()
}

func (s *Synthesizer) formantConfig() formant.Config {
	volume := s.config.VolumeLevel()
	if volume > 1.0 {
		volume = 1.0
	}
	return formant.Config{
		PitchHz:    s.config.EffectivePitchHz(),
		Rate:       s.config.RateMultiplier(),
		Volume:     volume,
		SampleRate: SampleRate,
	}
}

// Synthesize converts text to speech with the current voice configuration
// and no prosody shaping beyond that configuration's flat pitch/rate/volume.
func (s *Synthesizer) Synthesize(text string) (AudioOutput, error) {
	conv := s.g2pConverter()
	phonemesStr := conv.Convert(text)
	if phonemesStr == "" {
		return AudioOutput{Samples: nil, SampleRate: SampleRate, Channels: 1}, nil
	}

	synth := formant.New(s.formantConfig())
	floatSamples := synth.SynthesizePhonemes(phonemesStr, s.inventory())
	return AudioOutput{Samples: formant.ToPCM16(floatSamples), SampleRate: SampleRate, Channels: 1}, nil
}

// SynthesizeWithProsody runs the phrase analyzer over text and synthesizes
// each detected sentence with its own pitch contour, instead of the flat
// contour Synthesize applies.
func (s *Synthesizer) SynthesizeWithProsody(text string) (AudioOutput, error) {
	segments := prosody.Analyze(text)
	if len(segments) == 0 {
		return AudioOutput{Samples: nil, SampleRate: SampleRate, Channels: 1}, nil
	}

	conv := s.g2pConverter()
	inv := s.inventory()
	baseCfg := s.formantConfig()

	var all []int16
	for _, seg := range segments {
		phonemesStr := conv.Convert(seg.Text)
		samples := synthesizeTokensWithContour(phonemesStr, inv, baseCfg, seg.Prosody)
		all = append(all, formant.ToPCM16(samples)...)
	}
	return AudioOutput{Samples: all, SampleRate: SampleRate, Channels: 1}, nil
}

// SynthesizeSsml parses SSML markup, flattens it to a synthesis-segment
// stream, and synthesizes each segment in turn with its merged prosody.
// Break segments (encoded as the sentinel text "__break_<ms>__") emit
// silence instead of phoneme audio.
func (s *Synthesizer) SynthesizeSsml(input string) (AudioOutput, error) {
	doc, err := ssml.Parse(input)
	if err != nil {
		return AudioOutput{}, synthesisErr("failed to parse SSML", err)
	}

	conv := s.g2pConverter()
	inv := s.inventory()
	baseCfg := s.formantConfig()

	var all []int16
	for _, seg := range doc.ToSynthesisSegments() {
		if ms, ok := breakDurationMs(seg.Text); ok {
			silence := make([]int16, ms*SampleRate/1000)
			all = append(all, silence...)
			continue
		}
		phonemesStr := conv.Convert(seg.Text)
		samples := synthesizeTokensWithContour(phonemesStr, inv, baseCfg, seg.Prosody)
		all = append(all, formant.ToPCM16(samples)...)
	}
	return AudioOutput{Samples: all, SampleRate: SampleRate, Channels: 1}, nil
}

func breakDurationMs(text string) (int, bool) {
	if !strings.HasPrefix(text, "__break_") || !strings.HasSuffix(text, "__") {
		return 0, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "__break_"), "__")
	ms, err := strconv.Atoi(inner)
	if err != nil {
		return 0, false
	}
	return ms, true
}

// synthesizeTokensWithContour synthesizes a space-delimited phoneme string,
// applying segProsody's flat rate/volume multipliers and, per-phoneme, the
// contour-shaped pitch modulation at that phoneme's position within the segment.
func synthesizeTokensWithContour(phonemesStr string, inv *phoneme.Inventory, baseCfg formant.Config, segProsody ProsodyConfig) []float64 {
	cfg := baseCfg
	cfg.Rate *= segProsody.RateMultiplier
	volume := cfg.Volume * segProsody.VolumeMultiplier
	if volume > 1.0 {
		volume = 1.0
	}
	cfg.Volume = volume

	synth := formant.New(cfg)
	tokens := strings.Fields(phonemesStr)
	if len(tokens) == 0 {
		return nil
	}

	var out []float64
	for i, sym := range tokens {
		position := float64(i) / float64(len(tokens))
		pitchMod := segProsody.PitchAtPosition(position)
		if sym == phoneme.Pause {
			pauseSamples := int(0.1 * float64(SampleRate) / cfg.Rate)
			out = append(out, make([]float64, pauseSamples)...)
			continue
		}
		p, ok := inv.Get(sym)
		if !ok {
			continue
		}
		duration := int(float64(p.DurationMs) / cfg.Rate)
		out = append(out, synth.SynthesizePhonemeWithPitchMod(p, duration, pitchMod)...)
	}
	return out
}

// TextToPhonemes converts text to a phoneme string without synthesizing
// audio, for interop with external TTS models that accept phoneme input.
func (s *Synthesizer) TextToPhonemes(text string, format PhonemeFormat) (PhonemeResult, error) {
	var phonemesStr string
	switch format {
	case PhonemeFormatASCII:
		phonemesStr = s.g2pConverter().Convert(text)
	default:
		phonemesStr = g2p.TextToIPA(text, s.g2pConverter(), s.inventory())
	}
	return PhonemeResult{Text: text, Phonemes: phonemesStr, Format: format, Language: s.config.Language}, nil
}
