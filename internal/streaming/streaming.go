// Package streaming produces synthesis output incrementally, as a pull-based
// sequence of fixed-size PCM chunks, instead of requiring the whole
// utterance to be synthesized before any audio is available.
package streaming

import (
	"strings"

	"github.com/hubenschmidt/parlador/internal/formant"
	"github.com/hubenschmidt/parlador/internal/g2p"
	"github.com/hubenschmidt/parlador/internal/phoneme"
	"github.com/hubenschmidt/parlador/internal/prosody"
	"github.com/hubenschmidt/parlador/internal/voice"
)

// DefaultChunkSize is about 50ms of audio at 22050 Hz.
const DefaultChunkSize = 1024

// Chunk is one slice of streamed audio.
type Chunk struct {
	Samples    []int16
	SampleRate int
	IsFinal    bool
	Progress   float32
}

func newChunk(samples []int16, isFinal bool, progress float32) Chunk {
	return Chunk{Samples: samples, SampleRate: formant.SampleRate, IsFinal: isFinal, Progress: progress}
}

// DurationSecs returns the chunk's length in seconds.
func (c Chunk) DurationSecs() float64 {
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// IsEmpty reports whether the chunk carries no samples.
func (c Chunk) IsEmpty() bool { return len(c.Samples) == 0 }

// Config parameterizes a streaming synthesis run.
type Config struct {
	ChunkSize     int
	Voice         voice.Config
	EnableProsody bool
}

// NewConfig returns the default streaming configuration: 1024-sample
// chunks, a default English voice, prosody analysis on.
func NewConfig() Config {
	return Config{ChunkSize: DefaultChunkSize, Voice: voice.NewConfig(voice.English), EnableProsody: true}
}

// WithChunkSize returns a copy with the chunk size set, floored at 256 samples.
func (c Config) WithChunkSize(size int) Config {
	if size < 256 {
		size = 256
	}
	c.ChunkSize = size
	return c
}

// WithVoice returns a copy with the voice configuration set.
func (c Config) WithVoice(v voice.Config) Config { c.Voice = v; return c }

// WithProsody returns a copy with prosody analysis toggled.
func (c Config) WithProsody(enable bool) Config { c.EnableProsody = enable; return c }

// Synthesizer holds a streaming configuration. Streams it opens use the
// shared, once-built G2P converter and phoneme inventory of the configured
// language, so opening a stream rebuilds neither.
type Synthesizer struct {
	config Config
}

// New builds a streaming synthesizer with the default configuration.
func New() *Synthesizer { return WithConfig(NewConfig()) }

// WithConfig builds a streaming synthesizer with the given configuration.
func WithConfig(config Config) *Synthesizer { return &Synthesizer{config: config} }

// Config returns the synthesizer's current configuration.
func (s *Synthesizer) Config() Config { return s.config }

func (s *Synthesizer) converter() *g2p.Converter {
	if s.config.Voice.Language == voice.Spanish {
		return g2p.Spanish()
	}
	return g2p.English()
}

func (s *Synthesizer) inventory() *phoneme.Inventory {
	if s.config.Voice.Language == voice.Spanish {
		return phoneme.Spanish()
	}
	return phoneme.English()
}

// OpenStream converts text to phonemes and returns a Stream that yields
// audio chunks on demand via Next.
func (s *Synthesizer) OpenStream(text string) *Stream {
	conv := s.converter()
	phonemesStr := conv.Convert(text)
	inv := s.inventory()

	prosodyCfg := prosody.NewConfig()
	if s.config.EnableProsody {
		segments := prosody.Analyze(text)
		if len(segments) > 0 {
			prosodyCfg = segments[0].Prosody
		}
	}

	volume := s.config.Voice.VolumeLevel()
	if volume > 1.0 {
		volume = 1.0
	}

	synthCfg := formant.Config{
		PitchHz:    s.config.Voice.EffectivePitchHz() * prosodyCfg.PitchMultiplier,
		Rate:       s.config.Voice.RateMultiplier() * prosodyCfg.RateMultiplier,
		Volume:     volume * prosodyCfg.VolumeMultiplier,
		SampleRate: formant.SampleRate,
	}

	return newStream(phonemesStr, inv, synthCfg, s.config.ChunkSize, prosodyCfg)
}

// SynthesizeWithCallback drives a stream to completion, invoking callback
// for each chunk; callback returns false to stop early.
func (s *Synthesizer) SynthesizeWithCallback(text string, callback func(Chunk) bool) {
	stream := s.OpenStream(text)
	for {
		chunk, ok := stream.Next()
		if !ok {
			return
		}
		if !callback(chunk) {
			return
		}
	}
}

// SynthesizeComplete drives a stream to completion and collects every
// chunk's samples into one AudioOutput.
func (s *Synthesizer) SynthesizeComplete(text string) formant.AudioOutput {
	stream := s.OpenStream(text)
	var all []int16
	for {
		chunk, ok := stream.Next()
		if !ok {
			break
		}
		all = append(all, chunk.Samples...)
	}
	return formant.AudioOutput{Samples: all, SampleRate: formant.SampleRate, Channels: 1}
}

// Stream is a pull-based iterator over synthesized audio chunks. Call Next
// repeatedly until it returns ok=false.
type Stream struct {
	phonemeTokens []string
	currentIndex  int
	inventory     *phoneme.Inventory
	synth         *formant.Synthesizer
	chunkSize     int
	prosody       prosody.Config
	buffer        []float64
	isComplete    bool
}

func newStream(phonemesStr string, inv *phoneme.Inventory, synthCfg formant.Config, chunkSize int, prosodyCfg prosody.Config) *Stream {
	return &Stream{
		phonemeTokens: strings.Fields(phonemesStr),
		inventory:     inv,
		synth:         formant.New(synthCfg),
		chunkSize:     chunkSize,
		prosody:       prosodyCfg,
	}
}

// TotalPhonemes returns the total number of phoneme tokens to synthesize.
func (s *Stream) TotalPhonemes() int { return len(s.phonemeTokens) }

// Progress returns how far through the phoneme sequence the stream is, in [0,1].
func (s *Stream) Progress() float32 {
	if len(s.phonemeTokens) == 0 {
		return 1.0
	}
	return float32(s.currentIndex) / float32(len(s.phonemeTokens))
}

func (s *Stream) synthesizeNextPhoneme() {
	if s.currentIndex >= len(s.phonemeTokens) {
		s.isComplete = true
		return
	}

	sym := s.phonemeTokens[s.currentIndex]
	switch {
	case sym == phoneme.Pause:
		pauseSamples := int(0.1 * float64(formant.SampleRate) / s.synth.Config.Rate)
		s.buffer = append(s.buffer, make([]float64, pauseSamples)...)
	default:
		if p, ok := s.inventory.Get(sym); ok {
			position := s.Progress()
			pitchMod := s.prosody.PitchAtPosition(float64(position))
			duration := int(float64(p.DurationMs) / s.synth.Config.Rate)
			samples := s.synth.SynthesizePhonemeWithPitchMod(p, duration, pitchMod)
			s.buffer = append(s.buffer, samples...)
		}
	}
	s.currentIndex++
}

func (s *Stream) extractChunk(isFinal bool) Chunk {
	take := s.chunkSize
	if take > len(s.buffer) {
		take = len(s.buffer)
	}
	floatSamples := s.buffer[:take]
	s.buffer = s.buffer[take:]

	pcm := formant.ToPCM16(floatSamples)
	return newChunk(pcm, isFinal && len(s.buffer) == 0, s.Progress())
}

// Next yields the next audio chunk, synthesizing as many phonemes as
// needed to fill it. ok is false once the stream is exhausted.
func (s *Stream) Next() (Chunk, bool) {
	for len(s.buffer) < s.chunkSize && !s.isComplete {
		s.synthesizeNextPhoneme()
	}

	if len(s.buffer) == 0 {
		return Chunk{}, false
	}

	isFinal := s.isComplete
	return s.extractChunk(isFinal), true
}
