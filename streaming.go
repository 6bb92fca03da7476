package parlador

import "github.com/hubenschmidt/parlador/internal/streaming"

// AudioChunk is one slice of streamed audio.
type AudioChunk = streaming.Chunk

// StreamingConfig parameterizes a streaming synthesis run.
type StreamingConfig = streaming.Config

// AudioStream is a pull-based iterator over synthesized audio chunks.
type AudioStream = streaming.Stream

// StreamingSynthesizer generates audio incrementally instead of all at once.
type StreamingSynthesizer struct {
	inner *streaming.Synthesizer
}

// NewStreamingSynthesizer returns a streaming synthesizer with the default configuration.
func NewStreamingSynthesizer() *StreamingSynthesizer {
	return &StreamingSynthesizer{inner: streaming.New()}
}

// NewStreamingSynthesizerWithConfig returns a streaming synthesizer with the given configuration.
func NewStreamingSynthesizerWithConfig(config StreamingConfig) *StreamingSynthesizer {
	return &StreamingSynthesizer{inner: streaming.WithConfig(config)}
}

// Config returns the streaming synthesizer's current configuration.
func (s *StreamingSynthesizer) Config() StreamingConfig { return s.inner.Config() }

// OpenStream converts text to an audio stream that yields chunks on demand.
func (s *StreamingSynthesizer) OpenStream(text string) *AudioStream { return s.inner.OpenStream(text) }

// SynthesizeWithCallback drives a stream to completion, invoking callback
// per chunk; callback returns false to stop early.
func (s *StreamingSynthesizer) SynthesizeWithCallback(text string, callback func(AudioChunk) bool) {
	s.inner.SynthesizeWithCallback(text, callback)
}

// SynthesizeComplete drives a stream to completion and collects every chunk
// into one AudioOutput.
func (s *StreamingSynthesizer) SynthesizeComplete(text string) AudioOutput {
	return s.inner.SynthesizeComplete(text)
}
