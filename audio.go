package parlador

import "github.com/hubenschmidt/parlador/internal/formant"

// SampleRate is the fixed output sample rate in Hz.
const SampleRate = formant.SampleRate

// AudioOutput is a complete, non-streaming synthesis result: 16-bit signed
// PCM, mono, at SampleRate.
type AudioOutput = formant.AudioOutput
