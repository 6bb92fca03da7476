// Package formant implements the Klatt-style per-sample DSP engine: glottal
// pulse generator, parallel second-order resonators, noise source, envelopes,
// and category-specific excitation models, producing signed 16-bit PCM from
// a phoneme stream.
package formant

import (
	"math"
	"strings"

	"github.com/hubenschmidt/parlador/internal/phoneme"
)

// SampleRate is the fixed output sample rate in Hz; invariant everywhere in
// this engine.
const SampleRate = 22050

// AudioOutput is a complete, non-streaming synthesis result.
type AudioOutput struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// DurationSecs returns the audio's length in seconds.
func (a AudioOutput) DurationSecs() float64 {
	if a.SampleRate == 0 || a.Channels == 0 {
		return 0
	}
	return float64(len(a.Samples)) / (float64(a.SampleRate) * float64(a.Channels))
}

// IsEmpty reports whether the output carries no samples.
func (a AudioOutput) IsEmpty() bool { return len(a.Samples) == 0 }

// Config parameterizes a single synthesizer instance.
type Config struct {
	PitchHz    float64
	Rate       float64
	Volume     float64
	SampleRate int
}

// DefaultConfig mirrors a neutral male voice at nominal rate and a volume
// of 0.8.
func DefaultConfig() Config {
	return Config{PitchHz: 120, Rate: 1.0, Volume: 0.8, SampleRate: SampleRate}
}

// resonator is a second-order IIR bandpass filter approximating one formant.
type resonator struct {
	a, b, c float64
	y1, y2  float64
}

func newResonator(freq, bandwidth, sampleRate float64) *resonator {
	r := &resonator{}
	r.setParams(freq, bandwidth, sampleRate)
	return r
}

// setParams retargets the resonator's frequency/bandwidth without resetting
// y1/y2 — formant transitions between phonemes are therefore implicit.
func (r *resonator) setParams(freq, bandwidth, sampleRate float64) {
	r.c = -math.Exp(-2 * math.Pi * bandwidth / sampleRate)
	r.b = 2 * math.Exp(-math.Pi*bandwidth/sampleRate) * math.Cos(2*math.Pi*freq/sampleRate)
	r.a = 1 - r.b - r.c
}

func (r *resonator) process(x float64) float64 {
	y := r.a*x + r.b*r.y1 + r.c*r.y2
	r.y2 = r.y1
	r.y1 = y
	return y
}

// Synthesizer is a single-consumer, per-utterance DSP instance. Its
// resonator and noise/pitch-phase state must never be shared across
// concurrent utterances (spec invariant: single-consumer formant synth).
type Synthesizer struct {
	Config     Config
	formants   [3]*resonator
	nasal      *resonator
	pitchPhase float64
	noiseState uint32
}

// New builds a fresh synthesizer with deterministic initial DSP state: the
// noise LCG is seeded at 12345 and the glottal phase starts at 0, so two
// synthesizers built with equal configs produce byte-identical output.
func New(cfg Config) *Synthesizer {
	sr := float64(cfg.SampleRate)
	return &Synthesizer{
		Config: cfg,
		formants: [3]*resonator{
			newResonator(500, 60, sr),
			newResonator(1500, 90, sr),
			newResonator(2500, 150, sr),
		},
		nasal:      newResonator(300, 100, sr),
		noiseState: 12345,
	}
}

func (s *Synthesizer) noise() float64 {
	s.noiseState = s.noiseState*1103515245 + 12345
	val := float64((s.noiseState>>16)&0x7FFF) / 32767.0
	return val*2.0 - 1.0
}

// glottalPulse advances the pitch phase by f0/sr and returns the simplified
// LF-style excitation waveform value at the new phase.
func (s *Synthesizer) glottalPulse(f0 float64) float64 {
	sr := float64(s.Config.SampleRate)
	s.pitchPhase += f0 / sr
	if s.pitchPhase >= 1.0 {
		s.pitchPhase -= 1.0
	}
	t := s.pitchPhase
	switch {
	case t < 0.4:
		x := t / 0.4
		return 3*x*x - 2*x*x*x
	case t < 0.6:
		x := (t - 0.4) / 0.2
		return 1 - x*x
	default:
		return 0
	}
}

// SynthesizePhoneme produces duration_ms worth of samples (converted to a
// sample count at the configured rate) for a single phoneme, dispatching on
// its category.
func (s *Synthesizer) SynthesizePhoneme(p phoneme.Phoneme, durationMs int) []float64 {
	sr := float64(s.Config.SampleRate)
	samples := int(float64(durationMs) / 1000.0 * sr / s.Config.Rate)
	if samples < 0 {
		samples = 0
	}

	switch p.Category {
	case phoneme.Silence:
		return make([]float64, samples)
	case phoneme.Vowel, phoneme.Diphthong:
		if p.Formants == nil {
			return make([]float64, samples)
		}
		return s.synthesizeVowel(*p.Formants, samples)
	case phoneme.Nasal:
		if p.Formants == nil {
			return make([]float64, samples)
		}
		return s.synthesizeNasal(*p.Formants, samples)
	case phoneme.Plosive:
		return s.synthesizePlosive(p.Voiced, samples)
	case phoneme.Fricative:
		return s.synthesizeFricative(p.Voiced, samples)
	case phoneme.Affricate:
		return s.synthesizeAffricate(p.Voiced, samples)
	case phoneme.Lateral, phoneme.Rhotic, phoneme.Approximant:
		if p.Formants == nil {
			return make([]float64, samples)
		}
		return s.synthesizeApproximant(*p.Formants, p.Voiced, samples)
	default:
		return make([]float64, samples)
	}
}

func (s *Synthesizer) synthesizeVowel(f phoneme.Formants, samples int) []float64 {
	sr := float64(s.Config.SampleRate)
	s.formants[0].setParams(f.F1, f.B1, sr)
	s.formants[1].setParams(f.F2, f.B2, sr)
	s.formants[2].setParams(f.F3, f.B3, sr)

	out := make([]float64, samples)
	for i := 0; i < samples; i++ {
		env := amplitudeEnvelope(i, samples)
		source := s.glottalPulse(s.Config.PitchHz)
		f1 := s.formants[0].process(source)
		f2 := s.formants[1].process(source)
		f3 := s.formants[2].process(source)
		out[i] = (f1*1.0 + f2*0.5 + f3*0.25) * env * s.Config.Volume
	}
	return out
}

func (s *Synthesizer) synthesizeNasal(f phoneme.Formants, samples int) []float64 {
	sr := float64(s.Config.SampleRate)
	s.formants[0].setParams(f.F1, f.B1*1.5, sr)
	s.nasal.setParams(250, 100, sr)

	out := make([]float64, samples)
	for i := 0; i < samples; i++ {
		env := amplitudeEnvelope(i, samples)
		source := s.glottalPulse(s.Config.PitchHz)
		formantOut := s.formants[0].process(source)
		nasalOut := s.nasal.process(source)
		out[i] = (formantOut*0.3 + nasalOut*0.7) * env * s.Config.Volume
	}
	return out
}

func (s *Synthesizer) synthesizePlosive(voiced bool, samples int) []float64 {
	closure := samples * 2 / 3
	burst := samples - closure
	out := make([]float64, 0, samples)
	out = append(out, make([]float64, closure)...)

	for i := 0; i < burst; i++ {
		env := 1.0 - float64(i)/float64(burst)
		env *= env
		n := s.noise()
		var voicing float64
		if voiced {
			voicing = s.glottalPulse(s.Config.PitchHz) * 0.3
		}
		out = append(out, (n*0.4+voicing)*env*s.Config.Volume)
	}
	return out
}

func (s *Synthesizer) synthesizeFricative(voiced bool, samples int) []float64 {
	out := make([]float64, samples)
	for i := 0; i < samples; i++ {
		env := amplitudeEnvelope(i, samples)
		n := s.noise()
		var voicing float64
		if voiced {
			voicing = s.glottalPulse(s.Config.PitchHz) * 0.4
		}
		out[i] = (n*0.6 + voicing) * env * s.Config.Volume * 0.5
	}
	return out
}

func (s *Synthesizer) synthesizeAffricate(voiced bool, samples int) []float64 {
	plosiveSamples := samples / 3
	fricativeSamples := samples - plosiveSamples
	out := s.synthesizePlosive(voiced, plosiveSamples)
	out = append(out, s.synthesizeFricative(voiced, fricativeSamples)...)
	return out
}

func (s *Synthesizer) synthesizeApproximant(f phoneme.Formants, voiced bool, samples int) []float64 {
	sr := float64(s.Config.SampleRate)
	s.formants[0].setParams(f.F1, f.B1*1.2, sr)
	s.formants[1].setParams(f.F2, f.B2*1.2, sr)

	out := make([]float64, samples)
	for i := 0; i < samples; i++ {
		env := amplitudeEnvelope(i, samples)
		var source float64
		if voiced {
			source = s.glottalPulse(s.Config.PitchHz)
		} else {
			source = s.noise() * 0.3
		}
		f1 := s.formants[0].process(source)
		f2 := s.formants[1].process(source)
		out[i] = (f1*0.7 + f2*0.3) * env * s.Config.Volume * 0.7
	}
	return out
}

// amplitudeEnvelope ramps linearly up over the first 10% of a phoneme's
// samples and down over the last 15%, flat at 1.0 in between.
func amplitudeEnvelope(sample, total int) float64 {
	attackLen := int(float64(total) * 0.1)
	decayLen := int(float64(total) * 0.15)

	switch {
	case attackLen > 0 && sample < attackLen:
		return float64(sample) / float64(attackLen)
	case decayLen > 0 && sample > total-decayLen:
		return float64(total-sample) / float64(decayLen)
	default:
		return 1.0
	}
}

// SynthesizePhonemeWithPitchMod applies a temporary F0 multiplier for the
// duration of one phoneme, then restores the original pitch. This is the
// hook prosody and streaming use to modulate pitch per phoneme/segment
// without disturbing the synthesizer's persistent configuration.
func (s *Synthesizer) SynthesizePhonemeWithPitchMod(p phoneme.Phoneme, durationMs int, pitchMod float64) []float64 {
	original := s.Config.PitchHz
	s.Config.PitchHz = original * pitchMod
	out := s.SynthesizePhoneme(p, durationMs)
	s.Config.PitchHz = original
	return out
}

// SynthesizePhonemes walks a space-delimited phoneme string (as produced by
// the G2P engine), synthesizing each symbol via the inventory and inserting
// a fixed-length pause for each "_" token.
func (s *Synthesizer) SynthesizePhonemes(phonemeStr string, inv *phoneme.Inventory) []float64 {
	var out []float64
	for _, sym := range strings.Fields(phonemeStr) {
		if sym == phoneme.Pause {
			pauseSamples := int(0.1 * float64(s.Config.SampleRate) / s.Config.Rate)
			out = append(out, make([]float64, pauseSamples)...)
			continue
		}
		if p, ok := inv.Get(sym); ok {
			duration := int(float64(p.DurationMs) / s.Config.Rate)
			out = append(out, s.SynthesizePhoneme(p, duration)...)
		}
	}
	return out
}

// ToPCM16 clamps each sample to [-1,1], scales by 32767, and truncates
// toward zero.
func ToPCM16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		clamped := math.Max(-1.0, math.Min(1.0, s))
		out[i] = int16(clamped * 32767.0)
	}
	return out
}
