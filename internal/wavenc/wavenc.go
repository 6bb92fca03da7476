// Package wavenc wraps raw PCM16 samples in a WAV container. This is an
// external-facing convenience for the cmd/ binaries; the core synthesis
// pipeline never produces or consumes WAV framing itself.
package wavenc

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Encode wraps mono PCM16 samples at sampleRate into a WAV byte stream.
func Encode(samples []int16, sampleRate int) ([]byte, error) {
	buf := &seekBuffer{}
	enc := wav.NewEncoder(buf, sampleRate, 16, 1, 1)

	intBuf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:   make([]int, len(samples)),
	}
	for i, s := range samples {
		intBuf.Data[i] = int(s)
	}

	if err := enc.Write(intBuf); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.data, nil
}

// seekBuffer is a minimal in-memory io.WriteSeeker: go-audio/wav's encoder
// writes the RIFF/data chunk headers with placeholder sizes, streams the
// samples, then seeks back to patch the real sizes in on Close.
type seekBuffer struct {
	data []byte
	pos  int64
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.pos:end], p)
	b.pos = end
	return len(p), nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = b.pos + offset
	case io.SeekEnd:
		newPos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("wavenc: invalid whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("wavenc: negative seek position")
	}
	b.pos = newPos
	return newPos, nil
}
