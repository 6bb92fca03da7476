package wavenc

import (
	"bytes"
	"testing"
)

func TestEncodeProducesRIFFHeader(t *testing.T) {
	samples := []int16{0, 100, -100, 32767, -32768}
	out, err := Encode(samples, 22050)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) < 44 {
		t.Fatalf("expected at least a 44-byte WAV header, got %d bytes", len(out))
	}
	if !bytes.Equal(out[0:4], []byte("RIFF")) {
		t.Errorf("expected RIFF magic, got %q", out[0:4])
	}
	if !bytes.Equal(out[8:12], []byte("WAVE")) {
		t.Errorf("expected WAVE format tag, got %q", out[8:12])
	}
}

func TestEncodeEmptySamples(t *testing.T) {
	out, err := Encode(nil, 22050)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Error("expected a valid (if minimal) WAV header even for zero samples")
	}
}

func TestSeekBufferWriteThenPatch(t *testing.T) {
	buf := &seekBuffer{}
	buf.Write([]byte{1, 2, 3, 4})
	if _, err := buf.Seek(0, 0); err != nil {
		t.Fatalf("unexpected seek error: %v", err)
	}
	buf.Write([]byte{9})
	if buf.data[0] != 9 {
		t.Errorf("expected seek-then-write to patch byte 0, got %d", buf.data[0])
	}
	if len(buf.data) != 4 {
		t.Errorf("expected patch not to grow buffer, got length %d", len(buf.data))
	}
}
