package streaming

import (
	"testing"

	"github.com/hubenschmidt/parlador/internal/voice"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("expected default chunk size %d, got %d", DefaultChunkSize, cfg.ChunkSize)
	}
	if !cfg.EnableProsody {
		t.Error("expected prosody enabled by default")
	}
}

func TestWithChunkSizeFloor(t *testing.T) {
	cfg := NewConfig().WithChunkSize(10)
	if cfg.ChunkSize != 256 {
		t.Errorf("expected chunk size floored to 256, got %d", cfg.ChunkSize)
	}
}

func TestStreamYieldsChunksUntilExhausted(t *testing.T) {
	s := WithConfig(NewConfig().WithChunkSize(256).WithVoice(voice.NewConfig(voice.English)))
	stream := s.OpenStream("hello")

	var total int
	var sawFinal bool
	for {
		chunk, ok := stream.Next()
		if !ok {
			break
		}
		total += len(chunk.Samples)
		if chunk.IsFinal {
			sawFinal = true
		}
	}
	if total == 0 {
		t.Error("expected some audio samples from streaming \"hello\"")
	}
	if !sawFinal {
		t.Error("expected the last chunk to be marked final")
	}
}

func TestStreamProgressReachesOne(t *testing.T) {
	s := New()
	stream := s.OpenStream("hi")
	for {
		_, ok := stream.Next()
		if !ok {
			break
		}
	}
	if stream.Progress() != 1.0 {
		t.Errorf("expected progress 1.0 after exhaustion, got %f", stream.Progress())
	}
}

func TestSynthesizeCompleteMatchesCallbackTotal(t *testing.T) {
	s := New()
	var callbackTotal int
	s.SynthesizeWithCallback("testing", func(c Chunk) bool {
		callbackTotal += len(c.Samples)
		return true
	})

	complete := s.SynthesizeComplete("testing")
	if len(complete.Samples) != callbackTotal {
		t.Errorf("SynthesizeComplete produced %d samples, callback saw %d", len(complete.Samples), callbackTotal)
	}
}

func TestEmptyTextProducesNoChunks(t *testing.T) {
	s := New()
	stream := s.OpenStream("")
	if _, ok := stream.Next(); ok {
		t.Error("expected no chunks for empty text")
	}
}
