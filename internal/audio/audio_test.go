package audio

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/mrua/internal/motion"
)

func render(c *Chime, n int) [][]float32 {
	out := [][]float32{make([]float32, n), make([]float32, n)}
	c.Fill(out)
	return out
}

func peak(out [][]float32) float64 {
	m := 0.0
	for _, ch := range out {
		for _, v := range ch {
			m = math.Max(m, math.Abs(float64(v)))
		}
	}
	return m
}

func TestChime_SilentWhenIdle(t *testing.T) {
	c := NewChime(0.5)
	if p := peak(render(c, BufferSize)); p != 0 {
		t.Errorf("expected silence, got peak %f", p)
	}
}

func TestChime_PlaysAndFinishes(t *testing.T) {
	c := NewChime(0.5)
	c.OnEvent(motion.Event{Kind: motion.TargetReached})

	if c.Playing() != 1 {
		t.Fatalf("expected 1 tone playing, got %d", c.Playing())
	}
	if p := peak(render(c, BufferSize)); p == 0 || p > 0.5 {
		t.Errorf("expected audible output bounded by volume, got peak %f", p)
	}

	// two 120ms notes
	remaining := SampleRate.N(240*time.Millisecond) - BufferSize
	for remaining > 0 {
		render(c, BufferSize)
		remaining -= BufferSize
	}
	render(c, BufferSize)

	if c.Playing() != 0 {
		t.Errorf("expected the phrase to finish, %d still playing", c.Playing())
	}
}

func TestPhrase_UnknownKind(t *testing.T) {
	if Phrase(motion.EventKind(0)) != nil {
		t.Error("expected no phrase for an unknown event")
	}
	c := NewChime(0)
	if c.Volume != 0.25 {
		t.Errorf("expected default volume, got %f", c.Volume)
	}
	c.Play(motion.EventKind(0))
	if c.Playing() != 0 {
		t.Error("expected nothing queued")
	}
}
