package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"

	"github.com/san-kum/mrua/internal/motion"
)

// G4 D5 G5 A5, the upper voices of a Gm add9 stack.
var (
	targetNotes   = []float64{392.00, 587.33}
	completeNotes = []float64{392.00, 587.33, 783.99, 880.00}
)

// Phrase is the tone sequence announcing kind, or nil for unknown kinds.
func Phrase(kind motion.EventKind) beep.Streamer {
	var notes []float64
	switch kind {
	case motion.TargetReached:
		notes = targetNotes
	case motion.RunCompleted:
		notes = completeNotes
	default:
		return nil
	}
	parts := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		parts[i] = Tone(f, 120*time.Millisecond)
	}
	return beep.Seq(parts...)
}

// Tone is a softened triangle wave at freq with a linear attack and an
// exponential decay.
func Tone(freq float64, d time.Duration) beep.Streamer {
	total := SampleRate.N(d)
	attack := SampleRate.N(5 * time.Millisecond)
	dt := 1.0 / float64(SampleRate)

	pos := 0
	var filter float64
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) * dt
			env := math.Exp(-6 * float64(pos) / float64(total))
			if pos < attack {
				env *= float64(pos) / float64(attack)
			}
			var v float64
			v, filter = lpf(triangle(t*freq), 2400, dt, filter)
			samples[i][0] = v * env
			samples[i][1] = v * env
			pos++
		}
		return len(samples), true
	}))
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// lpf is a one-pole low pass filter.
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}
