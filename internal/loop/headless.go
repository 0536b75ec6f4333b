package loop

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/mrua/internal/motion"
)

// ErrFrameLimit is returned by RunToEnd when the run outlasts its frame budget.
var ErrFrameLimit = errors.New("loop: frame limit reached")

// RunToEnd flushes q until d stops running, advancing clock by one time step
// before every flush so that elapsed time equals simulated time. maxFrames of
// zero means no limit.
func RunToEnd(ctx context.Context, d *Driver, q *FrameQueue, clock *motion.ManualClock, maxFrames int) (int, error) {
	frames := 0
	for d.Phase() == Running {
		if err := ctx.Err(); err != nil {
			return frames, err
		}
		if maxFrames > 0 && frames >= maxFrames {
			return frames, fmt.Errorf("%w after %d frames", ErrFrameLimit, frames)
		}
		clock.AdvanceSeconds(d.TimeStep())
		if q.Flush() == 0 {
			return frames, errors.New("loop: running with no frame scheduled")
		}
		frames++
	}
	return frames, nil
}

// Trace records the samples and events of a run.
type Trace struct {
	Samples []motion.Sample `json:"samples"`
	Events  []motion.Event  `json:"events"`
	// Every keeps one sample per Every frames. Zero keeps all of them.
	Every int `json:"-"`

	frames int
}

func (t *Trace) OnFrame(st motion.State) {
	t.frames++
	if t.Every > 1 && (t.frames-1)%t.Every != 0 && st.Running {
		return
	}
	t.Samples = append(t.Samples, motion.SampleOf(st))
}

func (t *Trace) OnEvent(e motion.Event) {
	t.Events = append(t.Events, e)
}

// Reset empties the trace for a new run.
func (t *Trace) Reset() {
	t.Samples = t.Samples[:0]
	t.Events = t.Events[:0]
	t.frames = 0
}

// Velocities returns the velocity column.
func (t *Trace) Velocities() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Velocity
	}
	return out
}

// Distances returns the distance column.
func (t *Trace) Distances() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Distance
	}
	return out
}
