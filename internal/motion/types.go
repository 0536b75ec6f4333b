package motion

import "time"

const (
	// DefaultTimeStep is the fixed integration increment, a 125 Hz update
	// independent of the display refresh rate.
	DefaultTimeStep = 0.008

	// StartOffset is the pixel x coordinate of the track origin.
	StartOffset = 50.0

	// DefaultViewportWidth is the visible drawing width in pixels.
	DefaultViewportWidth = 1200.0

	// FollowMargin is how close to the right edge the disc may get before the
	// camera starts to follow it.
	FollowMargin = 100.0
)

// Config holds the parameters of one run. TargetDistance of 0 means no target.
type Config struct {
	InitialVelocity float64 `json:"initial_velocity" yaml:"initial_velocity"`
	Acceleration    float64 `json:"acceleration" yaml:"acceleration"`
	TotalDistance   float64 `json:"total_distance" yaml:"total_distance"`
	TargetDistance  float64 `json:"target_distance" yaml:"target_distance"`
}

func (c Config) HasTarget() bool { return c.TargetDistance > 0 }

// Track is the pixel geometry of a configuration. It is rebuilt only when the
// configuration changes, never during a run.
type Track struct {
	ViewportWidth float64
	StartOffset   float64
	Scale         float64 // pixels per meter
	Ground        float64 // far boundary in pixels
}

// NewTrack fits totalDistance into the viewport, shrinking the scale below one
// pixel per meter only when the track would not fit.
func NewTrack(totalDistance, viewportWidth float64) Track {
	if viewportWidth <= StartOffset {
		viewportWidth = DefaultViewportWidth
	}
	usable := viewportWidth - StartOffset
	scale := 1.0
	if totalDistance > usable {
		scale = usable / totalDistance
	}
	return Track{
		ViewportWidth: viewportWidth,
		StartOffset:   StartOffset,
		Scale:         scale,
		Ground:        StartOffset + totalDistance*scale,
	}
}

// PixelAt converts a distance in meters to a track x coordinate.
func (t Track) PixelAt(meters float64) float64 {
	return t.StartOffset + meters*t.Scale
}

// State is the mutable state of one run.
type State struct {
	Position         float64 // pixels
	Velocity         float64
	Elapsed          float64 // seconds, excluding paused wall-clock time
	DistanceTraveled float64 // meters
	Running          bool
	Started          bool
	PausedElapsed    float64
	TargetReached    bool
	TimeToTarget     float64 // valid only when TargetReached
	CameraOffset     float64
	RunStart         time.Time // zero until derived by the next step
}

// EventKind identifies a notification emitted by [Step].
type EventKind int

const (
	TargetReached EventKind = iota + 1
	RunCompleted
)

func (k EventKind) String() string {
	switch k {
	case TargetReached:
		return "target_reached"
	case RunCompleted:
		return "run_completed"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification with its payload.
type Event struct {
	Kind     EventKind `json:"kind"`
	Distance float64   `json:"distance"`
	Time     float64   `json:"time"`
}

// Sample is one point of a run trace.
type Sample struct {
	Time     float64 `json:"time"`
	Distance float64 `json:"distance"`
	Velocity float64 `json:"velocity"`
}

// SampleOf captures the trace point of st.
func SampleOf(st State) Sample {
	return Sample{Time: st.Elapsed, Distance: st.DistanceTraveled, Velocity: st.Velocity}
}
