package motion

import "math"

// TargetOutcome describes the target checkpoint in a [Summary].
type TargetOutcome struct {
	Distance        float64 `json:"distance"`
	Reached         bool    `json:"reached"`
	TimeToTarget    float64 `json:"time_to_target,omitempty"`
	AverageVelocity float64 `json:"average_velocity,omitempty"`
	EstimatedTime   float64 `json:"estimated_time,omitempty"`
}

// Summary is the snapshot handed to the summary dialog.
type Summary struct {
	ConfiguredVelocity float64        `json:"configured_velocity"`
	Acceleration       float64        `json:"acceleration"`
	TotalDistance      float64        `json:"total_distance"`
	Elapsed            float64        `json:"elapsed"`
	DistanceTraveled   float64        `json:"distance_traveled"`
	PercentComplete    float64        `json:"percent_complete"`
	AverageVelocity    float64        `json:"average_velocity"`
	Target             *TargetOutcome `json:"target,omitempty"`
}

// Summarize computes the summary of st. Ratios over a zero elapsed time or a
// zero total distance read as 0.
func Summarize(st State, cfg Config) Summary {
	s := Summary{
		ConfiguredVelocity: cfg.InitialVelocity,
		Acceleration:       cfg.Acceleration,
		TotalDistance:      cfg.TotalDistance,
		Elapsed:            st.Elapsed,
		DistanceTraveled:   st.DistanceTraveled,
		PercentComplete:    ratio(st.DistanceTraveled, cfg.TotalDistance) * 100,
		AverageVelocity:    ratio(st.DistanceTraveled, st.Elapsed),
	}
	if !cfg.HasTarget() {
		return s
	}

	t := &TargetOutcome{Distance: cfg.TargetDistance, Reached: st.TargetReached}
	if st.TargetReached {
		t.TimeToTarget = st.TimeToTarget
		t.AverageVelocity = ratio(cfg.TargetDistance, st.TimeToTarget)
	} else if est, ok := EstimateTimeToTarget(st, cfg); ok {
		t.EstimatedTime = est
	}
	s.Target = t
	return s
}

// TimeToCover returns the time to travel d meters starting at velocity v under
// constant acceleration a. ok is false when the distance is never covered.
func TimeToCover(d, v, a float64) (float64, bool) {
	if d <= 0 {
		return 0, true
	}
	if a == 0 {
		if v <= 0 {
			return 0, false
		}
		return d / v, true
	}
	// 0.5*a*t^2 + v*t - d = 0
	disc := v*v + 2*a*d
	if disc < 0 {
		return 0, false
	}
	t := (-v + math.Sqrt(disc)) / a
	if t < 0 || !finite(t) {
		return 0, false
	}
	return t, true
}

// EstimateTimeToTarget predicts the elapsed time at which the target will be
// reached, continuing from the current state. Before a run starts it is the
// time from rest at the start line, which for zero acceleration is
// target/velocity.
func EstimateTimeToTarget(st State, cfg Config) (float64, bool) {
	if !cfg.HasTarget() {
		return 0, false
	}
	if st.TargetReached {
		return st.TimeToTarget, true
	}
	v := st.Velocity
	if !st.Started {
		v = cfg.InitialVelocity
	}
	remaining, ok := TimeToCover(cfg.TargetDistance-st.DistanceTraveled, v, cfg.Acceleration)
	if !ok {
		return 0, false
	}
	return st.Elapsed + remaining, true
}

// EstimateRun predicts the time to reach the target, or the end of the track
// when no target is set, for a run that has not started.
func EstimateRun(cfg Config) (float64, bool) {
	d := cfg.TotalDistance
	if cfg.HasTarget() {
		d = cfg.TargetDistance
	}
	return TimeToCover(d, cfg.InitialVelocity, cfg.Acceleration)
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
