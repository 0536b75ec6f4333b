package motion

import "time"

// Reset puts st back at the start of the track with the configured velocity.
func Reset(st *State, cfg Config, tr Track) {
	*st = State{
		Position: tr.StartOffset,
		Velocity: cfg.InitialVelocity,
	}
}

// Begin starts a freshly reset run with its wall-clock origin at now.
func Begin(st *State, now time.Time) {
	st.Running = true
	st.RunStart = now
}

// Pause stops the run and banks its elapsed time.
func Pause(st *State) {
	st.Running = false
	st.PausedElapsed = st.Elapsed
}

// Resume restarts a paused run. RunStart is cleared so the next step derives
// it from the banked elapsed time plus that step's dt.
func Resume(st *State) {
	st.Running = true
	st.RunStart = time.Time{}
}

// Step advances st by dt seconds of simulated motion and returns the events
// the step produced. A stopped state is left untouched.
func Step(st *State, cfg Config, tr Track, dt float64, now time.Time) []Event {
	if !st.Running {
		return nil
	}
	if st.RunStart.IsZero() {
		st.RunStart = now.Add(-seconds(st.PausedElapsed + dt))
	}
	st.Started = true
	st.Elapsed = now.Sub(st.RunStart).Seconds()

	a := cfg.Acceleration
	displacement := st.Velocity*dt + 0.5*a*dt*dt
	st.Velocity += a * dt

	prev := st.Position
	st.Position += displacement * tr.Scale
	st.DistanceTraveled = (st.Position - tr.StartOffset) / tr.Scale

	if st.Position > st.CameraOffset+tr.ViewportWidth-FollowMargin {
		st.CameraOffset += st.Position - prev
	}

	var events []Event
	if cfg.HasTarget() && !st.TargetReached && st.DistanceTraveled >= cfg.TargetDistance {
		st.TargetReached = true
		st.TimeToTarget = st.Elapsed
		events = append(events, Event{Kind: TargetReached, Distance: cfg.TargetDistance, Time: st.Elapsed})
	}

	if st.Position >= tr.Ground {
		st.Position = tr.Ground
		st.DistanceTraveled = (tr.Ground - tr.StartOffset) / tr.Scale
		st.Running = false
		events = append(events, Event{Kind: RunCompleted, Distance: st.DistanceTraveled, Time: st.Elapsed})
	}

	return events
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
