// Package motion holds the kinematic core of the track simulation.
//
// A disc moves along a straight track under constant velocity or constant
// acceleration (MRUA):
//
//   - [Config]: the user-supplied run parameters
//   - [Track]: pixel geometry derived from a configuration
//   - [State]: the single mutable value a run advances
//   - [Step]: advances a [State] by one fixed time increment
//   - [Summarize]: snapshot of a run for the summary dialog
//
// # Example
//
//	cfg, err := motion.ParseConfig(motion.Input{Velocity: "50", Total: "1150"})
//	if err != nil {
//		return err
//	}
//	tr := motion.NewTrack(cfg.TotalDistance, 1200)
//	var st motion.State
//	motion.Reset(&st, cfg, tr)
//	st.Running = true
//	events := motion.Step(&st, cfg, tr, motion.DefaultTimeStep, time.Now())
//
// # Thread Safety
//
// Nothing in this package synchronizes. A [State] belongs to exactly one
// loop driver, which is its only mutator.
package motion
