// Package loop drives a run frame by frame.
//
// A [Driver] owns the configuration, the track and the state of a run and is
// their only mutator. It asks a [Scheduler] for frames; each frame performs
// one fixed-increment step, one render and then re-requests itself while the
// run is still going.
//
// Everything here is single-threaded. A host calls [FrameQueue.Flush] once per
// display refresh from the same goroutine that calls the Driver's methods.
//
//	q := loop.NewFrameQueue()
//	d := loop.NewDriver(loop.Options{Scheduler: q, Surface: surface}, cfg)
//	if err := d.Start(cfg); err != nil {
//	    return err
//	}
//	for d.Phase() == loop.Running {
//	    q.Flush()
//	}
package loop
