package loop_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/loop"
	"github.com/san-kum/mrua/internal/motion"
)

var _ = Describe("Driver", func() {
	var (
		q     *loop.FrameQueue
		clock *motion.ManualClock
		rec   *draw.Recorder
		trace *loop.Trace
		d     *loop.Driver
		cfg   motion.Config
	)

	frames := func(n int) {
		for i := 0; i < n; i++ {
			clock.AdvanceSeconds(motion.DefaultTimeStep)
			q.Flush()
		}
	}

	BeforeEach(func() {
		q = loop.NewFrameQueue()
		clock = motion.NewManualClock(time.Unix(1000, 0))
		rec = draw.NewRecorder(1200, 600)
		trace = &loop.Trace{}
		cfg = motion.Config{InitialVelocity: 50, TotalDistance: 200, TargetDistance: 100}

		d = loop.NewDriver(loop.Options{Scheduler: q, Clock: clock, Surface: rec}, cfg)
		d.AddObserver(trace)
	})

	It("starts idle with the track drawn at rest", func() {
		Expect(d.Phase()).To(Equal(loop.Idle))
		Expect(d.Pending()).To(BeFalse())
		Expect(rec.Commands()).NotTo(BeEmpty())
		Expect(d.State().Position).To(Equal(motion.StartOffset))
	})

	Describe("Start", func() {
		It("schedules exactly one frame", func() {
			Expect(d.Start(cfg)).To(Succeed())
			Expect(d.Phase()).To(Equal(loop.Running))
			Expect(d.Pending()).To(BeTrue())
			Expect(q.Len()).To(Equal(1))
		})

		It("replaces a running loop instead of adding a second one", func() {
			Expect(d.Start(cfg)).To(Succeed())
			frames(10)
			Expect(d.Start(cfg)).To(Succeed())

			Expect(q.Len()).To(Equal(1))
			Expect(d.State().Started).To(BeFalse())
			Expect(d.State().Position).To(Equal(motion.StartOffset))
		})

		It("rejects a negative velocity without touching the state", func() {
			Expect(d.Start(cfg)).To(Succeed())
			frames(5)
			before := d.State()

			bad := cfg
			bad.InitialVelocity = -5
			err := d.Start(bad)

			Expect(errors.Is(err, motion.ErrValidation)).To(BeTrue())
			Expect(d.State()).To(Equal(before))
			Expect(d.Phase()).To(Equal(loop.Running))
			Expect(d.Config()).To(Equal(cfg))
		})

		It("rejects a target beyond the track", func() {
			bad := cfg
			bad.TargetDistance = bad.TotalDistance + 1

			Expect(d.Start(bad)).To(MatchError(motion.ErrValidation))
			Expect(d.Phase()).To(Equal(loop.Idle))
			Expect(d.Pending()).To(BeFalse())
		})

		It("parses form input", func() {
			err := d.StartInput(motion.Input{Velocity: "abc", Total: "100"})
			Expect(err).To(MatchError(motion.ErrValidation))

			Expect(d.StartInput(motion.Input{Velocity: "20", Total: "100"})).To(Succeed())
			Expect(d.Config().InitialVelocity).To(Equal(20.0))
			Expect(d.Config().HasTarget()).To(BeFalse())
		})
	})

	Describe("frames", func() {
		BeforeEach(func() {
			Expect(d.Start(cfg)).To(Succeed())
		})

		It("steps once per frame with the fixed increment", func() {
			frames(1)
			Expect(d.State().Elapsed).To(BeNumerically("~", motion.DefaultTimeStep, 1e-9))
			Expect(d.State().DistanceTraveled).To(BeNumerically("~", 50*motion.DefaultTimeStep, 1e-9))
			Expect(trace.Samples).To(HaveLen(1))
		})

		It("renders every frame", func() {
			rec.Reset()
			frames(1)
			Expect(rec.Commands()).NotTo(BeEmpty())
			Expect(rec.Commands()[0].Op).To(Equal(draw.OpClear))
		})

		It("runs to completion and stops scheduling", func() {
			n, err := loop.RunToEnd(context.Background(), d, q, clock, 1000)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeNumerically("~", 500, 2))

			Expect(d.Phase()).To(Equal(loop.Completed))
			Expect(d.Pending()).To(BeFalse())
			Expect(q.Len()).To(BeZero())

			Expect(trace.Events).To(HaveLen(2))
			Expect(trace.Events[0].Kind).To(Equal(motion.TargetReached))
			Expect(trace.Events[0].Distance).To(Equal(100.0))
			Expect(trace.Events[1].Kind).To(Equal(motion.RunCompleted))
			Expect(trace.Events[1].Distance).To(BeNumerically("~", 200, 1e-9))

			s := d.Summary()
			Expect(s.PercentComplete).To(BeNumerically("~", 100, 1e-9))
			Expect(s.AverageVelocity).To(BeNumerically("~", 50, 0.5))
			Expect(s.Target.Reached).To(BeTrue())
		})

		It("reports a frame budget overrun", func() {
			_, err := loop.RunToEnd(context.Background(), d, q, clock, 10)
			Expect(err).To(MatchError(loop.ErrFrameLimit))
			Expect(d.Phase()).To(Equal(loop.Running))
		})

		It("keeps a single frame when an observer restarts the run", func() {
			restarted := false
			d.AddObserver(loop.Hooks{Event: func(e motion.Event) {
				if e.Kind == motion.TargetReached && !restarted {
					restarted = true
					Expect(d.Start(cfg)).To(Succeed())
				}
			}})

			for i := 0; i < 1000 && !restarted; i++ {
				frames(1)
			}
			Expect(restarted).To(BeTrue())
			Expect(q.Len()).To(Equal(1))
			Expect(d.State().Started).To(BeFalse())
		})
	})

	Describe("Toggle", func() {
		It("does nothing while idle", func() {
			Expect(d.Toggle()).To(Equal(loop.Idle))
			Expect(d.Pending()).To(BeFalse())
		})

		It("pauses and resumes without counting the paused time", func() {
			Expect(d.Start(cfg)).To(Succeed())
			frames(125)

			Expect(d.Toggle()).To(Equal(loop.Paused))
			Expect(d.Pending()).To(BeFalse())
			Expect(q.Len()).To(BeZero())
			Expect(d.State().PausedElapsed).To(BeNumerically("~", 1.0, 1e-9))

			clock.Advance(10 * time.Second)
			q.Flush()
			Expect(d.State().Elapsed).To(BeNumerically("~", 1.0, 1e-9))

			Expect(d.Toggle()).To(Equal(loop.Running))
			Expect(q.Len()).To(Equal(1))
			frames(125)

			Expect(d.State().Elapsed).To(BeNumerically("~", 2.0, 0.02))
		})

		It("does nothing once completed", func() {
			Expect(d.Start(cfg)).To(Succeed())
			_, err := loop.RunToEnd(context.Background(), d, q, clock, 1000)
			Expect(err).NotTo(HaveOccurred())

			before := d.State()
			Expect(d.Toggle()).To(Equal(loop.Completed))
			Expect(d.State()).To(Equal(before))
		})
	})

	Describe("Configure", func() {
		It("returns to idle from a running loop with a fresh track", func() {
			Expect(d.Start(cfg)).To(Succeed())
			frames(20)

			Expect(d.Configure(5000)).To(Succeed())
			Expect(d.Phase()).To(Equal(loop.Idle))
			Expect(d.Pending()).To(BeFalse())
			Expect(q.Len()).To(BeZero())
			Expect(d.State().Started).To(BeFalse())
			Expect(d.State().Position).To(Equal(motion.StartOffset))
			Expect(d.Track().Scale).To(BeNumerically("~", 1150.0/5000, 1e-12))
		})

		It("rejects an invalid total", func() {
			Expect(d.Start(cfg)).To(Succeed())

			Expect(d.Configure(0)).To(MatchError(motion.ErrValidation))
			Expect(d.ConfigureInput("abc")).To(MatchError(motion.ErrValidation))
			Expect(d.Configure(50)).To(MatchError(motion.ErrValidation))

			Expect(d.Phase()).To(Equal(loop.Running))
			Expect(d.Config().TotalDistance).To(Equal(200.0))
		})
	})

	It("names its phases", func() {
		Expect(loop.Paused.String()).To(Equal("paused"))
		Expect(loop.Phase(9).String()).To(Equal("unknown"))
	})
})
