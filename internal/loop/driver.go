package loop

import (
	"math"

	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/logging"
	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/render"
)

// Phase is the state of the driver's state machine.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Observer is told about every frame and every event after the frame has been
// rendered.
type Observer interface {
	OnFrame(st motion.State)
	OnEvent(e motion.Event)
}

// Hooks adapts plain functions to an Observer. Nil fields are skipped.
type Hooks struct {
	Frame func(motion.State)
	Event func(motion.Event)
}

func (h Hooks) OnFrame(st motion.State) {
	if h.Frame != nil {
		h.Frame(st)
	}
}

func (h Hooks) OnEvent(e motion.Event) {
	if h.Event != nil {
		h.Event(e)
	}
}

// Options configures a Driver. Only Scheduler is required.
type Options struct {
	Scheduler     Scheduler
	Clock         motion.Clock
	Renderer      *render.Renderer
	Surface       draw.Surface
	TimeStep      float64
	ViewportWidth float64
}

// Driver runs the state machine Idle, Running, Paused, Completed and is the
// only writer of its run state.
type Driver struct {
	sched    Scheduler
	clock    motion.Clock
	renderer *render.Renderer
	surface  draw.Surface
	dt       float64
	viewport float64

	cfg   motion.Config
	track motion.Track
	state motion.State
	phase Phase

	handle    Handle
	observers []Observer
}

// NewDriver returns an Idle driver showing cfg at rest. cfg is not validated;
// it only seeds the initial drawing.
func NewDriver(opts Options, cfg motion.Config) *Driver {
	d := &Driver{
		sched:    opts.Scheduler,
		clock:    opts.Clock,
		renderer: opts.Renderer,
		surface:  opts.Surface,
		dt:       opts.TimeStep,
		viewport: opts.ViewportWidth,
		cfg:      cfg,
	}
	if d.clock == nil {
		d.clock = motion.SystemClock
	}
	if d.renderer == nil {
		d.renderer = render.New(render.DefaultLayout)
	}
	if d.dt <= 0 {
		d.dt = motion.DefaultTimeStep
	}
	if d.viewport <= 0 {
		d.viewport = d.renderer.Layout.Width
	}
	d.track = motion.NewTrack(cfg.TotalDistance, d.viewport)
	motion.Reset(&d.state, d.cfg, d.track)
	d.Redraw()
	return d
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// SetSurface swaps the drawing target and redraws on it.
func (d *Driver) SetSurface(s draw.Surface) {
	d.surface = s
	d.Redraw()
}

func (d *Driver) Phase() Phase          { return d.phase }
func (d *Driver) State() motion.State   { return d.state }
func (d *Driver) Config() motion.Config { return d.cfg }
func (d *Driver) Track() motion.Track   { return d.track }
func (d *Driver) TimeStep() float64     { return d.dt }

// Pending reports whether a frame is scheduled.
func (d *Driver) Pending() bool { return d.handle != 0 }

// Start validates cfg and begins a new run from the start line, cancelling a
// run in progress. A rejected cfg leaves everything as it was.
func (d *Driver) Start(cfg motion.Config) error {
	if err := cfg.Validate(); err != nil {
		logging.For("loop").Debug("start rejected", "error", err)
		return err
	}
	d.cancel()
	d.cfg = cfg
	d.track = motion.NewTrack(cfg.TotalDistance, d.viewport)
	motion.Reset(&d.state, d.cfg, d.track)
	motion.Begin(&d.state, d.clock.Now())
	d.setPhase(Running)
	d.schedule()
	return nil
}

// StartInput parses the form and starts it.
func (d *Driver) StartInput(in motion.Input) error {
	cfg, err := motion.ParseConfig(in)
	if err != nil {
		return err
	}
	return d.Start(cfg)
}

// Toggle pauses a running run or resumes a paused one and returns the new
// phase. It does nothing in the other phases.
func (d *Driver) Toggle() Phase {
	switch d.phase {
	case Running:
		d.cancel()
		motion.Pause(&d.state)
		d.setPhase(Paused)
	case Paused:
		motion.Resume(&d.state)
		d.setPhase(Running)
		d.schedule()
	}
	return d.phase
}

// Configure changes the total distance, which rebuilds the track and resets
// the run to Idle from any phase.
func (d *Driver) Configure(total float64) error {
	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return &motion.ValidationError{Field: "total distance", Reason: "must be greater than zero"}
	}
	cfg := d.cfg
	cfg.TotalDistance = total
	if cfg.TargetDistance > total {
		return &motion.ValidationError{Field: "target distance", Reason: "cannot exceed the total distance"}
	}
	d.cancel()
	d.cfg = cfg
	d.track = motion.NewTrack(total, d.viewport)
	motion.Reset(&d.state, d.cfg, d.track)
	d.setPhase(Idle)
	d.Redraw()
	return nil
}

// ConfigureInput parses the total distance field and applies it.
func (d *Driver) ConfigureInput(total string) error {
	v, err := motion.ParseTotal(total)
	if err != nil {
		return err
	}
	return d.Configure(v)
}

// Summary snapshots the current run.
func (d *Driver) Summary() motion.Summary {
	return motion.Summarize(d.state, d.cfg)
}

// Estimate predicts when the target will be reached.
func (d *Driver) Estimate() (float64, bool) {
	return motion.EstimateTimeToTarget(d.state, d.cfg)
}

// Redraw renders the current state without stepping.
func (d *Driver) Redraw() {
	if d.surface == nil {
		return
	}
	d.renderer.Render(d.state, d.cfg, d.track, d.surface)
}

func (d *Driver) frame() {
	d.handle = 0
	if d.phase != Running {
		return
	}

	events := motion.Step(&d.state, d.cfg, d.track, d.dt, d.clock.Now())
	if !d.state.Running {
		d.setPhase(Completed)
	}
	d.Redraw()

	st := d.state
	for _, o := range d.observers {
		o.OnFrame(st)
	}
	for _, e := range events {
		logging.For("loop").Debug("event", "kind", e.Kind.String(), "distance", e.Distance, "time", e.Time)
		for _, o := range d.observers {
			o.OnEvent(e)
		}
	}

	// an observer may already have restarted the run
	if d.phase == Running && d.handle == 0 {
		d.schedule()
	}
}

func (d *Driver) schedule() {
	d.cancel()
	d.handle = d.sched.RequestFrame(d.frame)
}

func (d *Driver) cancel() {
	if d.handle == 0 {
		return
	}
	d.sched.CancelFrame(d.handle)
	d.handle = 0
}

func (d *Driver) setPhase(p Phase) {
	if p != d.phase {
		logging.For("loop").Debug("phase", "from", d.phase.String(), "to", p.String())
	}
	d.phase = p
}
