package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/san-kum/mrua/internal/config"
	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/loop"
	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/notify"
	"github.com/san-kum/mrua/internal/render"
)

// session owns one driver. Only its run goroutine touches the driver, the
// queue and the recorder; the pumps talk to it over channels.
type session struct {
	id  string
	cfg *config.Config
	log *slog.Logger

	queue  *loop.FrameQueue
	driver *loop.Driver
	rec    *draw.Recorder
	phase  loop.Phase

	in   chan ClientEnvelope
	send chan []byte
}

func newSession(id string, cfg *config.Config, clock motion.Clock, log *slog.Logger) *session {
	s := &session{
		id:    id,
		cfg:   cfg,
		log:   log.With("session", id),
		queue: loop.NewFrameQueue(),
		rec:   draw.NewRecorder(cfg.Display.Width, cfg.Display.Height),
		in:    make(chan ClientEnvelope, 16),
		send:  make(chan []byte, 64),
	}
	layout := render.DefaultLayout
	layout.Width, layout.Height = cfg.Display.Width, cfg.Display.Height
	s.driver = loop.NewDriver(loop.Options{
		Scheduler:     s.queue,
		Clock:         clock,
		Renderer:      render.New(layout),
		Surface:       s.rec,
		TimeStep:      cfg.Simulation.TimeStep,
		ViewportWidth: cfg.Display.Width,
	}, cfg.Motion())
	s.driver.AddObserver(loop.Hooks{Event: s.onEvent})
	return s
}

// run drives frames at the display rate until ctx ends.
func (s *session) run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.FrameInterval())
	defer ticker.Stop()

	in := motion.InputOf(s.cfg.Motion())
	s.push(ServerEnvelope{Type: MsgWelcome, Session: s.id, Phase: s.phase.String(), Input: &in, ServerMS: time.Now().UTC().UnixMilli()})
	s.flushFrame()

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-s.in:
			s.handle(msg)
			s.flushFrame()
		case <-ticker.C:
			if s.queue.Flush() > 0 {
				s.flushFrame()
			}
		}
	}
}

func (s *session) handle(msg ClientEnvelope) {
	switch msg.Type {
	case MsgStart:
		if msg.Input == nil {
			s.push(ServerEnvelope{Type: MsgError, Message: "missing_input"})
			return
		}
		if err := s.driver.StartInput(*msg.Input); err != nil {
			s.push(ServerEnvelope{Type: MsgAlert, Message: err.Error()})
		}
	case MsgToggle:
		s.driver.Toggle()
	case MsgConfigure:
		if err := s.driver.ConfigureInput(msg.Total); err != nil {
			s.push(ServerEnvelope{Type: MsgAlert, Message: err.Error()})
		}
	case MsgSummary:
		s.push(ServerEnvelope{Type: MsgSummary, Sections: notify.SummarySections(s.driver.Summary())})
	case MsgPing:
		s.push(ServerEnvelope{Type: MsgPong, ServerMS: time.Now().UTC().UnixMilli()})
	default:
		s.push(ServerEnvelope{Type: MsgError, Message: "unsupported_message_type"})
	}
}

func (s *session) onEvent(e motion.Event) {
	s.push(ServerEnvelope{
		Type:      MsgEvent,
		Kind:      e.Kind.String(),
		Event:     &e,
		Message:   notify.Message(e),
		VisibleMS: s.cfg.Notify.Visible.Milliseconds(),
		FadeMS:    s.cfg.Notify.Fade.Milliseconds(),
	})
}

// flushFrame sends the latest complete drawing, if any, and any phase change.
func (s *session) flushFrame() {
	if p := s.driver.Phase(); p != s.phase {
		s.phase = p
		s.push(ServerEnvelope{Type: MsgPhase, Phase: p.String()})
	}
	cmds := lastFrame(s.rec.Take())
	if len(cmds) == 0 {
		return
	}
	s.push(ServerEnvelope{Type: MsgFrame, Commands: cmds})
}

// push queues msg, dropping it when the client is not keeping up.
func (s *session) push(msg ServerEnvelope) {
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("encode", "type", msg.Type, "error", err)
		return
	}
	select {
	case s.send <- payload:
	default:
		s.log.Warn("send buffer full, dropping", "type", msg.Type)
	}
}

// lastFrame trims cmds to the calls of the last render.
func lastFrame(cmds []draw.Command) []draw.Command {
	for i := len(cmds) - 1; i >= 0; i-- {
		if cmds[i].Op == draw.OpClear {
			return cmds[i:]
		}
	}
	return cmds
}
