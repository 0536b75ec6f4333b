// Package render paints a run onto a draw.Surface.
package render

import (
	"fmt"
	"math"

	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/motion"
)

// Layout fixes the geometry of the drawing in surface pixels.
type Layout struct {
	Width, Height float64
	Radius        float64
	TickSpacing   float64
	BarInset      float64
	BarHeight     float64
	BarBottom     float64
}

// DefaultLayout is a 1200x600 drawing with a 20 px disc.
var DefaultLayout = Layout{
	Width:       motion.DefaultViewportWidth,
	Height:      600,
	Radius:      20,
	TickSpacing: 100,
	BarInset:    20,
	BarHeight:   15,
	BarBottom:   30,
}

// Center is the y coordinate of the disc's center.
func (l Layout) Center() float64 { return l.Height / 2 }

// Baseline is the y coordinate of the reference line.
func (l Layout) Baseline() float64 { return l.Center() + l.Radius }

// Renderer draws runs with a fixed layout. It holds no per-run state.
type Renderer struct {
	Layout Layout
}

func New(layout Layout) *Renderer {
	return &Renderer{Layout: layout}
}

// Render paints st in the order: baseline, ticks, finish, target, disc, HUD,
// progress bar. It never modifies st.
func (r *Renderer) Render(st motion.State, cfg motion.Config, tr motion.Track, s draw.Surface) {
	l := r.Layout
	s.Clear()

	s.Save()
	s.Translate(-st.CameraOffset, 0)

	visibleStart := math.Floor(st.CameraOffset/l.TickSpacing) * l.TickSpacing
	visibleEnd := visibleStart + l.Width + l.TickSpacing

	r.drawBaseline(st, tr, s)
	r.drawTicks(tr, s, visibleStart, visibleEnd)
	r.drawFinish(tr, s)
	if cfg.HasTarget() {
		r.drawTarget(st, cfg, tr, s, visibleStart, visibleEnd)
	}
	r.drawDisc(st, s)

	s.Restore()

	if st.Started {
		r.drawHUD(st, cfg, tr, s)
	}
	r.drawProgress(st, cfg, s)
}

func (r *Renderer) drawBaseline(st motion.State, tr motion.Track, s draw.Surface) {
	y := r.Layout.Baseline()
	s.BeginPath()
	s.MoveTo(0, y)
	s.LineTo(math.Min(tr.Ground+50, st.CameraOffset+r.Layout.Width), y)
	s.SetStrokeColor(draw.LineGray)
	s.Stroke()
}

func (r *Renderer) drawTicks(tr motion.Track, s draw.Surface, from, to float64) {
	y := r.Layout.Baseline()
	for x := tr.StartOffset; x <= tr.Ground; x += r.Layout.TickSpacing {
		if x < from || x > to {
			continue
		}
		s.BeginPath()
		s.MoveTo(x, y-5)
		s.LineTo(x, y+5)
		s.SetStrokeColor(draw.TickGray)
		s.Stroke()

		meters := (x - tr.StartOffset) / tr.Scale
		s.SetFillColor(draw.Ink)
		s.SetFont(draw.Font{Size: 12})
		s.FillText(fmt.Sprintf("%.0fm", meters), x-15, y+20)
	}
}

func (r *Renderer) drawFinish(tr motion.Track, s draw.Surface) {
	r.drawPost(tr.Ground, draw.Black, s)
	s.SetLineWidth(1)
}

// drawPost draws a vertical marker with a triangular flag at x.
func (r *Renderer) drawPost(x float64, c draw.Color, s draw.Surface) {
	cy := r.Layout.Center()
	s.BeginPath()
	s.MoveTo(x, cy-100)
	s.LineTo(x, r.Layout.Baseline()+30)
	s.SetStrokeColor(c)
	s.SetLineWidth(2)
	s.Stroke()

	s.BeginPath()
	s.MoveTo(x, cy-100)
	s.LineTo(x+30, cy-85)
	s.LineTo(x, cy-70)
	s.SetFillColor(c)
	s.Fill()
}

func (r *Renderer) drawTarget(st motion.State, cfg motion.Config, tr motion.Track, s draw.Surface, from, to float64) {
	x := tr.PixelAt(cfg.TargetDistance)
	if x < from || x > to {
		return
	}
	c := targetColor(st)
	r.drawPost(x, c, s)
	s.SetLineWidth(1)

	labelY := r.Layout.Center() - 110
	if st.TargetReached {
		s.SetFillColor(draw.Green)
		s.SetFont(draw.Font{Size: 14})
		s.FillText(fmt.Sprintf("%.2fs", st.TimeToTarget), x-40, labelY)
		return
	}
	if est, ok := motion.EstimateTimeToTarget(st, cfg); ok {
		s.SetFillColor(draw.Ink)
		s.SetFont(draw.Font{Size: 14})
		s.FillText(fmt.Sprintf("Est: %.2fs", est), x-40, labelY)
	}
}

func (r *Renderer) drawDisc(st motion.State, s draw.Surface) {
	s.BeginPath()
	s.Arc(st.Position, r.Layout.Center(), r.Layout.Radius, 0, 2*math.Pi)
	s.SetFillColor(draw.Red)
	s.Fill()
}

func (r *Renderer) drawHUD(st motion.State, cfg motion.Config, tr motion.Track, s draw.Surface) {
	s.SetFillColor(draw.Ink)
	s.SetFont(draw.Font{Size: 14})
	for i, line := range HUDLines(st, cfg, tr) {
		s.FillText(line, 20, 30+20*float64(i))
	}
}

// HUDLines returns the numeric readouts shown over the track.
func HUDLines(st motion.State, cfg motion.Config, tr motion.Track) []string {
	lines := []string{
		fmt.Sprintf("Velocity: %.2f m/s", st.Velocity),
		fmt.Sprintf("Time: %.2f s", st.Elapsed),
		fmt.Sprintf("Distance: %.2f m of %g m", st.DistanceTraveled, cfg.TotalDistance),
	}
	if cfg.HasTarget() {
		remaining := math.Max(0, cfg.TargetDistance-st.DistanceTraveled)
		lines = append(lines, fmt.Sprintf("Distance to target: %.2f m", remaining))
	}
	return append(lines, fmt.Sprintf("Scale: %.2f pixels/meter", tr.Scale))
}

func (r *Renderer) drawProgress(st motion.State, cfg motion.Config, s draw.Surface) {
	w, h := s.Size()
	barW := w - 2*r.Layout.BarInset
	barX := r.Layout.BarInset
	barY := h - r.Layout.BarBottom
	barH := r.Layout.BarHeight

	s.SetFillColor(draw.BarTrack)
	s.FillRect(barX, barY, barW, barH)

	s.SetFillColor(draw.BarFill)
	s.FillRect(barX, barY, barW*Progress(st, cfg), barH)

	s.SetStrokeColor(draw.BarBorder)
	s.StrokeRect(barX, barY, barW, barH)

	if !cfg.HasTarget() || cfg.TargetDistance > cfg.TotalDistance {
		return
	}
	mx := barX + barW*(cfg.TargetDistance/cfg.TotalDistance)
	s.SetFillColor(targetColor(st))
	s.BeginPath()
	s.MoveTo(mx, barY-5)
	s.LineTo(mx-5, barY-15)
	s.LineTo(mx+5, barY-15)
	s.ClosePath()
	s.Fill()
}

// Progress is the completed fraction of the track, clamped to [0, 1].
func Progress(st motion.State, cfg motion.Config) float64 {
	if cfg.TotalDistance <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, st.DistanceTraveled/cfg.TotalDistance))
}

func targetColor(st motion.State) draw.Color {
	if st.TargetReached {
		return draw.Green
	}
	return draw.Red
}
