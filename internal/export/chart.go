package export

import (
	"errors"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/mrua/internal/motion"
)

var ErrTooFewSamples = errors.New("export: chart needs at least two samples")

var (
	distanceColor = drawing.ColorFromHex("4caf50")
	velocityColor = drawing.ColorFromHex("0077be")
)

// Chart plots distance on the left axis and velocity on the right axis
// against elapsed time, encoded as PNG.
func Chart(w io.Writer, samples []motion.Sample, cfg motion.Config, width, height int) error {
	if len(samples) < 2 {
		return ErrTooFewSamples
	}

	ts := make([]float64, len(samples))
	ds := make([]float64, len(samples))
	vs := make([]float64, len(samples))
	for i, s := range samples {
		ts[i], ds[i], vs[i] = s.Time, s.Distance, s.Velocity
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "Distance (m)",
			XValues: ts,
			YValues: ds,
			Style:   chart.Style{StrokeColor: distanceColor, StrokeWidth: 2},
		},
		chart.ContinuousSeries{
			Name:    "Velocity (m/s)",
			XValues: ts,
			YValues: vs,
			YAxis:   chart.YAxisSecondary,
			Style:   chart.Style{StrokeColor: velocityColor, StrokeWidth: 2},
		},
	}
	if cfg.HasTarget() {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Target (%gm)", cfg.TargetDistance),
			XValues: []float64{ts[0], ts[len(ts)-1]},
			YValues: []float64{cfg.TargetDistance, cfg.TargetDistance},
			Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 1, StrokeDashArray: []float64{5, 5}},
		})
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("v0=%g m/s  a=%g m/s²", cfg.InitialVelocity, cfg.Acceleration),
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: "Time (s)"},
		YAxis:      chart.YAxis{Name: "Distance (m)"},
		YAxisSecondary: chart.YAxis{
			Name: "Velocity (m/s)",
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
