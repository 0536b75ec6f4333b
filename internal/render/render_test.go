package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/motion"
)

func record(st motion.State, cfg motion.Config, tr motion.Track) []draw.Command {
	rec := draw.NewRecorder(DefaultLayout.Width, DefaultLayout.Height)
	New(DefaultLayout).Render(st, cfg, tr, rec)
	return rec.Commands()
}

func texts(cmds []draw.Command) []string {
	var out []string
	for _, c := range cmds {
		if c.Op == draw.OpFillText {
			out = append(out, c.Text)
		}
	}
	return out
}

func hasText(cmds []draw.Command, prefix string) bool {
	for _, s := range texts(cmds) {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func TestRender_IsPure(t *testing.T) {
	cfg := motion.Config{InitialVelocity: 10, Acceleration: 2, TotalDistance: 500, TargetDistance: 200}
	tr := motion.NewTrack(cfg.TotalDistance, DefaultLayout.Width)
	var st motion.State
	motion.Reset(&st, cfg, tr)
	st.Started = true
	st.Position = 300
	st.DistanceTraveled = 250
	before := st

	first := record(st, cfg, tr)
	second := record(st, cfg, tr)

	if !reflect.DeepEqual(first, second) {
		t.Error("rendering the same state twice produced different output")
	}
	if st != before {
		t.Error("render modified the state")
	}
	if first[0].Op != draw.OpClear {
		t.Errorf("expected first command to be clear, got %s", first[0].Op)
	}
}

func TestRender_HUDOnlyAfterStart(t *testing.T) {
	cfg := motion.Config{InitialVelocity: 10, TotalDistance: 500}
	tr := motion.NewTrack(cfg.TotalDistance, DefaultLayout.Width)
	var st motion.State
	motion.Reset(&st, cfg, tr)

	if hasText(record(st, cfg, tr), "Velocity:") {
		t.Error("expected no HUD before the run started")
	}

	st.Started = true
	cmds := record(st, cfg, tr)
	if !hasText(cmds, "Velocity: 10.00 m/s") {
		t.Errorf("expected velocity readout, got %v", texts(cmds))
	}
	if hasText(cmds, "Distance to target") {
		t.Error("expected no distance-to-target line without a target")
	}
}

func TestRender_TickCulling(t *testing.T) {
	cfg := motion.Config{InitialVelocity: 10, TotalDistance: 3000}
	tr := motion.Track{ViewportWidth: 1200, StartOffset: 50, Scale: 1, Ground: 3050}
	st := motion.State{Position: 1500, CameraOffset: 1000}

	cmds := record(st, cfg, tr)

	for _, want := range []string{"1000m", "2200m"} {
		if !hasText(cmds, want) {
			t.Errorf("expected visible tick label %s", want)
		}
	}
	for _, hidden := range []string{"0m", "900m", "2300m", "3000m"} {
		for _, s := range texts(cmds) {
			if s == hidden {
				t.Errorf("expected tick label %s to be culled", hidden)
			}
		}
	}
}

func TestRender_TargetColorAndLabel(t *testing.T) {
	cfg := motion.Config{InitialVelocity: 10, TotalDistance: 100, TargetDistance: 20}
	tr := motion.NewTrack(cfg.TotalDistance, DefaultLayout.Width)
	var st motion.State
	motion.Reset(&st, cfg, tr)

	pending := record(st, cfg, tr)
	if !hasText(pending, "Est: 2.00s") {
		t.Errorf("expected estimate label, got %v", texts(pending))
	}
	if strokes(pending, draw.Green) {
		t.Error("expected target drawn red before it is reached")
	}

	st.TargetReached = true
	st.TimeToTarget = 2.01
	reached := record(st, cfg, tr)
	if !hasText(reached, "2.01s") {
		t.Errorf("expected actual time label, got %v", texts(reached))
	}
	if !strokes(reached, draw.Green) {
		t.Error("expected target drawn green once reached")
	}
}

func strokes(cmds []draw.Command, c draw.Color) bool {
	for _, cmd := range cmds {
		if cmd.Op == draw.OpStrokeStyle && cmd.Color == c {
			return true
		}
	}
	return false
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		total    float64
		want     float64
	}{
		{"start", 0, 100, 0},
		{"half", 50, 100, 0.5},
		{"overshoot", 150, 100, 1},
		{"negative", -5, 100, 0},
		{"zero total", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(motion.State{DistanceTraveled: tt.distance}, motion.Config{TotalDistance: tt.total})
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRender_ProgressBarWidth(t *testing.T) {
	cfg := motion.Config{InitialVelocity: 10, TotalDistance: 100}
	tr := motion.NewTrack(cfg.TotalDistance, DefaultLayout.Width)
	st := motion.State{DistanceTraveled: 25, Started: true}

	cmds := record(st, cfg, tr)
	var rects [][]float64
	for _, c := range cmds {
		if c.Op == draw.OpFillRect {
			rects = append(rects, c.Args)
		}
	}
	if len(rects) != 2 {
		t.Fatalf("expected 2 filled rects, got %d", len(rects))
	}
	full, filled := rects[0][2], rects[1][2]
	if full != 1160 || filled != 290 {
		t.Errorf("expected bar widths 1160/290, got %v/%v", full, filled)
	}
}

func TestRender_DiscPathEndsWithFill(t *testing.T) {
	cfg := motion.Config{InitialVelocity: 10, TotalDistance: 500}
	tr := motion.NewTrack(cfg.TotalDistance, DefaultLayout.Width)
	var st motion.State
	motion.Reset(&st, cfg, tr)
	cmds := record(st, cfg, tr)

	arc := -1
	for i, c := range cmds {
		if c.Op == draw.OpArc {
			arc = i
			break
		}
	}
	if arc < 1 {
		t.Fatalf("expected a disc arc after beginPath, got index %d", arc)
	}
	if cmds[arc-1].Op != draw.OpBeginPath {
		t.Errorf("expected beginPath before arc, got %s", cmds[arc-1].Op)
	}

	want := []draw.Op{draw.OpFillStyle, draw.OpFill}
	if len(cmds) < arc+1+len(want) {
		t.Fatalf("expected %v after arc, recording too short", want)
	}
	for i, op := range want {
		if got := cmds[arc+1+i].Op; got != op {
			t.Errorf("command %d after arc: expected %s, got %s", i+1, op, got)
		}
	}
	if cmds[arc+1].Color != draw.Red {
		t.Errorf("expected disc fill %s, got %s", draw.Red, cmds[arc+1].Color)
	}

	for i := 1; i < len(cmds); i++ {
		if cmds[i].Op == draw.OpClosePath && cmds[i-1].Op == draw.OpFill {
			t.Errorf("closePath at %d follows a fill", i)
		}
	}
}
