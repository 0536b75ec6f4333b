package draw

import (
	"reflect"
	"testing"
)

func TestColor_RGB(t *testing.T) {
	tests := []struct {
		c       Color
		r, g, b uint8
	}{
		{"#4caf50", 0x4c, 0xaf, 0x50},
		{"#4CAF50", 0x4c, 0xaf, 0x50},
		{"#fff", 255, 255, 255},
		{"bogus", 0, 0, 0},
	}

	for _, tt := range tests {
		r, g, b := tt.c.RGB()
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("%s.RGB() = %d,%d,%d, want %d,%d,%d", tt.c, r, g, b, tt.r, tt.g, tt.b)
		}
	}

	if l := White.Luma(); l < 0.99 {
		t.Errorf("expected white luma ~1, got %f", l)
	}
	if l := Black.Luma(); l != 0 {
		t.Errorf("expected black luma 0, got %f", l)
	}
}

func TestPen_SaveRestoreTranslate(t *testing.T) {
	p := NewPen()
	p.SetFillColor(Red)
	p.Save()
	p.Translate(-100, 5)
	p.SetFillColor(Green)

	x, y := p.Device(150, 10)
	if x != 50 || y != 15 {
		t.Errorf("expected (50, 15), got (%v, %v)", x, y)
	}

	p.Restore()
	if p.Style().Fill != Red {
		t.Errorf("expected fill restored to red, got %s", p.Style().Fill)
	}
	x, _ = p.Device(150, 10)
	if x != 150 {
		t.Errorf("expected translation restored, got x=%v", x)
	}

	p.Restore() // unbalanced restore is ignored
}

func TestPen_ClosedSubpath(t *testing.T) {
	p := NewPen()
	p.BeginPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(0, 10)
	p.ClosePath()

	paths := p.Subpaths()
	if len(paths) != 1 {
		t.Fatalf("expected 1 subpath, got %d", len(paths))
	}
	if len(paths[0]) != 4 || paths[0][3] != paths[0][0] {
		t.Errorf("expected closed triangle, got %v", paths[0])
	}
}

func TestPen_ArcStartsSubpath(t *testing.T) {
	p := NewPen()
	p.BeginPath()
	p.Arc(50, 50, 10, 0, 6.283185307179586)

	paths := p.Subpaths()
	if len(paths) != 1 {
		t.Fatalf("expected 1 subpath, got %d", len(paths))
	}
	first := paths[0][0]
	if first.X < 59.99 || first.Y < 49.99 || first.Y > 50.01 {
		t.Errorf("expected arc to start at (60, 50), got %v", first)
	}
}

func TestRasterize_Rectangle(t *testing.T) {
	rect := []Point{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	count := 0
	Rasterize(rect, 1, 1, func(x, y int) {
		if x < 0 || x >= 4 || y < 0 || y >= 3 {
			t.Errorf("pixel (%d, %d) outside rectangle", x, y)
		}
		count++
	})
	if count != 12 {
		t.Errorf("expected 12 pixels, got %d", count)
	}
}

func TestRasterize_ScaledOffsetTriangle(t *testing.T) {
	tri := []Point{{5, 5}, {15, 5}, {5, 15}}
	seen := map[[2]int]bool{}
	Rasterize(tri, 2, 2, func(x, y int) {
		if x < 10 || x >= 30 || y < 10 || y >= 30 {
			t.Errorf("pixel (%d, %d) outside scaled bounds", x, y)
		}
		if x-10+y-10 > 20 {
			t.Errorf("pixel (%d, %d) beyond the hypotenuse", x, y)
		}
		seen[[2]int{x, y}] = true
	})
	// half of 20x20, give or take the diagonal
	if len(seen) < 180 || len(seen) > 220 {
		t.Errorf("expected about 200 pixels, got %d", len(seen))
	}
	if !seen[[2]int{10, 10}] {
		t.Error("expected the right-angle corner to be filled")
	}
	if seen[[2]int{29, 29}] {
		t.Error("expected the far corner to stay empty")
	}
}

func TestRasterize_Degenerate(t *testing.T) {
	calls := 0
	set := func(x, y int) { calls++ }
	Rasterize([]Point{{0, 0}, {4, 4}}, 1, 1, set)
	Rasterize([]Point{{0, 2}, {4, 2}, {8, 2}}, 1, 1, set)
	if calls != 0 {
		t.Errorf("expected no pixels for degenerate polygons, got %d", calls)
	}
}

func TestRecorder_ReplayReproducesCommands(t *testing.T) {
	src := NewRecorder(100, 50)
	src.Clear()
	src.Save()
	src.Translate(-10, 0)
	src.SetStrokeColor(LineGray)
	src.BeginPath()
	src.MoveTo(0, 10)
	src.LineTo(90, 10)
	src.Stroke()
	src.Restore()
	src.SetFont(Font{Size: 14})
	src.FillText("12m", 5, 20)
	src.Arc(1, 2, 3, 0, 1)
	src.FillRect(0, 0, 5, 5)
	src.StrokeRect(0, 0, 5, 5)

	dst := NewRecorder(100, 50)
	Replay(src.Commands(), dst)

	if !reflect.DeepEqual(src.Commands(), dst.Commands()) {
		t.Errorf("replay diverged:\n got %v\nwant %v", dst.Commands(), src.Commands())
	}

	taken := src.Take()
	if len(taken) == 0 || len(src.Commands()) != 0 {
		t.Error("Take should hand over the recording and start fresh")
	}
}

func TestReplay_SkipsShortCommands(t *testing.T) {
	cmds := []Command{
		{Op: OpBeginPath},
		{Op: OpMoveTo, Args: []float64{1}},
		{Op: OpLineTo},
		{Op: OpArc, Args: []float64{1, 2, 3, 4}},
		{Op: OpTranslate, Args: []float64{5}},
		{Op: OpLineWidth},
		{Op: OpFillText, Text: "x", Args: []float64{1}},
		{Op: OpFillRect, Args: []float64{0, 0, 1}},
		{Op: OpStrokeRect, Args: nil},
		{Op: OpMoveTo, Args: []float64{1, 2}},
		{Op: OpStroke},
	}

	dst := NewRecorder(10, 10)
	Replay(cmds, dst)

	want := []Op{OpBeginPath, OpMoveTo, OpStroke}
	got := dst.Commands()
	if len(got) != len(want) {
		t.Fatalf("expected %d commands, got %d: %v", len(want), len(got), got)
	}
	for i, op := range want {
		if got[i].Op != op {
			t.Errorf("command %d: expected %s, got %s", i, op, got[i].Op)
		}
	}
	if !reflect.DeepEqual(got[1].Args, []float64{1, 2}) {
		t.Errorf("expected moveTo(1, 2), got %v", got[1].Args)
	}
}
