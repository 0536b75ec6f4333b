package draw

import "math"

// Point is a position in device coordinates.
type Point struct{ X, Y float64 }

// Style is the paint state saved and restored with the transform.
type Style struct {
	Stroke    Color
	Fill      Color
	LineWidth float64
	Font      Font
}

// DefaultStyle matches a fresh HTML canvas context.
var DefaultStyle = Style{Stroke: Black, Fill: Black, LineWidth: 1, Font: Font{Size: 10}}

type penFrame struct {
	dx, dy float64
	style  Style
}

// Pen tracks the transform, style and current path for backends that have
// no path API of their own. Backends embed it and implement Stroke and Fill
// on top of Subpaths.
type Pen struct {
	dx, dy float64
	style  Style
	stack  []penFrame
	paths  [][]Point
	closed []bool
}

func NewPen() *Pen {
	return &Pen{style: DefaultStyle}
}

// Reset drops the path, the transform stack and the style.
func (p *Pen) Reset() {
	p.dx, p.dy = 0, 0
	p.style = DefaultStyle
	p.stack = p.stack[:0]
	p.BeginPath()
}

func (p *Pen) Save() {
	p.stack = append(p.stack, penFrame{dx: p.dx, dy: p.dy, style: p.style})
}

func (p *Pen) Restore() {
	if len(p.stack) == 0 {
		return
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.dx, p.dy, p.style = top.dx, top.dy, top.style
}

func (p *Pen) Translate(dx, dy float64) {
	p.dx += dx
	p.dy += dy
}

// Device maps user coordinates through the current transform.
func (p *Pen) Device(x, y float64) (float64, float64) {
	return x + p.dx, y + p.dy
}

func (p *Pen) BeginPath() {
	p.paths = p.paths[:0]
	p.closed = p.closed[:0]
}

func (p *Pen) MoveTo(x, y float64) {
	dx, dy := p.Device(x, y)
	p.paths = append(p.paths, []Point{{dx, dy}})
	p.closed = append(p.closed, false)
}

func (p *Pen) LineTo(x, y float64) {
	if len(p.paths) == 0 {
		p.MoveTo(x, y)
		return
	}
	dx, dy := p.Device(x, y)
	last := len(p.paths) - 1
	p.paths[last] = append(p.paths[last], Point{dx, dy})
}

// Arc appends a flattened clockwise arc, joined to the current subpath by a
// straight line the way a canvas context does.
func (p *Pen) Arc(x, y, r, start, end float64) {
	sweep := end - start
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * 48))
	if n < 4 {
		n = 4
	}
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 && len(p.paths) == 0 {
			p.MoveTo(px, py)
			continue
		}
		p.LineTo(px, py)
	}
}

func (p *Pen) ClosePath() {
	if len(p.paths) == 0 {
		return
	}
	p.closed[len(p.closed)-1] = true
}

// Subpaths returns the current path in device coordinates. Closed subpaths
// end with their first point repeated.
func (p *Pen) Subpaths() [][]Point {
	out := make([][]Point, 0, len(p.paths))
	for i, sp := range p.paths {
		if len(sp) == 0 {
			continue
		}
		pts := append([]Point(nil), sp...)
		if p.closed[i] && len(sp) > 1 {
			pts = append(pts, sp[0])
		}
		out = append(out, pts)
	}
	return out
}

func (p *Pen) SetStrokeColor(c Color) { p.style.Stroke = c }
func (p *Pen) SetFillColor(c Color)   { p.style.Fill = c }
func (p *Pen) SetLineWidth(w float64) { p.style.LineWidth = w }
func (p *Pen) SetFont(f Font)         { p.style.Font = f }

func (p *Pen) Style() Style { return p.style }

// RectPath returns the closed outline of a rectangle in device coordinates.
func (p *Pen) RectPath(x, y, w, h float64) []Point {
	x0, y0 := p.Device(x, y)
	return []Point{{x0, y0}, {x0 + w, y0}, {x0 + w, y0 + h}, {x0, y0 + h}, {x0, y0}}
}
