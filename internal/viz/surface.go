package viz

import (
	"math"

	"github.com/san-kum/mrua/internal/draw"
)

// lightFill is the luma above which a fill is treated as background. Dots
// cannot show shades, so only dark fills are drawn.
const lightFill = 0.75

// Surface draws onto a Canvas, mapping a logical drawing of Width x Height
// pixels onto the canvas dots.
type Surface struct {
	*draw.Pen
	Canvas        *Canvas
	Width, Height float64
}

func NewSurface(c *Canvas, width, height float64) *Surface {
	return &Surface{Pen: draw.NewPen(), Canvas: c, Width: width, Height: height}
}

func (s *Surface) scale() (float64, float64) {
	return float64(s.Canvas.Width*2) / s.Width, float64(s.Canvas.Height*4) / s.Height
}

func (s *Surface) Size() (float64, float64) { return s.Width, s.Height }

func (s *Surface) Clear() {
	s.Canvas.Clear()
	s.Pen.Reset()
}

func (s *Surface) Stroke() {
	sx, sy := s.scale()
	for _, sp := range s.Subpaths() {
		if len(sp) == 1 {
			s.Canvas.Set(dot(sp[0].X, sx), dot(sp[0].Y, sy))
			continue
		}
		for i := 1; i < len(sp); i++ {
			a, b := sp[i-1], sp[i]
			s.Canvas.DrawLine(dot(a.X, sx), dot(a.Y, sy), dot(b.X, sx), dot(b.Y, sy))
		}
	}
}

func (s *Surface) Fill() {
	if s.Style().Fill.Luma() > lightFill {
		return
	}
	sx, sy := s.scale()
	for _, sp := range s.Subpaths() {
		s.fillPoly(sp, sx, sy)
	}
}

func (s *Surface) fillPoly(poly []draw.Point, sx, sy float64) {
	n := 0
	draw.Rasterize(poly, sx, sy, func(x, y int) {
		s.Canvas.Set(x, y)
		n++
	})
	// shapes thinner than a dot still leave a mark
	if n == 0 && len(poly) > 0 {
		for i := 1; i < len(poly); i++ {
			s.Canvas.DrawLine(dot(poly[i-1].X, sx), dot(poly[i-1].Y, sy), dot(poly[i].X, sx), dot(poly[i].Y, sy))
		}
	}
}

func (s *Surface) FillText(text string, x, y float64) {
	dx, dy := s.Device(x, y)
	sx, sy := s.scale()
	col := int(math.Floor(dx * sx / 2))
	row := int(math.Floor(dy * sy / 4))
	s.Canvas.PutText(col, row, text)
}

func (s *Surface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 || s.Style().Fill.Luma() > lightFill {
		return
	}
	sx, sy := s.scale()
	s.fillPoly(s.RectPath(x, y, w, h), sx, sy)
}

func (s *Surface) StrokeRect(x, y, w, h float64) {
	sx, sy := s.scale()
	r := s.RectPath(x, y, w, h)
	for i := 1; i < len(r); i++ {
		s.Canvas.DrawLine(dot(r[i-1].X, sx), dot(r[i-1].Y, sy), dot(r[i].X, sx), dot(r[i].Y, sy))
	}
}

func dot(v, scale float64) int {
	return int(math.Floor(v * scale))
}
