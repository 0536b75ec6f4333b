package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mrua/internal/draw"
)

// Surface draws into the current raylib frame. It must only be used between
// BeginDrawing and EndDrawing.
type Surface struct {
	*draw.Pen
	Font          rl.Font
	Width, Height float64
	Background    draw.Color
}

func NewSurface(font rl.Font, width, height float64) *Surface {
	return &Surface{Pen: draw.NewPen(), Font: font, Width: width, Height: height, Background: draw.White}
}

func color(c draw.Color) rl.Color {
	r, g, b := c.RGB()
	return rl.NewColor(r, g, b, 255)
}

func (s *Surface) Size() (float64, float64) { return s.Width, s.Height }

func (s *Surface) Clear() {
	s.Pen.Reset()
	rl.DrawRectangleRec(rl.NewRectangle(0, 0, float32(s.Width), float32(s.Height)), color(s.Background))
}

func (s *Surface) Stroke() {
	st := s.Style()
	c := color(st.Stroke)
	w := float32(st.LineWidth)
	for _, sp := range s.Subpaths() {
		for i := 1; i < len(sp); i++ {
			rl.DrawLineEx(vec(sp[i-1]), vec(sp[i]), w, c)
		}
	}
}

func (s *Surface) Fill() {
	c := color(s.Style().Fill)
	for _, sp := range s.Subpaths() {
		if len(sp) < 3 {
			continue
		}
		rl.DrawTriangleFan(fan(sp), c)
	}
}

func (s *Surface) FillText(text string, x, y float64) {
	st := s.Style()
	dx, dy := s.Device(x, y)
	size := float32(st.Font.Size)
	// canvas text sits on its baseline, raylib text hangs from its top
	pos := rl.NewVector2(float32(dx), float32(dy)-size*0.8)
	rl.DrawTextEx(s.Font, text, pos, size, 1, color(st.Fill))
}

func (s *Surface) FillRect(x, y, w, h float64) {
	dx, dy := s.Device(x, y)
	rl.DrawRectangleRec(rl.NewRectangle(float32(dx), float32(dy), float32(w), float32(h)), color(s.Style().Fill))
}

func (s *Surface) StrokeRect(x, y, w, h float64) {
	st := s.Style()
	dx, dy := s.Device(x, y)
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(dx), float32(dy), float32(w), float32(h)), float32(st.LineWidth), color(st.Stroke))
}

func vec(p draw.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

// fan orders a convex polygon the way raylib's triangle fan expects, which
// with y pointing down is a negative shoelace area.
func fan(poly []draw.Point) []rl.Vector2 {
	area := 0.0
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	out := make([]rl.Vector2, len(poly))
	for i, p := range poly {
		if area > 0 {
			p = poly[len(poly)-1-i]
		}
		out[i] = vec(p)
	}
	return out
}
