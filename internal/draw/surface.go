// Package draw defines the immediate-mode 2D drawing contract the renderer
// paints on, plus helpers shared by its backends.
package draw

// Color is a CSS hex color such as "#4CAF50".
type Color string

const (
	Black     Color = "#000000"
	White     Color = "#ffffff"
	Red       Color = "#ff0000"
	Green     Color = "#008000"
	Ink       Color = "#333333"
	TickGray  Color = "#555555"
	LineGray  Color = "#aaaaaa"
	BarTrack  Color = "#dddddd"
	BarFill   Color = "#4caf50"
	BarBorder Color = "#999999"
)

// RGB splits c into 8-bit channels. Malformed colors decode as black.
func (c Color) RGB() (r, g, b uint8) {
	s := string(c)
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	return hexByte(s[0:2]), hexByte(s[2:4]), hexByte(s[4:6])
}

// Luma is the perceived brightness of c in [0, 1].
func (c Color) Luma() float64 {
	r, g, b := c.RGB()
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
}

func hexByte(s string) uint8 {
	var v uint8
	for i := 0; i < len(s); i++ {
		v <<= 4
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
			v |= ch - '0'
		case ch >= 'a' && ch <= 'f':
			v |= ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			v |= ch - 'A' + 10
		}
	}
	return v
}

// Font selects the text size in pixels and weight.
type Font struct {
	Size float64 `json:"size"`
	Bold bool    `json:"bold,omitempty"`
}

// Surface is a 2D immediate-mode drawing context. Paths are built with
// BeginPath, MoveTo, LineTo, Arc and ClosePath and painted by Stroke or Fill
// with the current style. Save and Restore push and pop the transform and
// style.
type Surface interface {
	Size() (width, height float64)
	Clear()

	Save()
	Restore()
	Translate(dx, dy float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	ClosePath()
	Stroke()
	Fill()

	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)
	SetFont(f Font)

	FillText(text string, x, y float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
}
