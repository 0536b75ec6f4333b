package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/mrua/internal/draw"
)

// SVG is a draw.Surface that builds an SVG document.
type SVG struct {
	*draw.Pen
	width, height float64
	sb            strings.Builder
}

func NewSVG(width, height float64) *SVG {
	return &SVG{Pen: draw.NewPen(), width: width, height: height}
}

func (s *SVG) Size() (float64, float64) { return s.width, s.height }

// Clear starts a new document with a white background.
func (s *SVG) Clear() {
	s.Pen.Reset()
	s.sb.Reset()
	s.sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, draw.White))
}

func (s *SVG) Stroke() {
	st := s.Style()
	for _, sp := range s.Subpaths() {
		if len(sp) < 2 {
			continue
		}
		s.sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="%g" d="%s"/>
`, st.Stroke, st.LineWidth, pathData(sp)))
	}
}

func (s *SVG) Fill() {
	fill := s.Style().Fill
	for _, sp := range s.Subpaths() {
		if len(sp) < 3 {
			continue
		}
		s.sb.WriteString(fmt.Sprintf(`<path fill="%s" d="%sZ"/>
`, fill, pathData(sp)))
	}
}

func (s *SVG) FillText(text string, x, y float64) {
	st := s.Style()
	dx, dy := s.Device(x, y)
	weight := "normal"
	if st.Font.Bold {
		weight = "bold"
	}
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(text))
	s.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-family="Arial" font-size="%g" font-weight="%s" fill="%s">%s</text>
`, dx, dy, st.Font.Size, weight, st.Fill, esc.String()))
}

func (s *SVG) FillRect(x, y, w, h float64) {
	dx, dy := s.Device(x, y)
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, dx, dy, w, h, s.Style().Fill))
}

func (s *SVG) StrokeRect(x, y, w, h float64) {
	st := s.Style()
	dx, dy := s.Device(x, y)
	s.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="%g"/>
`, dx, dy, w, h, st.Stroke, st.LineWidth))
}

// String returns the complete document.
func (s *SVG) String() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
%s</svg>
`, s.width, s.height, s.width, s.height, s.sb.String())
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func pathData(sp []draw.Point) string {
	var sb strings.Builder
	for i, p := range sp {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	return sb.String()
}
