package export

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/san-kum/mrua/internal/draw"
)

// PNG is a draw.Surface backed by an anti-aliased raster.
type PNG struct {
	*draw.Pen
	dc            *gg.Context
	width, height float64
	regular, bold *text.FontSource
}

func NewPNG(width, height float64) (*PNG, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &PNG{
		Pen:     draw.NewPen(),
		dc:      gg.NewContext(int(width), int(height)),
		width:   width,
		height:  height,
		regular: regular,
		bold:    bold,
	}, nil
}

func (p *PNG) Size() (float64, float64) { return p.width, p.height }

func (p *PNG) Clear() {
	p.Pen.Reset()
	p.dc.SetHexColor(string(draw.White))
	p.dc.DrawRectangle(0, 0, p.width, p.height)
	_ = p.dc.Fill()
}

// trace loads the pen's subpaths into the gg path.
func (p *PNG) trace(minPoints int) bool {
	ok := false
	for _, sp := range p.Subpaths() {
		if len(sp) < minPoints {
			continue
		}
		p.dc.MoveTo(sp[0].X, sp[0].Y)
		for _, pt := range sp[1:] {
			p.dc.LineTo(pt.X, pt.Y)
		}
		ok = true
	}
	return ok
}

func (p *PNG) Stroke() {
	st := p.Style()
	if !p.trace(2) {
		return
	}
	p.dc.SetHexColor(string(st.Stroke))
	p.dc.SetLineWidth(st.LineWidth)
	_ = p.dc.Stroke()
}

func (p *PNG) Fill() {
	if !p.trace(3) {
		return
	}
	p.dc.ClosePath()
	p.dc.SetHexColor(string(p.Style().Fill))
	_ = p.dc.Fill()
}

func (p *PNG) FillText(s string, x, y float64) {
	st := p.Style()
	src := p.regular
	if st.Font.Bold {
		src = p.bold
	}
	p.dc.SetFont(src.Face(st.Font.Size))
	p.dc.SetHexColor(string(st.Fill))
	dx, dy := p.Device(x, y)
	p.dc.DrawString(s, dx, dy)
}

func (p *PNG) FillRect(x, y, w, h float64) {
	dx, dy := p.Device(x, y)
	p.dc.DrawRectangle(dx, dy, w, h)
	p.dc.SetHexColor(string(p.Style().Fill))
	_ = p.dc.Fill()
}

func (p *PNG) StrokeRect(x, y, w, h float64) {
	st := p.Style()
	dx, dy := p.Device(x, y)
	p.dc.DrawRectangle(dx, dy, w, h)
	p.dc.SetHexColor(string(st.Stroke))
	p.dc.SetLineWidth(st.LineWidth)
	_ = p.dc.Stroke()
}

func (p *PNG) SavePNG(path string) error { return p.dc.SavePNG(path) }

func (p *PNG) EncodePNG(w io.Writer) error { return p.dc.EncodePNG(w) }

func (p *PNG) Close() error { return p.dc.Close() }
