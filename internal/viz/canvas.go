package viz

import (
	"strings"

	"github.com/san-kum/mrua/internal/draw"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of Braille cells with a text layer on top. Its resolution
// in dots is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Text          [][]rune // 0 where no text
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Text:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears the dot at (x, y).
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// IsSet reports whether the dot at (x, y) is lit.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= c.Width || y/4 >= c.Height {
		return false
	}
	return c.Grid[y/4][x/2]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Text[i][j] = 0
		}
	}
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	draw.Bresenham(x0, y0, x1, y1, c.Set)
}

// PutText writes s starting at cell (col, row). When the span is already
// taken by other text the line moves down, up to two rows, so stacked labels
// stay readable on small grids.
func (c *Canvas) PutText(col, row int, s string) {
	runes := []rune(s)
	if col < 0 {
		runes = runes[min(-col, len(runes)):]
		col = 0
	}
	for try := 0; try < 3; try++ {
		r := row + try
		if r < 0 || r >= c.Height {
			continue
		}
		if try < 2 && !c.textFree(col, r, len(runes)) {
			continue
		}
		for i, ch := range runes {
			if col+i >= c.Width {
				break
			}
			c.Text[r][col+i] = ch
		}
		return
	}
}

func (c *Canvas) textFree(col, row, n int) bool {
	for i := col; i < col+n && i < c.Width; i++ {
		if c.Text[row][i] != 0 {
			return false
		}
	}
	return true
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, cell := range row {
			if t := c.Text[i][j]; t != 0 {
				b.WriteRune(t)
				continue
			}
			b.WriteRune(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
