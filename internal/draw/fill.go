package draw

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Rasterize fills a polygon with golang.org/x/image/vector and calls set for
// every pixel at least half covered. Coordinates are scaled by sx, sy first.
func Rasterize(poly []Point, sx, sy float64, set func(x, y int)) {
	if len(poly) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range poly {
		minX = math.Min(minX, pt.X*sx)
		maxX = math.Max(maxX, pt.X*sx)
		minY = math.Min(minY, pt.Y*sy)
		maxY = math.Max(maxY, pt.Y*sy)
	}
	x0, y0 := int(math.Floor(minX)), int(math.Floor(minY))
	w, h := int(math.Ceil(maxX))-x0, int(math.Ceil(maxY))-y0
	if w <= 0 || h <= 0 {
		return
	}

	r := vector.NewRasterizer(w, h)
	local := func(pt Point) (float32, float32) {
		return float32(pt.X*sx - float64(x0)), float32(pt.Y*sy - float64(y0))
	}
	r.MoveTo(local(poly[0]))
	for _, pt := range poly[1:] {
		r.LineTo(local(pt))
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				set(x0+x, y0+y)
			}
		}
	}
}

// Bresenham walks the integer line from (x0, y0) to (x1, y1).
func Bresenham(x0, y0, x1, y1 int, set func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
