package display

import (
	"image"
	"image/color"
	"image/draw"
)

// Buffer is an in-memory greyscale framebuffer implementing Surface.
type Buffer struct {
	img *image.Gray
}

var _ Surface = (*Buffer)(nil)

// NewBuffer returns a w by h framebuffer cleared to white.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{img: image.NewGray(image.Rect(0, 0, w, h))}
	b.Clear(White)
	return b
}

// Image exposes the underlying pixels for text drawing and the sinks.
func (b *Buffer) Image() *image.Gray {
	return b.img
}

func (b *Buffer) Size() (int, int) {
	return b.img.Rect.Dx(), b.img.Rect.Dy()
}

func (b *Buffer) SetPixel(x, y int, shade uint8) {
	if image.Pt(x, y).In(b.img.Rect) {
		b.img.SetGray(x, y, color.Gray{Y: shade})
	}
}

// Line draws a 1px Bresenham line between the two points, inclusive.
func (b *Buffer) Line(x0, y0, x1, y1 int, shade uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.SetPixel(x0, y0, shade)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Buffer) DrawRect(x, y, w, h int, shade uint8) {
	if w <= 0 || h <= 0 {
		return
	}
	b.Line(x, y, x+w-1, y, shade)
	b.Line(x, y+h-1, x+w-1, y+h-1, shade)
	b.Line(x, y, x, y+h-1, shade)
	b.Line(x+w-1, y, x+w-1, y+h-1, shade)
}

func (b *Buffer) FillRect(x, y, w, h int, shade uint8) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.SetPixel(xx, yy, shade)
		}
	}
}

func (b *Buffer) DrawCircle(cx, cy, r int, shade uint8) {
	b.scanCircle(cx, cy, r, shade, false)
}

func (b *Buffer) FillCircle(cx, cy, r int, shade uint8) {
	b.scanCircle(cx, cy, r, shade, true)
}

func (b *Buffer) scanCircle(cx, cy, r int, shade uint8, fill bool) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			d := x*x + y*y
			if fill {
				if d <= r*r {
					b.SetPixel(cx+x, cy+y, shade)
				}
			} else if d >= (r-1)*(r-1) && d <= r*r {
				b.SetPixel(cx+x, cy+y, shade)
			}
		}
	}
}

// FillTriangle rasterizes the triangle with an edge-function scan over its
// bounding box. Degenerate triangles fall back to their outline.
func (b *Buffer) FillTriangle(x0, y0, x1, y1, x2, y2 int, shade uint8) {
	area := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if area == 0 {
		b.Line(x0, y0, x1, y1, shade)
		b.Line(x1, y1, x2, y2, shade)
		return
	}

	minX := min3(x0, x1, x2)
	maxX := max3(x0, x1, x2)
	minY := min3(y0, y1, y2)
	maxY := max3(y0, y1, y2)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			d0 := (x1-x0)*(y-y0) - (y1-y0)*(x-x0)
			d1 := (x2-x1)*(y-y1) - (y2-y1)*(x-x1)
			d2 := (x0-x2)*(y-y2) - (y0-y2)*(x-x2)
			if (d0 >= 0 && d1 >= 0 && d2 >= 0) || (d0 <= 0 && d1 <= 0 && d2 <= 0) {
				b.SetPixel(x, y, shade)
			}
		}
	}
}

func (b *Buffer) Clear(shade uint8) {
	draw.Draw(b.img, b.img.Rect, &image.Uniform{C: color.Gray{Y: shade}}, image.Point{}, draw.Src)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
