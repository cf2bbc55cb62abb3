package fonts

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Size identifies one of the five bold faces the dashboard uses.
type Size int

const (
	Size8 Size = iota
	Size10
	Size12
	Size18
	Size24
)

var points = map[Size]float64{
	Size8:  8,
	Size10: 10,
	Size12: 12,
	Size18: 18,
	Size24: 24,
}

// Set holds the rasterized faces. Build one with Load and share it; faces are
// not safe for concurrent use, which suits the single render loop.
type Set struct {
	faces map[Size]font.Face
}

// Load parses the embedded bold font and builds the dashboard faces.
// 144 dpi keeps the point sizes legible at panel resolution.
func Load() (*Set, error) {
	parsed, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse embedded font: %w", err)
	}

	faces := make(map[Size]font.Face, len(points))
	for size, pt := range points {
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    pt,
			DPI:     144,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("build %gpt face: %w", pt, err)
		}
		faces[size] = face
	}
	return &Set{faces: faces}, nil
}

// Face returns the rasterized face for a size.
func (s *Set) Face(size Size) font.Face {
	return s.faces[size]
}

// Drawer measures and draws strings onto an image. The y handed to Draw is
// the TOP of the text; the baseline sits at y plus the measured ink height,
// so a string's ink starts where the layout placed it.
type Drawer struct {
	dst draw.Image
	set *Set
}

func NewDrawer(dst draw.Image, set *Set) *Drawer {
	return &Drawer{dst: dst, set: set}
}

// Measure returns the ink width and height of s in the given face.
func (d *Drawer) Measure(size Size, s string) (int, int) {
	bounds, _ := font.BoundString(d.set.Face(size), s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	return w, h
}

// Draw renders s with its ink top aligned to y and its cursor starting at x.
func (d *Drawer) Draw(size Size, s string, x, y int, shade uint8) {
	_, h := d.Measure(size, s)
	fd := font.Drawer{
		Dst:  d.dst,
		Src:  image.NewUniform(color.Gray{Y: shade}),
		Face: d.set.Face(size),
		Dot:  fixed.P(x, y+h),
	}
	fd.DrawString(s)
}
