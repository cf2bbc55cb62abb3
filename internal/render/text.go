package render

import (
	"strings"

	"weather-station/internal/fonts"
)

// Align selects which edge of a string is anchored at the x coordinate
// handed to DrawString.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextMetrics measures and rasterizes strings in one of the preloaded
// typeface sizes. *fonts.Drawer satisfies it; tests substitute a fake
// with predictable glyph widths.
type TextMetrics interface {
	Measure(size fonts.Size, s string) (w, h int)
	Draw(size fonts.Size, s string, x, y int, shade uint8)
}

var _ TextMetrics = (*fonts.Drawer)(nil)

// TextLayout draws aligned and wrapped strings. It keeps a current face
// so callers set the size once per screen block instead of threading it
// through every call.
type TextLayout struct {
	m    TextMetrics
	size fonts.Size
}

func NewTextLayout(m TextMetrics) *TextLayout {
	return &TextLayout{m: m, size: fonts.Size12}
}

// SetFace selects the face used by subsequent draw calls.
func (l *TextLayout) SetFace(size fonts.Size) { l.size = size }

// Width reports the ink width of s in the current face.
func (l *TextLayout) Width(s string) int {
	w, _ := l.m.Measure(l.size, s)
	return w
}

// Height reports the ink height of s in the current face.
func (l *TextLayout) Height(s string) int {
	_, h := l.m.Measure(l.size, s)
	return h
}

// DrawString draws s anchored at (x, y). The y coordinate is the top of
// the ink box, not the baseline, so blocks of mixed sizes line up on
// their upper edge.
func (l *TextLayout) DrawString(x, y int, s string, align Align, shade uint8) {
	w, _ := l.m.Measure(l.size, s)
	switch align {
	case AlignCenter:
		x -= w / 2
	case AlignRight:
		x -= w
	}
	l.m.Draw(l.size, s, x, y, shade)
}

// DrawMultiLine wraps s onto up to maxLines lines of at most maxChars
// bytes each, breaking at the last space inside the window when there
// is one and mid-word when there is not. Text past the last line is
// dropped.
func (l *TextLayout) DrawMultiLine(x, y int, s string, align Align, maxChars, maxLines, lineSpacing int, shade uint8) {
	remaining := s
	for line := 0; line < maxLines && remaining != ""; line++ {
		if len(remaining) <= maxChars {
			l.DrawString(x, y+line*lineSpacing, remaining, align, shade)
			return
		}
		next, rest := remaining[:maxChars], remaining[maxChars:]
		if cut := strings.LastIndexByte(remaining[:maxChars], ' '); cut > 0 {
			next, rest = remaining[:cut], remaining[cut+1:]
		}
		l.DrawString(x, y+line*lineSpacing, next, align, shade)
		remaining = rest
	}
}
