package display

// Shades of the 8-bit greyscale palette. Lower is darker; the panel driver
// collapses them to black/white, the PNG sink keeps them.
const (
	Black     uint8 = 0x00
	DarkGrey  uint8 = 0x44
	Grey      uint8 = 0x88
	LightGrey uint8 = 0xBB
	White     uint8 = 0xFF
)

// Surface is the drawing target the renderer works against. Coordinates may
// fall outside the surface; implementations clip instead of failing.
type Surface interface {
	Size() (w, h int)
	SetPixel(x, y int, shade uint8)
	Line(x0, y0, x1, y1 int, shade uint8)
	DrawRect(x, y, w, h int, shade uint8)
	FillRect(x, y, w, h int, shade uint8)
	DrawCircle(cx, cy, r int, shade uint8)
	FillCircle(cx, cy, r int, shade uint8)
	FillTriangle(x0, y0, x1, y1, x2, y2 int, shade uint8)
	Clear(shade uint8)
}

// Sink receives finished frames and delivers them to an output device.
type Sink interface {
	Push(frame *Buffer) error
	Close() error
}
