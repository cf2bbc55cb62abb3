package display

import "testing"

func shadeAt(b *Buffer, x, y int) uint8 {
	return b.Image().GrayAt(x, y).Y
}

func TestNewBufferStartsWhite(t *testing.T) {
	b := NewBuffer(20, 10)
	for _, p := range [][2]int{{0, 0}, {19, 9}, {10, 5}} {
		if got := shadeAt(b, p[0], p[1]); got != White {
			t.Errorf("pixel (%d,%d) = %#x, want white", p[0], p[1], got)
		}
	}
	if w, h := b.Size(); w != 20 || h != 10 {
		t.Errorf("Size() = %dx%d, want 20x10", w, h)
	}
}

// TestSetPixelClips verifies out-of-range coordinates are dropped silently.
func TestSetPixelClips(t *testing.T) {
	b := NewBuffer(4, 4)
	b.SetPixel(-1, 0, Black)
	b.SetPixel(0, -1, Black)
	b.SetPixel(4, 0, Black)
	b.SetPixel(0, 4, Black)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if shadeAt(b, x, y) != White {
				t.Fatalf("clipped write leaked into (%d,%d)", x, y)
			}
		}
	}
	b.SetPixel(2, 3, Grey)
	if shadeAt(b, 2, 3) != Grey {
		t.Error("in-range write did not land")
	}
}

func TestLine(t *testing.T) {
	b := NewBuffer(10, 10)
	b.Line(0, 5, 9, 5, Black)
	for x := 0; x < 10; x++ {
		if shadeAt(b, x, 5) != Black {
			t.Fatalf("horizontal line missing pixel at x=%d", x)
		}
	}

	b = NewBuffer(10, 10)
	b.Line(0, 0, 9, 9, Black)
	for k := 0; k < 10; k++ {
		if shadeAt(b, k, k) != Black {
			t.Fatalf("diagonal line missing pixel at (%d,%d)", k, k)
		}
	}

	// Lines reaching outside the buffer clip instead of failing.
	b.Line(-5, 3, 15, 3, Black)
	if shadeAt(b, 0, 3) != Black || shadeAt(b, 9, 3) != Black {
		t.Error("clipped line did not cover the in-range span")
	}
}

func TestDrawRect(t *testing.T) {
	b := NewBuffer(12, 12)
	b.DrawRect(2, 3, 6, 4, Black) // corners (2,3) and (7,6)
	for _, p := range [][2]int{{2, 3}, {7, 3}, {2, 6}, {7, 6}, {4, 3}, {2, 5}} {
		if shadeAt(b, p[0], p[1]) != Black {
			t.Errorf("outline missing at (%d,%d)", p[0], p[1])
		}
	}
	if shadeAt(b, 4, 5) != White {
		t.Error("outline filled the interior")
	}
}

func TestFillRect(t *testing.T) {
	b := NewBuffer(10, 10)
	b.FillRect(3, 4, 4, 3, DarkGrey)
	if shadeAt(b, 3, 4) != DarkGrey || shadeAt(b, 6, 6) != DarkGrey {
		t.Error("fill did not cover the rectangle")
	}
	if shadeAt(b, 7, 4) != White || shadeAt(b, 3, 7) != White {
		t.Error("fill leaked past the rectangle")
	}

	// Partially off-surface fills clip.
	b.FillRect(8, 8, 5, 5, Black)
	if shadeAt(b, 9, 9) != Black {
		t.Error("clipped fill missing in-range pixel")
	}
}

func TestCircles(t *testing.T) {
	b := NewBuffer(24, 24)
	b.FillCircle(10, 10, 5, Black)
	if shadeAt(b, 10, 10) != Black || shadeAt(b, 15, 10) != Black || shadeAt(b, 10, 5) != Black {
		t.Error("filled circle missing pixels")
	}
	if shadeAt(b, 16, 10) != White {
		t.Error("filled circle exceeded its radius")
	}

	b = NewBuffer(24, 24)
	b.DrawCircle(10, 10, 5, Black)
	if shadeAt(b, 15, 10) != Black || shadeAt(b, 10, 15) != Black {
		t.Error("circle outline missing rim pixels")
	}
	if shadeAt(b, 10, 10) != White {
		t.Error("circle outline filled the center")
	}
}

func TestFillTriangle(t *testing.T) {
	b := NewBuffer(16, 16)
	b.FillTriangle(0, 0, 10, 0, 0, 10, Black)
	for _, p := range [][2]int{{0, 0}, {10, 0}, {0, 10}, {2, 2}, {5, 5}} {
		if shadeAt(b, p[0], p[1]) != Black {
			t.Errorf("triangle missing pixel at (%d,%d)", p[0], p[1])
		}
	}
	if shadeAt(b, 9, 9) != White {
		t.Error("triangle filled outside its hypotenuse")
	}

	// Collinear vertices degrade to a line, not a filled box.
	b = NewBuffer(16, 16)
	b.FillTriangle(0, 0, 5, 5, 10, 10, Black)
	if shadeAt(b, 5, 5) != Black {
		t.Error("degenerate triangle missing its spine")
	}
	if shadeAt(b, 9, 2) != White {
		t.Error("degenerate triangle filled its bounding box")
	}
}

func TestClear(t *testing.T) {
	b := NewBuffer(8, 8)
	b.FillRect(0, 0, 8, 8, Black)
	b.Clear(LightGrey)
	if shadeAt(b, 0, 0) != LightGrey || shadeAt(b, 7, 7) != LightGrey {
		t.Error("clear did not repaint the buffer")
	}
}
