package fonts

import (
	"image"
	"testing"
)

func TestLoadBuildsAllFaces(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, size := range []Size{Size8, Size10, Size12, Size18, Size24} {
		if set.Face(size) == nil {
			t.Errorf("missing face for size %d", size)
		}
	}
}

// TestMeasure verifies the ink box grows with string length and face size.
func TestMeasure(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := NewDrawer(image.NewGray(image.Rect(0, 0, 10, 10)), set)

	w1, h1 := d.Measure(Size12, "Hi")
	if w1 <= 0 || h1 <= 0 {
		t.Fatalf("Measure(\"Hi\") = %dx%d, want positive", w1, h1)
	}
	w2, _ := d.Measure(Size12, "Hi there")
	if w2 <= w1 {
		t.Errorf("longer string measured %d, not wider than %d", w2, w1)
	}
	w3, h3 := d.Measure(Size24, "Hi")
	if w3 <= w1 || h3 <= h1 {
		t.Errorf("24pt face measured %dx%d, not larger than 12pt %dx%d", w3, h3, w1, h1)
	}
	if w, h := d.Measure(Size12, ""); w != 0 || h != 0 {
		t.Errorf("empty string measured %dx%d, want 0x0", w, h)
	}
}

// TestDraw verifies glyph ink lands inside the image near the requested spot.
func TestDraw(t *testing.T) {
	set, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	img := image.NewGray(image.Rect(0, 0, 120, 60))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	d := NewDrawer(img, set)
	d.Draw(Size12, "X", 10, 10, 0x00)

	inked := false
	for _, p := range img.Pix {
		if p != 0xFF {
			inked = true
			break
		}
	}
	if !inked {
		t.Fatal("Draw left the image blank")
	}
}
