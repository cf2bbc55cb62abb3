package render

import (
	"testing"

	"weather-station/internal/fonts"
)

// fakeMetrics measures every glyph as seven pixels wide and records
// draw calls instead of rasterizing them.
type fakeMetrics struct {
	calls []drawCall
}

type drawCall struct {
	size  fonts.Size
	s     string
	x, y  int
	shade uint8
}

func (f *fakeMetrics) Measure(size fonts.Size, s string) (w, h int) {
	return 7 * len(s), 10 + 2*int(size)
}

func (f *fakeMetrics) Draw(size fonts.Size, s string, x, y int, shade uint8) {
	f.calls = append(f.calls, drawCall{size: size, s: s, x: x, y: y, shade: shade})
}

func (f *fakeMetrics) drawn() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.s
	}
	return out
}

// TestDrawStringAlignment verifies the x anchor shifts by the measured
// width for center and right alignment.
func TestDrawStringAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		wantX int
	}{
		{"left", AlignLeft, 100},
		{"center", AlignCenter, 86},
		{"right", AlignRight, 72},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeMetrics{}
			l := NewTextLayout(fake)
			l.SetFace(fonts.Size12)
			l.DrawString(100, 40, "abcd", tc.align, 0x00)
			if len(fake.calls) != 1 {
				t.Fatalf("expected 1 draw call, got %d", len(fake.calls))
			}
			if got := fake.calls[0].x; got != tc.wantX {
				t.Errorf("expected x %d, got %d", tc.wantX, got)
			}
			if got := fake.calls[0].y; got != 40 {
				t.Errorf("expected y 40, got %d", got)
			}
		})
	}
}

// TestWidthHeightFollowFace verifies measurements use the face set last.
func TestWidthHeightFollowFace(t *testing.T) {
	fake := &fakeMetrics{}
	l := NewTextLayout(fake)
	l.SetFace(fonts.Size24)
	if got := l.Width("abc"); got != 21 {
		t.Errorf("expected width 21, got %d", got)
	}
	if want, got := 10+2*int(fonts.Size24), l.Height("abc"); got != want {
		t.Errorf("expected height %d, got %d", want, got)
	}
}

// TestDrawMultiLine verifies wrapping breaks at the last space in the
// window and falls back to a hard break inside unbroken words.
func TestDrawMultiLine(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxChars int
		maxLines int
		want     []string
	}{
		{"wraps at space", "the quick brown fox", 10, 3, []string{"the quick", "brown fox"}},
		{"hard break without space", "abcdefghijkl", 5, 3, []string{"abcde", "fghij", "kl"}},
		{"line cap drops the rest", "one two three four", 8, 2, []string{"one two", "three"}},
		{"short text single line", "hi", 10, 3, []string{"hi"}},
		{"empty text draws nothing", "", 10, 3, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeMetrics{}
			l := NewTextLayout(fake)
			l.SetFace(fonts.Size18)
			l.DrawMultiLine(0, 100, tc.text, AlignLeft, tc.maxChars, tc.maxLines, 20, 0x00)
			got := fake.drawn()
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d lines, got %d: %q", len(tc.want), len(got), got)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("line %d: expected %q, got %q", i, tc.want[i], got[i])
				}
				if wantY := 100 + i*20; fake.calls[i].y != wantY {
					t.Errorf("line %d: expected y %d, got %d", i, wantY, fake.calls[i].y)
				}
			}
		})
	}
}
