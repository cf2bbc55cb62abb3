package render

import (
	"testing"
	"time"

	"weather-station/internal/weather"
)

func plotSamples(temps ...float64) []weather.Sample {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]weather.Sample, len(temps))
	for i, temp := range temps {
		out[i] = weather.Sample{Time: base.Add(time.Duration(i) * time.Hour), Temp: temp}
	}
	return out
}

// TestNewPlotBounds verifies the axis bounds pad the series extremes
// by 10% of the span.
func TestNewPlotBounds(t *testing.T) {
	p := NewPlot(240, 255, 665, 230, plotSamples(10, 14, 20, 12))
	if p.Lo != 9.0 {
		t.Errorf("expected lower bound 9.0, got %v", p.Lo)
	}
	if p.Hi != 21.0 {
		t.Errorf("expected upper bound 21.0, got %v", p.Hi)
	}
}

// TestNewPlotFlatSeries verifies a flat series widens to a ten degree
// span before padding, leaving one degree on each side of the value.
func TestNewPlotFlatSeries(t *testing.T) {
	p := NewPlot(0, 0, 100, 100, plotSamples(15, 15, 15))
	if p.Lo != 14.0 || p.Hi != 16.0 {
		t.Errorf("expected bounds [14.0, 16.0], got [%v, %v]", p.Lo, p.Hi)
	}
}

// TestBarSpanEven verifies the slot edges for an even split.
func TestBarSpanEven(t *testing.T) {
	p := NewPlot(0, 0, 300, 100, plotSamples(1, 2, 3))
	wants := [][2]int{{0, 100}, {100, 200}, {200, 300}}
	for i, want := range wants {
		x0, x1 := p.BarSpan(i)
		if x0 != want[0] || x1 != want[1] {
			t.Errorf("bar %d: expected [%d, %d), got [%d, %d)", i, want[0], want[1], x0, x1)
		}
	}
}

// TestBarSpanTiles verifies bars cover the full width without gaps or
// overlap even when the width does not divide evenly.
func TestBarSpanTiles(t *testing.T) {
	for _, n := range []int{3, 7, 24} {
		p := NewPlot(240, 0, 665, 100, plotSamples(make([]float64, n)...))
		prev := 240
		for i := 0; i < n; i++ {
			x0, x1 := p.BarSpan(i)
			if x0 != prev {
				t.Errorf("n=%d bar %d: expected start %d, got %d", n, i, prev, x0)
			}
			if x1 <= x0 {
				t.Errorf("n=%d bar %d: empty span [%d, %d)", n, i, x0, x1)
			}
			prev = x1
		}
		if prev != 240+665 {
			t.Errorf("n=%d: expected bars to end at %d, got %d", n, 240+665, prev)
		}
	}
}

// TestYTemp verifies temperatures map linearly with the lower bound on
// the bottom border.
func TestYTemp(t *testing.T) {
	p := Plot{X: 0, Y: 100, W: 300, H: 200, Lo: 0, Hi: 100}
	tests := []struct {
		temp float64
		want int
	}{
		{0, 300},
		{100, 100},
		{50, 200},
		{25, 250},
	}
	for _, tc := range tests {
		if got := p.YTemp(tc.temp); got != tc.want {
			t.Errorf("YTemp(%v): expected %d, got %d", tc.temp, tc.want, got)
		}
	}
}

// TestBarHeight verifies probability scaling and clamping.
func TestBarHeight(t *testing.T) {
	p := Plot{H: 230}
	tests := []struct {
		pop  float64
		want int
	}{
		{0, 0},
		{1, 230},
		{0.5, 115},
		{-0.2, 0},
		{1.4, 230},
	}
	for _, tc := range tests {
		if got := p.BarHeight(tc.pop); got != tc.want {
			t.Errorf("BarHeight(%v): expected %d, got %d", tc.pop, tc.want, got)
		}
	}
}

// TestTicks verifies gridline positions and label values at the axis
// endpoints and an interior tick.
func TestTicks(t *testing.T) {
	p := Plot{Y: 255, H: 230, Lo: 10, Hi: 20}
	if got := p.TickY(0); got != 485 {
		t.Errorf("expected bottom gridline at 485, got %d", got)
	}
	if got := p.TickY(5); got != 255 {
		t.Errorf("expected top gridline at 255, got %d", got)
	}
	if want, got := 485-2*46, p.TickY(2); got != want {
		t.Errorf("expected gridline at %d, got %d", want, got)
	}
	if got := p.TickValue(0); got != 10.0 {
		t.Errorf("expected bottom label 10.0, got %v", got)
	}
	if got := p.TickValue(3); got != 16.0 {
		t.Errorf("expected label 16.0, got %v", got)
	}
	if got := p.TickValue(5); got != 20.0 {
		t.Errorf("expected top label 20.0, got %v", got)
	}
}

// TestLabelStride verifies roughly four time labels fit regardless of
// sample count.
func TestLabelStride(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{24, 6},
		{16, 4},
		{7, 1},
		{3, 1},
		{1, 1},
	}
	for _, tc := range tests {
		p := NewPlot(0, 0, 665, 230, plotSamples(make([]float64, tc.n)...))
		if got := p.LabelStride(); got != tc.want {
			t.Errorf("n=%d: expected stride %d, got %d", tc.n, tc.want, got)
		}
	}
}
