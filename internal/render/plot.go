package render

import "weather-station/internal/weather"

// axisTicks is the number of intervals between gridlines on the graph's
// vertical axes. Both axes carry axisTicks+1 labels.
const axisTicks = 5

// Plot maps an hourly forecast series onto a fixed graph rectangle.
// The temperature axis scales against the padded bounds of the series;
// the precipitation axis is fixed at 0-100%.
type Plot struct {
	X, Y int
	W, H int

	// Lo and Hi are the padded temperature bounds of the left axis.
	Lo, Hi float64

	n int
}

// NewPlot derives the temperature bounds for samples: the raw span
// padded by 10% on each side, with the span widened to ten degrees
// when the series is nearly flat so the line stays off the borders.
func NewPlot(x, y, w, h int, samples []weather.Sample) Plot {
	p := Plot{X: x, Y: y, W: w, H: h, n: len(samples)}
	if p.n == 0 {
		return p
	}
	lo, hi := samples[0].Temp, samples[0].Temp
	for _, s := range samples[1:] {
		if s.Temp < lo {
			lo = s.Temp
		}
		if s.Temp > hi {
			hi = s.Temp
		}
	}
	span := hi - lo
	if span < 1.0 {
		span = 10.0
	}
	p.Lo = lo - span*0.1
	p.Hi = hi + span*0.1
	return p
}

// XAt reports the left edge of slot i. Slot widths come out one pixel
// ragged where the width does not divide evenly; XAt(n) lands exactly
// on the right border so consecutive slots tile without gaps.
func (p Plot) XAt(i int) int {
	return p.X + i*p.W/p.n
}

// BarSpan reports the horizontal extent [x0, x1) of the bar in slot i.
func (p Plot) BarSpan(i int) (x0, x1 int) {
	return p.XAt(i), p.XAt(i + 1)
}

// YTemp maps a temperature to a y coordinate between the plot's
// borders. Values inside [Lo, Hi] stay inside the rectangle.
func (p Plot) YTemp(t float64) int {
	ratio := (t - p.Lo) / (p.Hi - p.Lo)
	return p.Y + p.H - int(ratio*float64(p.H))
}

// BarHeight converts a precipitation probability in [0, 1] to a bar
// height in pixels, clamping values outside the range.
func (p Plot) BarHeight(pop float64) int {
	pct := pop * 100.0
	if pct > 100.0 {
		pct = 100.0
	} else if pct < 0.0 {
		pct = 0.0
	}
	return int(pct / 100.0 * float64(p.H))
}

// TickValue reports the temperature labelled at gridline i, counting
// from the bottom border.
func (p Plot) TickValue(i int) float64 {
	return p.Lo + (p.Hi-p.Lo)*float64(i)/axisTicks
}

// TickY reports the y coordinate of gridline i, counting from the
// bottom border.
func (p Plot) TickY(i int) int {
	return p.Y + p.H - i*p.H/axisTicks
}

// LabelStride reports the slot step between x-axis time labels, sized
// to put four or five labels under the graph.
func (p Plot) LabelStride() int {
	stride := p.n / 4
	if stride < 1 {
		stride = 1
	}
	return stride
}
