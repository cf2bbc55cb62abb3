package render

import (
	"fmt"
	"time"

	"weather-station/internal/display"
	"weather-station/internal/fonts"
	"weather-station/internal/weather"
)

// drawOutlook draws the 24-hour graph: precipitation probability as
// bars against the fixed right axis, temperature as a line against the
// padded left axis, local hour labels along the bottom.
func (c *Composer) drawOutlook(samples []weather.Sample, offsetSeconds int) {
	if len(samples) == 0 {
		return
	}
	const graphX, graphY = 240, 255
	const graphW, graphH = 665, 230

	p := NewPlot(graphX, graphY, graphW, graphH, samples)

	c.surf.Line(graphX, graphY, graphX+graphW-1, graphY, display.Black)
	c.surf.Line(graphX, graphY+graphH, graphX+graphW-1, graphY+graphH, display.Black)

	unit := "°C"
	if c.opts.Units == weather.Imperial {
		unit = "°F"
	}
	c.text.SetFace(fonts.Size8)
	for i := 0; i <= axisTicks; i++ {
		y := p.TickY(i)
		c.text.DrawString(graphX-15, y, fmt.Sprintf("%.0f%s", p.TickValue(i), unit), AlignRight, display.Black)
		c.surf.Line(graphX, y, graphX+graphW-1, y, display.Grey)
	}
	for i := 0; i <= axisTicks; i++ {
		c.text.DrawString(graphX+graphW+15, p.TickY(i), fmt.Sprintf("%d%%", 20*i), AlignLeft, display.Black)
	}

	// Bars go down first so the temperature line stays on top.
	const barShade uint8 = 0xDD
	for i, s := range samples {
		x0, x1 := p.BarSpan(i)
		if h := p.BarHeight(s.POP); h > 0 {
			c.surf.FillRect(x0, graphY+graphH-h, x1-x0, h, barShade)
		}
	}

	if len(samples) > 1 {
		for i := 0; i < len(samples)-1; i++ {
			x0, y0 := p.XAt(i), p.YTemp(samples[i].Temp)
			x1, y1 := p.XAt(i+1), p.YTemp(samples[i+1].Temp)
			c.surf.Line(x0, y0, x1, y1, display.Black)
			c.surf.Line(x0+1, y0, x1+1, y1, display.Black)
		}
	}

	zone := time.FixedZone("", offsetSeconds)
	c.text.SetFace(fonts.Size8)
	for i := 0; i < len(samples); i += p.LabelStride() {
		label := weather.FormatHour(samples[i].Time.In(zone), c.opts.Units)
		c.text.DrawString(p.XAt(i), graphY+graphH+15, label, AlignCenter, display.Black)
	}
}
