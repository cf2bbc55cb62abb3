package render

import (
	"fmt"

	"weather-station/internal/display"
	"weather-station/internal/fonts"
	"weather-station/internal/power"
	"weather-station/internal/weather"
)

// drawStatusBar draws the strip along the bottom edge: WiFi signal on
// the left, refresh time in the center, battery state on the right.
// The battery block is omitted entirely when no voltage reading is
// available, which is the common case off-battery.
func (c *Composer) drawStatusBar(data DashboardData) {
	barY := c.opts.Height - 25

	c.surf.FillRect(0, barY, c.opts.Width, c.opts.Height-barY, 0xEE)
	c.surf.Line(0, barY, c.opts.Width, barY, display.Black)

	c.drawWiFi(2, barY+20, data.RSSI)

	c.text.SetFace(fonts.Size8)
	refresh := "Refreshed " + weather.FormatClock(data.Forecast.Local(data.Refreshed), c.opts.Units)
	c.text.DrawString(c.opts.Width/2, barY+5, refresh, AlignCenter, display.Black)

	if data.Voltage > 0 {
		pct := power.Percent(data.Voltage)
		width := c.text.Width(batteryLabel(pct, data.Voltage))
		c.drawBattery(c.opts.Width-2-(85+width), barY+17, pct, data.Voltage)
	}
}

// drawWiFi draws up to five signal bars rising left to right, one per
// 20 dB above -100 dBm. An rssi of zero means no reading: the bars
// render as outlines with an "x" beside them.
func (c *Composer) drawWiFi(x, y, rssi int) {
	height := 0
	xpos := 1
	for level := -100; level <= rssi; level += 20 {
		switch {
		case level <= -100:
			height = 4
		case level <= -80:
			height = 8
		case level <= -60:
			height = 12
		case level <= -40:
			height = 16
		case level <= -20:
			height = 20
		}
		if rssi != 0 {
			c.surf.FillRect(x+xpos*8, y-height, 6, height, display.Black)
		} else {
			c.surf.DrawRect(x+xpos*8, y-height, 6, height, display.Black)
		}
		xpos++
	}

	c.text.SetFace(fonts.Size8)
	if rssi == 0 {
		c.text.DrawString(x+28, y-18, "x", AlignLeft, display.Black)
	} else {
		c.text.DrawString(x+50, y-14, fmt.Sprintf("%d dB", rssi), AlignLeft, display.Black)
	}
}

// drawBattery draws the battery outline, terminal, proportional fill
// and the percentage/voltage text. Voltage above the charging
// threshold swaps the percentage for a charging note.
func (c *Composer) drawBattery(x, y, pct int, voltage float64) {
	const batWidth, batHeight = 40, 15
	const termWidth, termHeight = 4, 7

	c.surf.DrawRect(x+25, y-14, batWidth, batHeight, display.Black)
	c.surf.FillRect(x+25+batWidth, y-14+(batHeight-termHeight)/2, termWidth, termHeight, display.Black)

	level := pct
	if voltage > 4.2 {
		level = 100
	}
	if fill := (batWidth - 2) * level / 100; fill > 0 {
		c.surf.FillRect(x+27, y-12, fill, batHeight-2, display.Black)
	}

	c.text.SetFace(fonts.Size8)
	if power.Charging(voltage) {
		c.text.DrawString(x+85, y-17, batteryLabel(pct, voltage), AlignLeft, display.Black)
	} else {
		c.text.DrawString(x+85, y-13, batteryLabel(pct, voltage), AlignLeft, display.Black)
	}
}

func batteryLabel(pct int, voltage float64) string {
	if power.Charging(voltage) {
		return fmt.Sprintf("Charging  %.1fv", voltage)
	}
	return fmt.Sprintf("%d%%  %.1fv", pct, voltage)
}
