package render

import (
	"fmt"
	"math"
	"time"

	"weather-station/internal/display"
	"weather-station/internal/fonts"
	"weather-station/internal/weather"
)

// Labels in the current-conditions column.
const (
	labelFeelsLike = "Feels Like"
	labelSunrise   = "Sunrise"
	labelSunset    = "Sunset"
	labelHumidity  = "Humidity"
	labelPressure  = "Pressure"
	labelWind      = "Wind"
)

// Options fixes the output geometry and unit system of a Composer.
type Options struct {
	Width  int
	Height int
	Units  weather.UnitSystem
}

// Composer lays the station's screens out on a drawing surface. The
// layout is designed for the 960x540 landscape panel; other sizes keep
// the fixed blocks in place and shift the edge-anchored ones.
type Composer struct {
	surf display.Surface
	text *TextLayout
	opts Options
}

func NewComposer(surf display.Surface, text *TextLayout, opts Options) *Composer {
	return &Composer{surf: surf, text: text, opts: opts}
}

// DashboardData carries everything one dashboard refresh draws.
type DashboardData struct {
	Forecast  weather.Forecast
	Days      []weather.DailyAggregate
	Outlook   []weather.Sample
	Refreshed time.Time
	RSSI      int
	Voltage   float64
}

// DrawDashboard composes the full weather dashboard: current
// conditions with a large icon on the left, city and date in the top
// right corner, one card per forecast day, the 24-hour outlook graph,
// and the status bar along the bottom edge.
func (c *Composer) DrawDashboard(data DashboardData) {
	c.surf.Clear(display.White)
	c.drawCurrentConditions(data.Forecast)
	c.drawLocationDate(data.Forecast, data.Refreshed)
	c.drawForecastCards(data.Days, data.Forecast.OffsetSeconds)
	c.drawOutlook(data.Outlook, data.Forecast.OffsetSeconds)
	c.drawStatusBar(data)
}

func (c *Composer) drawCurrentConditions(f weather.Forecast) {
	cur := f.Current
	c.DrawIcon(122, 117, cur.Icon, true)

	unit := "°C"
	if c.opts.Units == weather.Imperial {
		unit = "°F"
	}

	const tempX, tempY = 240, 50
	temp := fmt.Sprintf("%d", int(math.Round(cur.Temp)))
	c.text.SetFace(fonts.Size24)
	c.text.DrawString(tempX, tempY, temp, AlignLeft, display.Black)
	c.text.SetFace(fonts.Size12)
	c.text.DrawString(tempX+c.text.Width(temp)+30, tempY-5, unit, AlignLeft, display.Black)

	c.text.SetFace(fonts.Size12)
	c.text.DrawString(tempX, tempY+40, labelFeelsLike, AlignLeft, display.Black)
	c.text.SetFace(fonts.Size24)
	feels := fmt.Sprintf("%d", int(math.Round(cur.FeelsLike)))
	c.text.DrawString(tempX, tempY+70, feels, AlignLeft, display.Black)
	c.text.SetFace(fonts.Size12)
	c.text.DrawString(tempX+c.text.Width(feels)+30, tempY+65, unit, AlignLeft, display.Black)

	const detailsX = 5
	const rowHeight = 65
	gridY := 180

	c.detailRow(detailsX, gridY, labelSunrise, weather.FormatClock(f.Local(f.Sunrise), c.opts.Units), 38)
	gridY += rowHeight
	c.detailRow(detailsX, gridY, labelSunset, weather.FormatClock(f.Local(f.Sunset), c.opts.Units), 38)
	gridY += rowHeight
	c.detailRow(detailsX, gridY, labelHumidity, fmt.Sprintf("%d%%", int(math.Round(cur.Humidity))), 41)
	gridY += rowHeight
	pressure := fmt.Sprintf("%d hPa", int(math.Round(cur.Pressure)))
	if c.opts.Units == weather.Imperial {
		pressure = fmt.Sprintf("%.1f in", weather.HPaToInHg(cur.Pressure))
	}
	c.detailRow(detailsX, gridY, labelPressure, pressure, 38)
	gridY += rowHeight
	speedUnit := "m/s"
	if c.opts.Units == weather.Imperial {
		speedUnit = "mph"
	}
	wind := fmt.Sprintf("%d %s %s", int(math.Round(cur.WindSpeed)), speedUnit, weather.CompassPoint(cur.WindDeg))
	c.detailRow(detailsX, gridY, labelWind, wind, 28)
}

// detailRow draws one label/value pair of the details column. The
// value offset varies by row to keep the baselines of mixed-height
// strings aligned.
func (c *Composer) detailRow(x, y int, label, value string, valueOffset int) {
	c.text.SetFace(fonts.Size12)
	c.text.DrawString(x, y+12, label, AlignLeft, display.Black)
	c.text.SetFace(fonts.Size18)
	c.text.DrawString(x, y+valueOffset, value, AlignLeft, display.Black)
}

func (c *Composer) drawLocationDate(f weather.Forecast, now time.Time) {
	c.text.SetFace(fonts.Size18)
	c.text.DrawString(c.opts.Width-7, 0, f.City, AlignRight, display.Black)
	c.text.SetFace(fonts.Size12)
	c.text.DrawString(c.opts.Width-7, 42, f.Local(now).Format("Monday, January 2"), AlignRight, display.Black)
}

func (c *Composer) drawForecastCards(days []weather.DailyAggregate, offsetSeconds int) {
	const cardY = 200
	const cardWidth = 115
	const firstCardX = 385

	zone := time.FixedZone("", offsetSeconds)
	for i, day := range days {
		x := firstCardX + i*cardWidth

		c.text.SetFace(fonts.Size12)
		c.text.DrawString(x+cardWidth/2, cardY-110, day.Time.In(zone).Format("Mon"), AlignCenter, display.Black)

		c.DrawIcon(x+cardWidth/2, cardY-40, day.Icon(offsetSeconds), false)

		c.text.SetFace(fonts.Size10)
		hi := fmt.Sprintf("%d°", int(math.Round(day.High)))
		lo := fmt.Sprintf("%d°", int(math.Round(day.Low)))
		c.text.DrawString(x+cardWidth/2, cardY+15, hi+"|"+lo, AlignCenter, display.Black)
	}
}
