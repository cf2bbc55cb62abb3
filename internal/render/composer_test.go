package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"weather-station/internal/display"
	"weather-station/internal/power"
	"weather-station/internal/weather"
)

func testComposer(units weather.UnitSystem) (*Composer, *display.Buffer, *fakeMetrics) {
	buf := display.NewBuffer(960, 540)
	fake := &fakeMetrics{}
	comp := NewComposer(buf, NewTextLayout(fake), Options{Width: 960, Height: 540, Units: units})
	return comp, buf, fake
}

// testForecast is 48 hours of three-hourly samples for a city five
// hours west of UTC.
func testForecast() weather.Forecast {
	base := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	samples := make([]weather.Sample, 0, 16)
	for i := 0; i < 16; i++ {
		samples = append(samples, weather.Sample{
			Time:       base.Add(time.Duration(i*3) * time.Hour),
			Temp:       18 + float64(i%5),
			TempMin:    16,
			TempMax:    24,
			CloudCover: 40,
			POP:        0.25,
		})
	}
	return weather.Forecast{
		City: "Chicago",
		Current: weather.Sample{
			Time:      base,
			Temp:      21.6,
			FeelsLike: 20.1,
			Humidity:  58,
			Pressure:  1014,
			WindSpeed: 4.4,
			WindDeg:   310,
			Icon:      weather.Icon{Variant: weather.IconFewClouds, Flavor: weather.Day},
		},
		Samples:       samples,
		Sunrise:       base.Add(-3 * time.Hour),
		Sunset:        base.Add(11 * time.Hour),
		OffsetSeconds: -18000,
		Fetched:       base,
	}
}

func drawnContains(fake *fakeMetrics, want string) bool {
	for _, c := range fake.calls {
		if c.s == want {
			return true
		}
	}
	return false
}

func drawnContainsSubstring(fake *fakeMetrics, want string) bool {
	for _, c := range fake.calls {
		if strings.Contains(c.s, want) {
			return true
		}
	}
	return false
}

func regionTouched(buf *display.Buffer, x0, y0, x1, y1 int) bool {
	img := buf.Image()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if img.GrayAt(x, y).Y != 0xFF {
				return true
			}
		}
	}
	return false
}

// TestDrawDashboard verifies a full dashboard reaches every region:
// icon artwork, the details column, forecast cards, the outlook graph
// and the status bar.
func TestDrawDashboard(t *testing.T) {
	comp, buf, fake := testComposer(weather.Metric)
	f := testForecast()
	data := DashboardData{
		Forecast:  f,
		Days:      weather.AggregateDaily(f.Samples, f.OffsetSeconds),
		Outlook:   weather.HourlyWindow(f.Samples, f.Current.Time),
		Refreshed: f.Fetched,
		RSSI:      -55,
		Voltage:   3.9,
	}
	comp.DrawDashboard(data)

	for _, want := range []string{
		"Feels Like", "Sunrise", "Sunset", "Humidity", "Pressure", "Wind",
		"Chicago", "Monday, July 14",
		"22", "20", "58%", "1014 hPa", "4 m/s NW", "1:00", "15:00",
		"Mon", "Tue", "Wed", "24°|16°",
		"18°C", "22°C", "100%", "04", "16",
		"Refreshed 4:00", "-55 dB",
	} {
		if !drawnContains(fake, want) {
			t.Errorf("expected %q to be drawn", want)
		}
	}
	battery := fmt.Sprintf("%d%%  3.9v", power.Percent(3.9))
	if !drawnContains(fake, battery) {
		t.Errorf("expected battery text %q to be drawn", battery)
	}

	if got := buf.Image().GrayAt(400, 530).Y; got != 0xEE {
		t.Errorf("expected status strip shade 0xEE, got %#x", got)
	}
	if got := buf.Image().GrayAt(400, 515).Y; got != 0x00 {
		t.Errorf("expected black separator above status bar, got %#x", got)
	}
	if got := buf.Image().GrayAt(300, 255).Y; got != display.Grey {
		t.Errorf("expected grey gridline over the top graph border, got %#x", got)
	}
	if got := buf.Image().GrayAt(300, 450).Y; got != 0xDD {
		t.Errorf("expected precipitation bar shade 0xDD, got %#x", got)
	}
	if !regionTouched(buf, 60, 60, 200, 180) {
		t.Errorf("expected large icon artwork in the current conditions block")
	}
	if !regionTouched(buf, 385, 100, 730, 200) {
		t.Errorf("expected small icon artwork in the forecast cards")
	}
}

// TestDrawDashboardImperial verifies the imperial renditions of the
// unit-sensitive strings.
func TestDrawDashboardImperial(t *testing.T) {
	comp, _, fake := testComposer(weather.Imperial)
	f := testForecast()
	comp.DrawDashboard(DashboardData{
		Forecast:  f,
		Days:      weather.AggregateDaily(f.Samples, f.OffsetSeconds),
		Outlook:   weather.HourlyWindow(f.Samples, f.Current.Time),
		Refreshed: f.Fetched,
	})

	for _, want := range []string{
		"29.9 in", "4 mph NW", "1:00AM", "3:00PM", "Refreshed 4:00AM", "4AM", "4PM",
	} {
		if !drawnContains(fake, want) {
			t.Errorf("expected %q to be drawn", want)
		}
	}
	if !drawnContainsSubstring(fake, "°F") {
		t.Errorf("expected Fahrenheit axis labels")
	}
}

// TestDrawDashboardEmpty verifies a dashboard without data still
// renders: absent blocks are skipped instead of faulting.
func TestDrawDashboardEmpty(t *testing.T) {
	comp, _, fake := testComposer(weather.Metric)
	comp.DrawDashboard(DashboardData{})

	for _, c := range fake.calls {
		if strings.HasSuffix(c.s, "v") {
			t.Errorf("expected no battery text without a voltage reading, drew %q", c.s)
		}
	}
	if !drawnContains(fake, "x") {
		t.Errorf("expected the wifi placeholder when rssi is unknown")
	}
}

// TestScreens verifies each full-screen state draws its message.
func TestScreens(t *testing.T) {
	tests := []struct {
		name string
		draw func(c *Composer)
		want string
	}{
		{"low battery", func(c *Composer) { c.DrawLowBattery() }, "Low Battery"},
		{"network error", func(c *Composer) { c.DrawNetworkError() }, "Network Connection Failed"},
		{"invalid location", func(c *Composer) { c.DrawInvalidLocation() }, "Invalid Location String"},
		{"invalid api key", func(c *Composer) { c.DrawInvalidAPIKey() }, "Weather API Key Invalid"},
		{"setup", func(c *Composer) { c.DrawSetup("http://10.0.0.12:8080") }, "Open http://10.0.0.12:8080 in a browser"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			comp, _, fake := testComposer(weather.Metric)
			tc.draw(comp)
			if !drawnContains(fake, tc.want) {
				t.Errorf("expected %q to be drawn, got %q", tc.want, fake.drawn())
			}
		})
	}
}
