package weather

import (
	"fmt"
	"math"
	"time"
)

// compassPoints are the 16 ordinal direction names, clockwise from north.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CompassPoint maps a wind bearing in degrees to its 16-point ordinal name.
// Bands are 22.5 degrees wide, centered so north covers [348.75, 11.25).
func CompassPoint(deg float64) string {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return compassPoints[int((deg+11.25)/22.5)%16]
}

// HPaToInHg converts a pressure from hectopascals to inches of mercury.
func HPaToInHg(hpa float64) float64 {
	return hpa * 0.02953
}

// FormatClock renders a wall-clock time: 24-hour "H:MM" for metric,
// "H:MMAM"/"H:MMPM" for imperial. No leading zero on the hour.
func FormatClock(t time.Time, units UnitSystem) string {
	if units == Imperial {
		h, ampm := hour12(t.Hour())
		return fmt.Sprintf("%d:%02d%cM", h, t.Minute(), ampm)
	}
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}

// FormatHour renders an hour-of-day axis label: zero-padded 24-hour for
// metric ("07", "16"), "7AM"/"4PM" for imperial.
func FormatHour(t time.Time, units UnitSystem) string {
	if units == Imperial {
		h, ampm := hour12(t.Hour())
		return fmt.Sprintf("%d%cM", h, ampm)
	}
	return t.Format("15")
}

func hour12(h int) (int, byte) {
	ampm := byte('A')
	if h >= 12 {
		ampm = 'P'
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return h, ampm
}
