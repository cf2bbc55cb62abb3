package weather

import (
	"time"
)

// UnitSystem selects between metric and imperial presentation. Providers are
// asked for matching units, so Sample values are already in the right system.
type UnitSystem string

const (
	Metric   UnitSystem = "M"
	Imperial UnitSystem = "I"
)

// Sample is one normalized forecast period (typically 3 hours) from a provider.
// Rain and Snow are accumulations over the period; POP is a probability in [0,1].
type Sample struct {
	Time       time.Time `json:"time"` // always UTC
	Temp       float64   `json:"temp"`
	FeelsLike  float64   `json:"feels_like"`
	TempMin    float64   `json:"temp_min"`
	TempMax    float64   `json:"temp_max"`
	Humidity   float64   `json:"humidity"` // percent
	Pressure   float64   `json:"pressure"` // hPa
	WindSpeed  float64   `json:"wind_speed"`
	WindDeg    float64   `json:"wind_deg"`
	CloudCover float64   `json:"cloud_cover"` // percent
	POP        float64   `json:"pop"`
	Rain       float64   `json:"rain"` // mm
	Snow       float64   `json:"snow"` // mm
	Icon       Icon      `json:"icon"`
}

// Forecast is the normalized result of a single provider fetch: current
// conditions plus a series of future samples ordered by Time ascending.
type Forecast struct {
	City    string    `json:"city"`
	Current Sample    `json:"current"`
	Samples []Sample  `json:"samples"`
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`

	// OffsetSeconds is the UTC offset of the forecast location, seconds east.
	OffsetSeconds int `json:"offset_seconds"`

	Fetched time.Time `json:"fetched"`
}

// Local renders t in the forecast location's local time.
func (f Forecast) Local(t time.Time) time.Time {
	return t.In(time.FixedZone("", f.OffsetSeconds))
}
