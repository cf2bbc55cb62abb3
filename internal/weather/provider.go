package weather

import (
	"context"
	"errors"
)

// Errors a provider or geocoder can classify for the caller. The station maps
// these onto dedicated screens instead of the generic connectivity error.
var (
	ErrInvalidAPIKey    = errors.New("invalid api key")
	ErrLocationNotFound = errors.New("location not found")
)

// Query identifies the place and unit system for a forecast fetch.
// Providers that need coordinates expect Lat/Lon to be resolved already.
type Query struct {
	City  string
	Lat   float64
	Lon   float64
	Units UnitSystem
}

// Provider abstracts a forecast source (e.g. OpenWeatherMap, Open-Meteo).
type Provider interface {
	Name() string
	FetchForecast(ctx context.Context, q Query) (Forecast, error)
}
