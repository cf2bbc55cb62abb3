package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kelvins/geocoder"
	"github.com/sony/gobreaker"

	"weather-station/internal/weather"
	"weather-station/internal/weather/providers"
)

// Resolver turns a human location string such as "Chicago,IL,US" into
// coordinates.
type Resolver interface {
	Resolve(ctx context.Context, location string) (lat, lon float64, err error)
}

// OpenWeatherResolver resolves locations through the OpenWeatherMap direct
// geocoding endpoint, reusing the forecast API key.
type OpenWeatherResolver struct {
	apiKey  string
	baseURL string
	httpCfg providers.HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherResolver(client *http.Client, apiKey string) *OpenWeatherResolver {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "geocode",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherResolver{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org",
		httpCfg: providers.HTTPClientConfig{
			Client: client,
			Backoff: providers.BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (r *OpenWeatherResolver) Resolve(ctx context.Context, location string) (float64, float64, error) {
	if r.apiKey == "" {
		return 0, 0, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", location)
		values.Set("limit", "1")
		values.Set("appid", r.apiKey)
		u := fmt.Sprintf("%s/geo/1.0/direct?%s", r.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := providers.DoRequestWithResilience(ctx, r.httpCfg, r.circuit, buildRequest)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	var payload []struct {
		Name string  `json:"name"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, 0, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(payload) == 0 {
		return 0, 0, weather.ErrLocationNotFound
	}

	lat, lon := payload[0].Lat, payload[0].Lon
	if err := checkRange(lat, lon); err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

// GoogleResolver resolves locations through the Google Geocoding API. Used
// when a Google key is configured, which the keyless Open-Meteo provider
// needs since it cannot geocode through OpenWeatherMap.
type GoogleResolver struct {
	apiKey string
}

func NewGoogleResolver(apiKey string) *GoogleResolver {
	return &GoogleResolver{apiKey: apiKey}
}

func (r *GoogleResolver) Resolve(ctx context.Context, location string) (float64, float64, error) {
	if r.apiKey == "" {
		return 0, 0, fmt.Errorf("google geocoding api key is not configured")
	}

	geocoder.ApiKey = r.apiKey
	loc, err := geocoder.Geocoding(parseAddress(location))
	if err != nil {
		return 0, 0, fmt.Errorf("google geocoding: %w", err)
	}
	if err := checkRange(loc.Latitude, loc.Longitude); err != nil {
		return 0, 0, err
	}
	return loc.Latitude, loc.Longitude, nil
}

// parseAddress splits a "City,State,Country" location string into the
// structured address the Google API expects. Shorter forms drop the state,
// then the country.
func parseAddress(location string) geocoder.Address {
	parts := strings.Split(location, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	addr := geocoder.Address{City: parts[0]}
	switch {
	case len(parts) >= 3:
		addr.State = parts[1]
		addr.Country = parts[2]
	case len(parts) == 2:
		addr.Country = parts[1]
	}
	return addr
}

func checkRange(lat, lon float64) error {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("geocode returned out-of-range coordinates %f,%f", lat, lon)
	}
	return nil
}

var (
	_ Resolver = (*OpenWeatherResolver)(nil)
	_ Resolver = (*GoogleResolver)(nil)
)
