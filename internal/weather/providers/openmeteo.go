package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"weather-station/internal/weather"
)

// Variable lists requested from Open-Meteo. Snowfall arrives in centimetres
// and is converted to millimetres; every other unit is requested to match the
// query's unit system.
const (
	meteoCurrentVars = "temperature_2m,apparent_temperature,relative_humidity_2m,pressure_msl,wind_speed_10m,wind_direction_10m,cloud_cover,rain,snowfall,is_day"
	meteoHourlyVars  = meteoCurrentVars + ",precipitation_probability"
)

// OpenMeteoProvider fetches an hourly forecast from Open-Meteo. The service is
// keyless and has no icon codes of its own, so icons are synthesized from
// cloud cover and precipitation per sample.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client) *OpenMeteoProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: "https://api.open-meteo.com",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, q weather.Query) (weather.Forecast, error) {
	if q.Lat < -90 || q.Lat > 90 || q.Lon < -180 || q.Lon > 180 {
		return weather.Forecast{}, fmt.Errorf("openmeteo requires resolved coordinates")
	}

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", q.Lat))
	values.Set("longitude", fmt.Sprintf("%f", q.Lon))
	values.Set("current", meteoCurrentVars)
	values.Set("hourly", meteoHourlyVars)
	values.Set("daily", "sunrise,sunset")
	values.Set("timeformat", "unixtime")
	values.Set("timezone", "auto")
	values.Set("forecast_days", "6")
	if q.Units == weather.Imperial {
		values.Set("temperature_unit", "fahrenheit")
		values.Set("wind_speed_unit", "mph")
	} else {
		values.Set("wind_speed_unit", "ms")
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/v1/forecast?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := DoRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Forecast{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		UTCOffsetSeconds int `json:"utc_offset_seconds"`
		Current          struct {
			Time          int64   `json:"time"`
			Temperature   float64 `json:"temperature_2m"`
			Apparent      float64 `json:"apparent_temperature"`
			Humidity      float64 `json:"relative_humidity_2m"`
			Pressure      float64 `json:"pressure_msl"`
			WindSpeed     float64 `json:"wind_speed_10m"`
			WindDirection float64 `json:"wind_direction_10m"`
			CloudCover    float64 `json:"cloud_cover"`
			Rain          float64 `json:"rain"`
			Snowfall      float64 `json:"snowfall"`
			IsDay         int     `json:"is_day"`
		} `json:"current"`
		Hourly struct {
			Time          []int64   `json:"time"`
			Temperature   []float64 `json:"temperature_2m"`
			Apparent      []float64 `json:"apparent_temperature"`
			Humidity      []float64 `json:"relative_humidity_2m"`
			Pressure      []float64 `json:"pressure_msl"`
			WindSpeed     []float64 `json:"wind_speed_10m"`
			WindDirection []float64 `json:"wind_direction_10m"`
			CloudCover    []float64 `json:"cloud_cover"`
			POP           []float64 `json:"precipitation_probability"`
			Rain          []float64 `json:"rain"`
			Snowfall      []float64 `json:"snowfall"`
			IsDay         []int     `json:"is_day"`
		} `json:"hourly"`
		Daily struct {
			Sunrise []int64 `json:"sunrise"`
			Sunset  []int64 `json:"sunset"`
		} `json:"daily"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Forecast{}, fmt.Errorf("decode forecast: %w", err)
	}

	// Guard against ragged arrays; the hourly series is only as long as its
	// shortest column.
	at := func(vals []float64, i int) float64 {
		if i < len(vals) {
			return vals[i]
		}
		return 0
	}

	now := time.Unix(payload.Current.Time, 0).UTC()
	cutoff := now.Add(-time.Hour)

	samples := make([]weather.Sample, 0, len(payload.Hourly.Time))
	for i, ts := range payload.Hourly.Time {
		t := time.Unix(ts, 0).UTC()
		if t.Before(cutoff) {
			continue
		}
		temp := at(payload.Hourly.Temperature, i)
		clouds := at(payload.Hourly.CloudCover, i)
		pop := at(payload.Hourly.POP, i) / 100
		rain := at(payload.Hourly.Rain, i)
		snow := at(payload.Hourly.Snowfall, i) * 10
		day := i < len(payload.Hourly.IsDay) && payload.Hourly.IsDay[i] == 1
		samples = append(samples, weather.Sample{
			Time:       t,
			Temp:       temp,
			FeelsLike:  at(payload.Hourly.Apparent, i),
			TempMin:    temp,
			TempMax:    temp,
			Humidity:   at(payload.Hourly.Humidity, i),
			Pressure:   at(payload.Hourly.Pressure, i),
			WindSpeed:  at(payload.Hourly.WindSpeed, i),
			WindDeg:    at(payload.Hourly.WindDirection, i),
			CloudCover: clouds,
			POP:        pop,
			Rain:       rain,
			Snow:       snow,
			Icon:       weather.Classify(clouds, pop, rain, snow, day),
		})
	}

	curSnow := payload.Current.Snowfall * 10
	curDay := payload.Current.IsDay == 1
	cur := weather.Sample{
		Time:       now,
		Temp:       payload.Current.Temperature,
		FeelsLike:  payload.Current.Apparent,
		TempMin:    payload.Current.Temperature,
		TempMax:    payload.Current.Temperature,
		Humidity:   payload.Current.Humidity,
		Pressure:   payload.Current.Pressure,
		WindSpeed:  payload.Current.WindSpeed,
		WindDeg:    payload.Current.WindDirection,
		CloudCover: payload.Current.CloudCover,
		Rain:       payload.Current.Rain,
		Snow:       curSnow,
		Icon:       weather.Classify(payload.Current.CloudCover, 0, payload.Current.Rain, curSnow, curDay),
	}

	var sunrise, sunset time.Time
	if len(payload.Daily.Sunrise) > 0 {
		sunrise = time.Unix(payload.Daily.Sunrise[0], 0).UTC()
	}
	if len(payload.Daily.Sunset) > 0 {
		sunset = time.Unix(payload.Daily.Sunset[0], 0).UTC()
	}

	return weather.Forecast{
		City:          q.City,
		Current:       cur,
		Samples:       samples,
		Sunrise:       sunrise,
		Sunset:        sunset,
		OffsetSeconds: payload.UTCOffsetSeconds,
		Fetched:       time.Now().UTC(),
	}, nil
}

var _ weather.Provider = (*OpenMeteoProvider)(nil)
