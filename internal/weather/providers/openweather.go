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

// OpenWeatherProvider fetches current conditions and the 5-day/3-hour forecast
// from OpenWeatherMap and normalizes both into a weather.Forecast.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org",
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

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, q weather.Query) (weather.Forecast, error) {
	if p.apiKey == "" {
		return weather.Forecast{}, fmt.Errorf("openweather api key is not configured")
	}

	resp, err := p.get(ctx, "/data/2.5/weather", p.query(q))
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("current conditions: %w", err)
	}

	var current struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
			Pressure  float64 `json:"pressure"`
			Humidity  float64 `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Icon string `json:"icon"`
		} `json:"weather"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   float64 `json:"deg"`
		} `json:"wind"`
		Rain struct {
			OneH   float64 `json:"1h"`
			ThreeH float64 `json:"3h"`
		} `json:"rain"`
		Snow struct {
			OneH   float64 `json:"1h"`
			ThreeH float64 `json:"3h"`
		} `json:"snow"`
		Sys struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
		Timezone int    `json:"timezone"`
		Name     string `json:"name"`
	}
	err = json.NewDecoder(resp.Body).Decode(&current)
	resp.Body.Close()
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("decode current conditions: %w", err)
	}

	resp, err = p.get(ctx, "/data/2.5/forecast", p.query(q))
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("forecast: %w", err)
	}

	var forecast struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp      float64 `json:"temp"`
				FeelsLike float64 `json:"feels_like"`
				TempMin   float64 `json:"temp_min"`
				TempMax   float64 `json:"temp_max"`
				Pressure  float64 `json:"pressure"`
				Humidity  float64 `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Icon string `json:"icon"`
			} `json:"weather"`
			Clouds struct {
				All float64 `json:"all"`
			} `json:"clouds"`
			Wind struct {
				Speed float64 `json:"speed"`
				Deg   float64 `json:"deg"`
			} `json:"wind"`
			Pop  float64 `json:"pop"`
			Rain struct {
				ThreeH float64 `json:"3h"`
			} `json:"rain"`
			Snow struct {
				ThreeH float64 `json:"3h"`
			} `json:"snow"`
		} `json:"list"`
		City struct {
			Name     string `json:"name"`
			Sunrise  int64  `json:"sunrise"`
			Sunset   int64  `json:"sunset"`
			Timezone int    `json:"timezone"`
		} `json:"city"`
	}
	err = json.NewDecoder(resp.Body).Decode(&forecast)
	resp.Body.Close()
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("decode forecast: %w", err)
	}

	samples := make([]weather.Sample, 0, len(forecast.List))
	for _, it := range forecast.List {
		icon := weather.Icon{}
		if len(it.Weather) > 0 {
			icon = weather.ParseIconCode(it.Weather[0].Icon)
		}
		samples = append(samples, weather.Sample{
			Time:       time.Unix(it.Dt, 0).UTC(),
			Temp:       it.Main.Temp,
			FeelsLike:  it.Main.FeelsLike,
			TempMin:    it.Main.TempMin,
			TempMax:    it.Main.TempMax,
			Humidity:   it.Main.Humidity,
			Pressure:   it.Main.Pressure,
			WindSpeed:  it.Wind.Speed,
			WindDeg:    it.Wind.Deg,
			CloudCover: it.Clouds.All,
			POP:        it.Pop,
			Rain:       it.Rain.ThreeH,
			Snow:       it.Snow.ThreeH,
			Icon:       icon,
		})
	}

	rain := current.Rain.OneH
	if rain == 0 {
		rain = current.Rain.ThreeH
	}
	snow := current.Snow.OneH
	if snow == 0 {
		snow = current.Snow.ThreeH
	}
	curIcon := weather.Icon{}
	if len(current.Weather) > 0 {
		curIcon = weather.ParseIconCode(current.Weather[0].Icon)
	}

	city := forecast.City.Name
	if city == "" {
		city = current.Name
	}
	sunrise := forecast.City.Sunrise
	sunset := forecast.City.Sunset
	if sunrise == 0 {
		sunrise = current.Sys.Sunrise
		sunset = current.Sys.Sunset
	}

	return weather.Forecast{
		City: city,
		Current: weather.Sample{
			Time:       time.Unix(current.Dt, 0).UTC(),
			Temp:       current.Main.Temp,
			FeelsLike:  current.Main.FeelsLike,
			TempMin:    current.Main.TempMin,
			TempMax:    current.Main.TempMax,
			Humidity:   current.Main.Humidity,
			Pressure:   current.Main.Pressure,
			WindSpeed:  current.Wind.Speed,
			WindDeg:    current.Wind.Deg,
			CloudCover: current.Clouds.All,
			Rain:       rain,
			Snow:       snow,
			Icon:       curIcon,
		},
		Samples:       samples,
		Sunrise:       time.Unix(sunrise, 0).UTC(),
		Sunset:        time.Unix(sunset, 0).UTC(),
		OffsetSeconds: forecast.City.Timezone,
		Fetched:       time.Now().UTC(),
	}, nil
}

// query builds the shared request parameters. A location string is preferred;
// resolved coordinates serve queries without one.
func (p *OpenWeatherProvider) query(q weather.Query) url.Values {
	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", unitsParam(q.Units))
	if q.City != "" {
		values.Set("q", q.City)
	} else {
		values.Set("lat", fmt.Sprintf("%f", q.Lat))
		values.Set("lon", fmt.Sprintf("%f", q.Lon))
	}
	return values
}

func (p *OpenWeatherProvider) get(ctx context.Context, path string, values url.Values) (*http.Response, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s%s?%s", p.baseURL, path, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}
	return DoRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
}

func unitsParam(u weather.UnitSystem) string {
	if u == weather.Imperial {
		return "imperial"
	}
	return "metric"
}

var _ weather.Provider = (*OpenWeatherProvider)(nil)
