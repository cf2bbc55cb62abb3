package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"weather-station/internal/weather"
)

// WeatherAPIProvider fetches the multi-day hourly forecast from
// WeatherAPI.com and normalizes it into a weather.Forecast. The service has
// no icon codes in the OpenWeatherMap scheme, so icons are synthesized from
// cloud cover and precipitation per sample.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey string) *WeatherAPIProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &WeatherAPIProvider{
		name:    "weatherapi",
		baseURL: "https://api.weatherapi.com",
		apiKey:  apiKey,
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

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) FetchForecast(ctx context.Context, q weather.Query) (weather.Forecast, error) {
	if p.apiKey == "" {
		return weather.Forecast{}, fmt.Errorf("weatherapi api key is not configured")
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	// WeatherAPI uses "q" for the location; it accepts "lat,lon" or
	// "city,country". Resolved coordinates are preferred because unknown
	// location strings come back as a 400, not a 404.
	switch {
	case q.Lat >= -90 && q.Lat <= 90 && q.Lon >= -180 && q.Lon <= 180 && !(q.Lat == 0 && q.Lon == 0):
		values.Set("q", fmt.Sprintf("%f,%f", q.Lat, q.Lon))
	case q.City != "":
		values.Set("q", q.City)
	default:
		return weather.Forecast{}, fmt.Errorf("weatherapi requires a location or resolved coordinates")
	}
	values.Set("days", "6")
	values.Set("aqi", "no")
	values.Set("alerts", "no")

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/v1/forecast.json?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := DoRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Forecast{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Location struct {
			Name           string `json:"name"`
			Localtime      string `json:"localtime"`
			LocaltimeEpoch int64  `json:"localtime_epoch"`
		} `json:"location"`
		Current struct {
			LastUpdatedEpoch int64   `json:"last_updated_epoch"`
			TempC            float64 `json:"temp_c"`
			TempF            float64 `json:"temp_f"`
			FeelslikeC       float64 `json:"feelslike_c"`
			FeelslikeF       float64 `json:"feelslike_f"`
			Humidity         float64 `json:"humidity"`
			PressureMb       float64 `json:"pressure_mb"`
			WindKph          float64 `json:"wind_kph"`
			WindMph          float64 `json:"wind_mph"`
			WindDegree       float64 `json:"wind_degree"`
			Cloud            float64 `json:"cloud"`
			PrecipMm         float64 `json:"precip_mm"`
			IsDay            int     `json:"is_day"`
			Condition        struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
		Forecast struct {
			Forecastday []struct {
				Date  string `json:"date"`
				Astro struct {
					Sunrise string `json:"sunrise"`
					Sunset  string `json:"sunset"`
				} `json:"astro"`
				Hour []struct {
					TimeEpoch    int64   `json:"time_epoch"`
					TempC        float64 `json:"temp_c"`
					TempF        float64 `json:"temp_f"`
					FeelslikeC   float64 `json:"feelslike_c"`
					FeelslikeF   float64 `json:"feelslike_f"`
					Humidity     float64 `json:"humidity"`
					PressureMb   float64 `json:"pressure_mb"`
					WindKph      float64 `json:"wind_kph"`
					WindMph      float64 `json:"wind_mph"`
					WindDegree   float64 `json:"wind_degree"`
					Cloud        float64 `json:"cloud"`
					PrecipMm     float64 `json:"precip_mm"`
					SnowCm       float64 `json:"snow_cm"`
					WillItSnow   int     `json:"will_it_snow"`
					ChanceOfRain float64 `json:"chance_of_rain"`
					ChanceOfSnow float64 `json:"chance_of_snow"`
					IsDay        int     `json:"is_day"`
				} `json:"hour"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Forecast{}, fmt.Errorf("decode forecast: %w", err)
	}

	offset := utcOffset(payload.Location.Localtime, payload.Location.LocaltimeEpoch)
	imperial := q.Units == weather.Imperial

	now := time.Unix(payload.Current.LastUpdatedEpoch, 0).UTC()
	cutoff := now.Add(-time.Hour)

	var samples []weather.Sample
	for _, fd := range payload.Forecast.Forecastday {
		for _, h := range fd.Hour {
			t := time.Unix(h.TimeEpoch, 0).UTC()
			if t.Before(cutoff) {
				continue
			}
			temp, feels, wind := h.TempC, h.FeelslikeC, h.WindKph/3.6
			if imperial {
				temp, feels, wind = h.TempF, h.FeelslikeF, h.WindMph
			}
			pop := math.Max(h.ChanceOfRain, h.ChanceOfSnow) / 100
			rain, snow := h.PrecipMm, h.SnowCm*10
			if snow == 0 && h.WillItSnow == 1 {
				// snow_cm is not filled on every plan; the flag reclassifies
				// the hour's precipitation.
				rain, snow = 0, h.PrecipMm
			}
			day := h.IsDay == 1
			samples = append(samples, weather.Sample{
				Time:       t,
				Temp:       temp,
				FeelsLike:  feels,
				TempMin:    temp,
				TempMax:    temp,
				Humidity:   h.Humidity,
				Pressure:   h.PressureMb,
				WindSpeed:  wind,
				WindDeg:    h.WindDegree,
				CloudCover: h.Cloud,
				POP:        pop,
				Rain:       rain,
				Snow:       snow,
				Icon:       weather.Classify(h.Cloud, pop, rain, snow, day),
			})
		}
	}

	curTemp, curFeels, curWind := payload.Current.TempC, payload.Current.FeelslikeC, payload.Current.WindKph/3.6
	if imperial {
		curTemp, curFeels, curWind = payload.Current.TempF, payload.Current.FeelslikeF, payload.Current.WindMph
	}
	// The current observation has no snowfall amount; the condition text
	// decides how its precipitation is classified.
	curRain, curSnow := payload.Current.PrecipMm, 0.0
	if snowCondition(payload.Current.Condition.Text) {
		curRain, curSnow = 0, payload.Current.PrecipMm
	}
	curDay := payload.Current.IsDay == 1
	cur := weather.Sample{
		Time:       now,
		Temp:       curTemp,
		FeelsLike:  curFeels,
		TempMin:    curTemp,
		TempMax:    curTemp,
		Humidity:   payload.Current.Humidity,
		Pressure:   payload.Current.PressureMb,
		WindSpeed:  curWind,
		WindDeg:    payload.Current.WindDegree,
		CloudCover: payload.Current.Cloud,
		Rain:       curRain,
		Snow:       curSnow,
		Icon:       weather.Classify(payload.Current.Cloud, 0, curRain, curSnow, curDay),
	}

	var sunrise, sunset time.Time
	if len(payload.Forecast.Forecastday) > 0 {
		fd := payload.Forecast.Forecastday[0]
		sunrise = astroTime(fd.Date, fd.Astro.Sunrise, offset)
		sunset = astroTime(fd.Date, fd.Astro.Sunset, offset)
	}

	city := payload.Location.Name
	if city == "" {
		city = q.City
	}

	return weather.Forecast{
		City:          city,
		Current:       cur,
		Samples:       samples,
		Sunrise:       sunrise,
		Sunset:        sunset,
		OffsetSeconds: offset,
		Fetched:       time.Now().UTC(),
	}, nil
}

// utcOffset derives the zone offset from the local wall clock and its epoch.
// The wall clock carries minute precision, so the difference is rounded to
// the nearest quarter hour, the finest granularity real zones use.
func utcOffset(localtime string, epoch int64) int {
	t, err := time.Parse("2006-01-02 15:04", localtime)
	if err != nil || epoch == 0 {
		return 0
	}
	diff := float64(t.Unix() - epoch)
	return int(math.Round(diff/900) * 900)
}

// astroTime converts a local "06:02 AM" style sunrise or sunset into a UTC
// instant. The zero time is returned when the field is absent or malformed.
func astroTime(date, clock string, offset int) time.Time {
	t, err := time.Parse("2006-01-02 03:04 PM", date+" "+clock)
	if err != nil {
		return time.Time{}
	}
	return t.Add(-time.Duration(offset) * time.Second)
}

// snowCondition reports whether a textual condition describes frozen
// precipitation.
func snowCondition(text string) bool {
	text = strings.ToLower(text)
	for _, w := range []string{"snow", "sleet", "blizzard", "ice"} {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

var _ weather.Provider = (*WeatherAPIProvider)(nil)
