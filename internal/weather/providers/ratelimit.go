package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"weather-station/internal/weather"
)

// RateLimited wraps a provider so fetches respect a requests-per-second
// budget. Free OpenWeatherMap keys allow 60 calls per minute.
type RateLimited struct {
	inner   weather.Provider
	limiter *rate.Limiter
}

// NewRateLimited caps the wrapped provider at rps requests per second with
// the given burst. rps may be fractional.
func NewRateLimited(inner weather.Provider, rps float64, burst int) *RateLimited {
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimited) Name() string {
	return r.inner.Name()
}

// FetchForecast waits for limiter permission or context cancellation, then
// forwards to the wrapped provider.
func (r *RateLimited) FetchForecast(ctx context.Context, q weather.Query) (weather.Forecast, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.Forecast{}, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.inner.FetchForecast(ctx, q)
}

var _ weather.Provider = (*RateLimited)(nil)
