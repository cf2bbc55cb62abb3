package store

import (
	"errors"
	"sync"
	"time"

	"weather-station/internal/weather"
)

// ErrNotFound is returned when no usable forecast is cached.
var ErrNotFound = errors.New("no cached forecast")

// Cache is a concurrency-safe in-memory forecast cache. A refresh that
// fails leaves the previous forecast available as a fallback until it
// ages out.
type Cache struct {
	mu sync.RWMutex

	history []weather.Forecast

	maxHistory int           // max number of forecasts kept
	maxAge     time.Duration // max age before the newest forecast stops serving
}

// NewCache creates a Cache with optional limits. maxHistory <= 0 keeps
// everything; maxAge <= 0 never expires.
func NewCache(maxHistory int, maxAge time.Duration) *Cache {
	return &Cache{maxHistory: maxHistory, maxAge: maxAge}
}

// Save appends a freshly fetched forecast and enforces the history
// limit.
func (c *Cache) Save(f weather.Forecast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.history = append(c.history, f)

	if c.maxHistory > 0 && len(c.history) > c.maxHistory {
		over := len(c.history) - c.maxHistory
		c.history = c.history[over:]
	}
}

// Latest returns the most recently saved forecast. It returns
// ErrNotFound when nothing is cached or the newest forecast is older
// than the cache's max age.
func (c *Cache) Latest() (weather.Forecast, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.history) == 0 {
		return weather.Forecast{}, ErrNotFound
	}
	newest := c.history[len(c.history)-1]
	if c.maxAge > 0 && time.Since(newest.Fetched) > c.maxAge {
		return weather.Forecast{}, ErrNotFound
	}
	return newest, nil
}

// History returns the retained forecasts, oldest first. The slice is a
// copy and safe to hold across saves.
func (c *Cache) History() []weather.Forecast {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]weather.Forecast, len(c.history))
	copy(out, c.history)
	return out
}

// Clear drops the cached history, used when the station's location
// changes and stale forecasts would describe the wrong place.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}
