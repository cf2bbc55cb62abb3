// Package station runs the refresh cycle: read the battery, resolve
// the configured location, fetch a forecast, lay out the dashboard and
// push the frame to the output device.
package station

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"weather-station/internal/config"
	"weather-station/internal/display"
	"weather-station/internal/fonts"
	"weather-station/internal/geocode"
	"weather-station/internal/power"
	"weather-station/internal/render"
	"weather-station/internal/store"
	"weather-station/internal/weather"
)

// Outcome reports what a refresh put on the panel.
type Outcome int

const (
	OutcomeDashboard Outcome = iota
	OutcomeCachedDashboard
	OutcomeSetupScreen
	OutcomeLowBattery
	OutcomeNetworkError
	OutcomeInvalidLocation
	OutcomeInvalidAPIKey
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDashboard:
		return "dashboard"
	case OutcomeCachedDashboard:
		return "cached dashboard"
	case OutcomeSetupScreen:
		return "setup screen"
	case OutcomeLowBattery:
		return "low battery"
	case OutcomeNetworkError:
		return "network error"
	case OutcomeInvalidLocation:
		return "invalid location"
	case OutcomeInvalidAPIKey:
		return "invalid api key"
	}
	return "unknown"
}

// Deps collects the station's collaborators. Provider and Resolver are
// factories invoked on every refresh, so key and provider changes made
// in the setup UI apply without a restart.
type Deps struct {
	Manager  *config.Manager
	Provider func(config.Settings) weather.Provider
	Resolver func(config.Settings) geocode.Resolver
	Cache    *store.Cache
	Sink     display.Sink
	Fonts    *fonts.Set
	SetupURL string
}

// Station turns settings and a forecast provider into frames on the
// output device.
type Station struct {
	// mu serializes refreshes; the schedule and setup triggers may
	// fire concurrently but the panel takes one frame at a time.
	mu sync.Mutex

	manager  *config.Manager
	provider func(config.Settings) weather.Provider
	resolver func(config.Settings) geocode.Resolver
	cache    *store.Cache
	sink     display.Sink
	fonts    *fonts.Set
	setupURL string

	voltage func() float64
	rssi    func() int
	now     func() time.Time
}

func New(d Deps) *Station {
	return &Station{
		manager:  d.Manager,
		provider: d.Provider,
		resolver: d.Resolver,
		cache:    d.Cache,
		sink:     d.Sink,
		fonts:    d.Fonts,
		setupURL: d.SetupURL,
		voltage:  power.ReadVoltage,
		rssi:     ReadRSSI,
		now:      time.Now,
	}
}

// Refresh runs one full station cycle and reports what ended up on the
// panel. Failures degrade instead of aborting: a dead battery or a
// missing configuration gets its own screen, transient fetch errors
// fall back to the cached forecast.
func (s *Station) Refresh(ctx context.Context) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.manager.Snapshot()

	voltage := s.readVoltage(snap)
	if power.Low(voltage) {
		log.Printf("WARN: battery at %.2f V, suspending refreshes", voltage)
		s.render(snap, func(c *render.Composer) { c.DrawLowBattery() })
		return OutcomeLowBattery
	}

	if needsSetup(snap) {
		log.Printf("INFO: factory settings detected, showing setup screen")
		s.render(snap, func(c *render.Composer) { c.DrawSetup(s.setupURL) })
		return OutcomeSetupScreen
	}

	if !snap.CoordinatesResolved() {
		lat, lon, err := s.resolver(snap).Resolve(ctx, snap.Location)
		if err != nil {
			return s.fault(snap, fmt.Errorf("geocode %q: %w", snap.Location, err))
		}
		if uerr := s.manager.Update(func(cfg *config.Settings) {
			cfg.Latitude = lat
			cfg.Longitude = lon
		}); uerr != nil {
			log.Printf("WARN: persist coordinates: %v", uerr)
		}
		snap.Latitude, snap.Longitude = lat, lon
	}

	provider := s.provider(snap)
	forecast, err := provider.FetchForecast(ctx, weather.Query{
		City:  snap.Location,
		Lat:   snap.Latitude,
		Lon:   snap.Longitude,
		Units: snap.Units,
	})
	if err != nil {
		return s.fault(snap, fmt.Errorf("fetch forecast: %w", err))
	}

	s.cache.Save(forecast)
	log.Printf("INFO: dashboard refreshed for %s via %s", forecast.City, provider.Name())
	s.drawDashboard(snap, forecast)
	return OutcomeDashboard
}

// fault classifies a refresh failure. A rejected key or an unknown
// location gets a dedicated screen; anything else is treated as
// transient and served from the cache while one is available.
func (s *Station) fault(snap config.Settings, err error) Outcome {
	switch {
	case errors.Is(err, weather.ErrInvalidAPIKey):
		log.Printf("ERROR: %v", err)
		s.render(snap, func(c *render.Composer) { c.DrawInvalidAPIKey() })
		return OutcomeInvalidAPIKey
	case errors.Is(err, weather.ErrLocationNotFound):
		log.Printf("ERROR: %v", err)
		s.render(snap, func(c *render.Composer) { c.DrawInvalidLocation() })
		return OutcomeInvalidLocation
	}

	if cached, cerr := s.cache.Latest(); cerr == nil {
		log.Printf("WARN: %v, showing forecast cached at %s", err, cached.Fetched.Format(time.RFC3339))
		s.drawDashboard(snap, cached)
		return OutcomeCachedDashboard
	}

	log.Printf("ERROR: %v", err)
	s.render(snap, func(c *render.Composer) { c.DrawNetworkError() })
	return OutcomeNetworkError
}

func (s *Station) drawDashboard(snap config.Settings, f weather.Forecast) {
	now := s.now().UTC()
	data := render.DashboardData{
		Forecast:  f,
		Days:      weather.AggregateDaily(f.Samples, f.OffsetSeconds),
		Outlook:   weather.HourlyWindow(f.Samples, now),
		Refreshed: now,
		RSSI:      s.readRSSI(snap),
		Voltage:   s.readVoltage(snap),
	}
	s.render(snap, func(c *render.Composer) { c.DrawDashboard(data) })
}

// render composes one screen on a fresh frame and pushes it to the
// output device.
func (s *Station) render(snap config.Settings, draw func(*render.Composer)) {
	frame := display.NewBuffer(snap.DisplayWidth, snap.DisplayHeight)
	text := render.NewTextLayout(fonts.NewDrawer(frame.Image(), s.fonts))
	comp := render.NewComposer(frame, text, render.Options{
		Width:  snap.DisplayWidth,
		Height: snap.DisplayHeight,
		Units:  snap.Units,
	})
	draw(comp)

	if err := s.sink.Push(frame); err != nil {
		log.Printf("ERROR: push frame: %v", err)
	}
}

func (s *Station) readVoltage(snap config.Settings) float64 {
	if snap.BatteryVolts != nil {
		return *snap.BatteryVolts
	}
	return s.voltage()
}

func (s *Station) readRSSI(snap config.Settings) int {
	if snap.RSSI != nil {
		return *snap.RSSI
	}
	return s.rssi()
}

// needsSetup reports whether factory settings still block any forecast:
// OpenWeatherMap and WeatherAPI cannot be called without their keys, and an
// unresolved location needs a geocoder key whatever the provider.
func needsSetup(snap config.Settings) bool {
	hasOWMKey := snap.APIKey != "" && snap.APIKey != config.PlaceholderAPIKey
	if snap.Provider == config.ProviderOpenWeatherMap && !hasOWMKey {
		return true
	}
	if snap.Provider == config.ProviderWeatherAPI && snap.WeatherAPIKey == "" {
		return true
	}
	return !snap.CoordinatesResolved() && !hasOWMKey && snap.GoogleAPIKey == ""
}
