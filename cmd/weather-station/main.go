package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-station/internal/config"
	"weather-station/internal/display"
	"weather-station/internal/fonts"
	"weather-station/internal/geocode"
	"weather-station/internal/scheduler"
	"weather-station/internal/setup"
	"weather-station/internal/station"
	"weather-station/internal/store"
	"weather-station/internal/weather"
	"weather-station/internal/weather/providers"
)

func main() {
	settingsPath := flag.String("settings", "settings.json", "path to the settings file")
	flag.Parse()

	// Load configuration.
	cfg, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}
	log.Printf("INFO: weather station %s starting", cfg.DeviceID)

	manager := config.NewManager(*cfg, *settingsPath)

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Forecast cache with configured retention; it doubles as the
	// fallback when a refresh fails.
	cache := store.NewCache(cfg.StoreMaxHistory, cfg.StoreMaxAge())

	fontSet, err := fonts.Load()
	if err != nil {
		log.Fatalf("failed to load fonts: %v", err)
	}

	sink, err := openSink(cfg)
	if err != nil {
		log.Fatalf("failed to open output: %v", err)
	}
	defer sink.Close()

	st := station.New(station.Deps{
		Manager:  manager,
		Provider: providerFor(httpClient),
		Resolver: resolverFor(httpClient),
		Cache:    cache,
		Sink:     sink,
		Fonts:    fontSet,
		SetupURL: setupURL(cfg.Port),
	})

	// Scheduler that periodically refreshes the display.
	sched := scheduler.New(manager, func(ctx context.Context) { st.Refresh(ctx) })
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// First frame right away; the schedule only fires after one full
	// interval.
	sched.RunNow()

	srv := setup.NewServer(manager, cache)
	go func() {
		if err := srv.Listen(":" + cfg.Port); err != nil {
			log.Printf("setup server stopped: %v", err)
		}
	}()

	// Redraw after every visit to the setup UI.
	go func() {
		for action := range srv.Actions() {
			if action == setup.ActionSaved {
				if err := sched.Reschedule(); err != nil {
					log.Printf("ERROR: reschedule after save: %v", err)
				}
			}
			sched.RunNow()
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// providerFor builds the forecast client for the given settings. The
// factory runs on every refresh so provider and key changes made in
// the setup UI apply without a restart.
func providerFor(client *http.Client) func(config.Settings) weather.Provider {
	return func(snap config.Settings) weather.Provider {
		var p weather.Provider
		switch snap.Provider {
		case config.ProviderOpenMeteo:
			p = providers.NewOpenMeteoProvider(client)
		case config.ProviderWeatherAPI:
			p = providers.NewWeatherAPIProvider(client, snap.WeatherAPIKey)
		default:
			p = providers.NewOpenWeatherProvider(client, snap.APIKey)
		}
		// Free OpenWeatherMap keys allow 60 calls a minute.
		return providers.NewRateLimited(p, 1, 3)
	}
}

// resolverFor picks the geocoder: Google when a key for it is
// configured, OpenWeatherMap otherwise.
func resolverFor(client *http.Client) func(config.Settings) geocode.Resolver {
	return func(snap config.Settings) geocode.Resolver {
		if snap.GoogleAPIKey != "" {
			return geocode.NewGoogleResolver(snap.GoogleAPIKey)
		}
		return geocode.NewOpenWeatherResolver(client, snap.APIKey)
	}
}

// openSink opens the configured output device.
func openSink(cfg *config.Settings) (display.Sink, error) {
	if cfg.Output == "epd" {
		return display.OpenEPD()
	}
	return &display.PNGSink{Path: cfg.OutputPath}, nil
}

func setupURL(port string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%s", host, port)
}
