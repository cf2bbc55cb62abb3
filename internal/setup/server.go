// Package setup hosts the web UI a station owner uses to configure the
// display: API credentials, location, units and the daily update
// window.
package setup

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"weather-station/internal/common"
	"weather-station/internal/config"
	"weather-station/internal/store"
	"weather-station/internal/weather"
)

const defaultRefreshMinutes = 60

// Action tells the refresh loop what happened in the setup UI.
type Action int

const (
	// ActionSaved means new settings were persisted and cached
	// forecasts were dropped.
	ActionSaved Action = iota
	// ActionClosed means the UI was left without saving anything.
	ActionClosed
)

// Server hosts the configuration form. It stays up for the life of the
// process so settings can be changed without restarting the station.
type Server struct {
	app     *fiber.App
	manager *config.Manager
	cache   *store.Cache
	actions chan Action
}

// NewServer wires the setup routes around the shared settings manager
// and forecast cache.
func NewServer(manager *config.Manager, cache *store.Cache) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "weather-station-setup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	s := &Server{
		app:     app,
		manager: manager,
		cache:   cache,
		actions: make(chan Action, 1),
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-station-setup",
		})
	})
	app.Get("/", s.form)
	app.Get("/save", s.save)
	app.Get("/reboot", s.leave)
	s.registerAPI()

	return s
}

// Actions delivers a value after every save or dismissal so the refresh
// loop can redraw right away.
func (s *Server) Actions() <-chan Action { return s.actions }

// Listen serves the setup UI on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) form(c *fiber.Ctx) error {
	snap := s.manager.Snapshot()

	var buf bytes.Buffer
	err := formTmpl.Execute(&buf, formData{
		APIKey:     snap.APIKey,
		SSID:       snap.SSID,
		Password:   snap.Password,
		Location:   snap.Location,
		Imperial:   snap.Units == weather.Imperial,
		Frequency:  snap.RefreshMinutes,
		StartHours: hourOptions(0, snap.WakeupHour),
		StopHours:  hourOptions(24, snap.SleepHour),
	})
	if err != nil {
		return fmt.Errorf("render setup form: %w", err)
	}

	return c.Type("html").Send(buf.Bytes())
}

// save validates the submitted form. Any hard error rejects the whole
// submission; recoverable values are normalized instead. Every accepted
// save resets the stored coordinates so the new location is geocoded on
// the next refresh.
func (s *Server) save(c *fiber.Ctx) error {
	snap := s.manager.Snapshot()

	apiKey := c.Query("apikey")
	ssid := c.Query("ssid")
	password := c.Query("password")
	location := c.Query("location")

	var errs []string
	if len(apiKey) > 63 {
		errs = append(errs, "API key too long (maximum 63 characters).")
	}
	if len(ssid) > 63 {
		errs = append(errs, "Network name too long (maximum 63 characters).")
	}
	if len(password) > 63 {
		errs = append(errs, "Network password too long (maximum 63 characters).")
	}
	if location == "" {
		errs = append(errs, "Location is required.")
	}
	if len(location) > 127 {
		errs = append(errs, "Location too long (maximum 127 characters).")
	}
	if common.HasAny(location, "<", ">") {
		errs = append(errs, "Location may not contain '<' or '>'.")
	}

	units := snap.Units
	if raw := c.Query("units"); raw != "" {
		if u := weather.UnitSystem(raw); u == weather.Metric || u == weather.Imperial {
			units = u
		} else {
			errs = append(errs, "Units must be 'M' or 'I'.")
		}
	}

	frequency := snap.RefreshMinutes
	if raw := c.Query("frequency"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n >= 1440 {
			log.Printf("INFO: update frequency %q out of range, falling back to %d minutes", raw, defaultRefreshMinutes)
			frequency = defaultRefreshMinutes
		} else {
			frequency = n
		}
	}

	wakeup := snap.WakeupHour
	if raw := c.Query("startHour"); raw != "" {
		if raw == "none" {
			wakeup = 0
		} else if n, err := strconv.Atoi(raw); err == nil && n >= 0 && n <= 23 {
			wakeup = n
		} else {
			errs = append(errs, "First update hour must be 0-23 or 'none'.")
		}
	}

	sleep := snap.SleepHour
	if raw := c.Query("stopHour"); raw != "" {
		if raw == "none" {
			sleep = 24
		} else if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 23 {
			sleep = n
		} else {
			errs = append(errs, "Last update hour must be 1-23 or 'none'.")
		}
	}

	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).Type("html").SendString(errorPage(errs))
	}

	if sleep != 24 && wakeup >= sleep {
		log.Printf("INFO: last update hour %d precedes first update hour %d, using %d", sleep, wakeup, wakeup)
		sleep = wakeup
	}

	err := s.manager.Update(func(cfg *config.Settings) {
		cfg.APIKey = apiKey
		cfg.SSID = ssid
		cfg.Password = password
		cfg.Location = location
		cfg.Units = units
		cfg.RefreshMinutes = frequency
		cfg.WakeupHour = wakeup
		cfg.SleepHour = sleep
		cfg.ResetCoordinates()
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).Type("html").SendString(errorPage([]string{err.Error()}))
	}

	// Cached forecasts may describe the old location.
	s.cache.Clear()
	s.notify(ActionSaved)

	return c.Type("html").SendString(savedPage)
}

func (s *Server) leave(c *fiber.Ctx) error {
	s.notify(ActionClosed)
	return c.Type("html").SendString(closedPage)
}

// notify never blocks; a pending action is enough for the refresh loop
// to pick up the latest settings.
func (s *Server) notify(a Action) {
	select {
	case s.actions <- a:
	default:
	}
}
