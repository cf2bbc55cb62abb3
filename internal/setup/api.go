package setup

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"weather-station/internal/store"
)

// registerAPI mounts the read-only JSON endpoints next to the form, for
// scripts on the local network that want the same data the panel shows.
// Changing settings stays with the form.
func (s *Server) registerAPI() {
	api := s.app.Group("/api/v1")
	api.Get("/forecast", s.apiForecast)
	api.Get("/forecast/history", s.apiHistory)
	api.Get("/status", s.apiStatus)
}

// apiForecast serves the most recent cached forecast.
func (s *Server) apiForecast(c *fiber.Ctx) error {
	fc, err := s.cache.Latest()
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "no cached forecast")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to read forecast")
	}
	return c.JSON(fc)
}

// apiHistory serves the retained fetches, oldest first.
func (s *Server) apiHistory(c *fiber.Ctx) error {
	history := s.cache.History()
	return c.JSON(fiber.Map{
		"count":     len(history),
		"forecasts": history,
	})
}

// apiStatus reports the station configuration without its credentials.
func (s *Server) apiStatus(c *fiber.Ctx) error {
	snap := s.manager.Snapshot()
	return c.JSON(fiber.Map{
		"device_id":       snap.DeviceID,
		"provider":        snap.Provider,
		"location":        snap.Location,
		"units":           snap.Units,
		"refresh_minutes": snap.RefreshMinutes,
		"wakeup_hour":     snap.WakeupHour,
		"sleep_hour":      snap.SleepHour,
	})
}
