package scheduler

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"weather-station/internal/config"
)

func testManager(t *testing.T) *config.Manager {
	t.Helper()
	return config.NewManager(config.Defaults(), filepath.Join(t.TempDir(), "settings.json"))
}

// TestSchedulerStart verifies starting registers exactly one refresh
// job and rescheduling keeps it that way.
func TestSchedulerStart(t *testing.T) {
	s := New(testManager(t), func(context.Context) {})
	if err := s.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer s.Stop()

	if got := s.scheduler.Len(); got != 1 {
		t.Errorf("expected 1 scheduled job, got %d", got)
	}

	if err := s.Reschedule(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.scheduler.Len(); got != 1 {
		t.Errorf("expected 1 scheduled job after reschedule, got %d", got)
	}
}

// TestSchedulerHonorsUpdateWindow verifies the refresh is skipped while
// the display sleeps.
func TestSchedulerHonorsUpdateWindow(t *testing.T) {
	m := testManager(t)
	err := m.Update(func(cfg *config.Settings) {
		cfg.WakeupHour = 8
		cfg.SleepHour = 20
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	called := false
	s := New(m, func(context.Context) { called = true })

	s.now = func() time.Time { return time.Date(2025, 7, 14, 3, 0, 0, 0, time.UTC) }
	s.run()
	if called {
		t.Error("expected no refresh at 3 AM")
	}

	s.now = func() time.Time { return time.Date(2025, 7, 14, 10, 0, 0, 0, time.UTC) }
	s.run()
	if !called {
		t.Error("expected a refresh at 10 AM")
	}
}

// TestRunNowIgnoresWindow verifies an on-demand refresh runs even while
// the display sleeps.
func TestRunNowIgnoresWindow(t *testing.T) {
	m := testManager(t)
	err := m.Update(func(cfg *config.Settings) {
		cfg.WakeupHour = 8
		cfg.SleepHour = 20
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	done := make(chan struct{})
	s := New(m, func(context.Context) { close(done) })
	s.now = func() time.Time { return time.Date(2025, 7, 14, 3, 0, 0, 0, time.UTC) }

	s.RunNow()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected an immediate refresh")
	}
}
