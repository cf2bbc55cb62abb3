package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"weather-station/internal/config"
)

// refreshTimeout bounds one full refresh, including provider retries
// and backoff across both forecast endpoints.
const refreshTimeout = 2 * time.Minute

// Scheduler periodically triggers the station refresh, honoring the
// configured update window.
type Scheduler struct {
	scheduler *gocron.Scheduler
	manager   *config.Manager
	job       func(ctx context.Context)
	now       func() time.Time
}

// New creates a Scheduler driving job at the refresh interval from the
// manager's settings.
func New(manager *config.Manager, job func(ctx context.Context)) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		manager:   manager,
		job:       job,
		now:       time.Now,
	}
}

// Start schedules the periodic refresh and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if err := s.schedule(); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Reschedule re-reads the settings and replaces the refresh job, used
// after the update frequency changes.
func (s *Scheduler) Reschedule() error {
	s.scheduler.Clear()
	return s.schedule()
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) schedule() error {
	minutes := s.manager.Snapshot().RefreshMinutes
	if minutes <= 0 {
		minutes = 60
	}

	// A slow refresh must finish before the next one may start; the
	// panel cannot draw two frames at once.
	_, err := s.scheduler.Every(minutes).Minutes().SingletonMode().Do(s.run)
	return err
}

// RunNow triggers one refresh outside the schedule, ignoring the
// update window. Used for the first frame after boot and for redraws
// after setup visits.
func (s *Scheduler) RunNow() {
	go s.execute()
}

func (s *Scheduler) run() {
	snap := s.manager.Snapshot()
	hour := s.now().Hour()
	if !snap.Awake(hour) {
		log.Printf("scheduler: display sleeps at hour %d, skipping refresh", hour)
		return
	}
	s.execute()
}

func (s *Scheduler) execute() {
	log.Println("scheduler: running display refresh")
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()
	s.job(ctx)
	log.Println("scheduler: completed display refresh")
}
