// Package scheduler runs the periodic achievement recompute jobs.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/seawatts/nugget/internal/observability"
)

// Recomputer abstracts the insights service for the jobs.
type Recomputer interface {
	RecomputeAll(ctx context.Context) error
}

// Config holds scheduler tunables.
type Config struct {
	Location        *time.Location
	NightlyHour     int
	NightlyMinute   int
	RefreshInterval time.Duration
	JobTimeout      time.Duration
}

// Scheduler wraps gocron with the two recompute jobs: a nightly full sweep
// of every baby, and an interval refresh that keeps the daily checklist
// state current through the day.
type Scheduler struct {
	scheduler gocron.Scheduler
	service   Recomputer
	timeout   time.Duration
}

// New creates a Scheduler in the configured location.
func New(service Recomputer, cfg Config) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(loc))
	if err != nil {
		return nil, err
	}

	timeout := cfg.JobTimeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	sched := &Scheduler{scheduler: s, service: service, timeout: timeout}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(cfg.NightlyHour), uint(cfg.NightlyMinute), 0))),
		gocron.NewTask(sched.runNightly),
		gocron.WithName("nightly-recompute"),
	)
	if err != nil {
		return nil, err
	}

	refresh := cfg.RefreshInterval
	if refresh <= 0 {
		refresh = time.Hour
	}
	_, err = s.NewJob(
		gocron.DurationJob(refresh),
		gocron.NewTask(sched.runRefresh),
		gocron.WithName("daily-achievement-refresh"),
	)
	if err != nil {
		return nil, err
	}

	return sched, nil
}

// Start begins job execution.
func (s *Scheduler) Start() {
	s.scheduler.Start()
	log.Println("recompute scheduler started")
}

// Stop shuts the scheduler down, waiting for running jobs.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

// RunNow triggers the full sweep immediately, outside the schedule.
func (s *Scheduler) RunNow(ctx context.Context) error {
	err := s.service.RecomputeAll(ctx)
	observability.RecordRecompute("manual", err)
	return err
}

func (s *Scheduler) runNightly() {
	s.sweep("nightly")
}

func (s *Scheduler) runRefresh() {
	s.sweep("refresh")
}

func (s *Scheduler) sweep(trigger string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.service.RecomputeAll(ctx)
	observability.RecordRecompute(trigger, err)
	if err != nil {
		log.Printf("%s recompute failed: %v", trigger, err)
		return
	}
	log.Printf("%s recompute completed", trigger)
}
