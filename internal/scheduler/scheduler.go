// Package scheduler records the vibe at a fixed interval.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

const jobTimeout = 30 * time.Second

// Recorder captures and persists the current vibe.
type Recorder interface {
	RecordVibe(ctx context.Context) (domain.VibeRecord, error)
}

// Scheduler periodically records the vibe for the configured location.
type Scheduler struct {
	scheduler *gocron.Scheduler
	recorder  Recorder
	interval  time.Duration
}

func New(recorder Recorder, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		recorder:  recorder,
		interval:  interval,
	}
}

// Start schedules the job and runs it once immediately.
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.run); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future runs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	rec, err := s.recorder.RecordVibe(ctx)
	if err != nil {
		log.Printf("WARN scheduler: record vibe failed: %v", err)
		return
	}
	log.Printf("scheduler: recorded %s (%s)", rec.Report.Profile.Mood, rec.ID)
}
