package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/Extraversi0n/road-to-brivJ/internal/tracker"
)

// Scheduler re-runs the tracker on a cron schedule for watch mode, so the
// overlay file stays fresh while a stream or OBS session is running. Each
// tick is an independent, idempotent run.
type Scheduler struct {
	Cron    *cron.Cron
	Tracker *tracker.Tracker
	Ctx     context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, t *tracker.Tracker) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Tracker: t,
		Ctx:     ctx,
	}
}

// Register registers the refresh task with the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (used on watch startup).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running overlay refresh")
	if _, err := s.Tracker.Run(s.Ctx); err != nil {
		log.Printf("[ERROR] overlay refresh: %v", err)
	}
}
