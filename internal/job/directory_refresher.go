// Package job schedules background maintenance work for the service.
package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule reloads the code tables every three hours.
const DefaultRefreshSchedule = "@every 3h"

// refreshTimeout bounds a single refresh run.
const refreshTimeout = 5 * time.Minute

// DirectoryRefresher rebuilds the ticker routing directory.
// Following Go convention: interfaces are defined by the consumer (job), not the provider (usecase).
type DirectoryRefresher interface {
	Refresh(ctx context.Context) error
}

// RefreshScheduler runs directory refreshes on a cron schedule. A failed
// run is logged and the previously published directory stays live.
type RefreshScheduler struct {
	cron      *cron.Cron
	directory DirectoryRefresher
	schedule  string
}

// NewRefreshScheduler creates a scheduler for the given directory. An empty
// schedule selects DefaultRefreshSchedule.
func NewRefreshScheduler(directory DirectoryRefresher, schedule string) *RefreshScheduler {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}
	return &RefreshScheduler{
		cron:      cron.New(),
		directory: directory,
		schedule:  schedule,
	}
}

// Start registers the refresh job and starts the scheduler.
func (s *RefreshScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("directory refresh scheduled", "schedule", s.schedule)
	return nil
}

// Stop stops the scheduler and waits for an in-flight refresh to finish.
func (s *RefreshScheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("directory refresh scheduler stopped")
}

func (s *RefreshScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	start := time.Now()
	if err := s.directory.Refresh(ctx); err != nil {
		slog.Error("directory refresh failed", "error", err)
		return
	}
	slog.Info("directory refresh completed", "took", time.Since(start))
}
