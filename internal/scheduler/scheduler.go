package scheduler

import (
	"context"
	"fmt"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/logger"

	"github.com/robfig/cron/v3"
)

const runTimeout = 5 * time.Minute

// Scheduler refreshes the job store in the background so the UI has fresh
// matches without anyone pressing the refresh button.
type Scheduler struct {
	jobUC domain.JobUsecase
	cron  *cron.Cron
}

func New(jobUC domain.JobUsecase) *Scheduler {
	return &Scheduler{
		jobUC: jobUC,
		cron:  cron.New(),
	}
}

// Start runs one refresh immediately, then repeats every intervalHours.
// An interval of 0 disables the background job entirely.
func (s *Scheduler) Start(intervalHours int) error {
	if intervalHours <= 0 {
		logger.Log.Info("background refresh disabled")
		return nil
	}

	go s.run()

	spec := fmt.Sprintf("@every %dh", intervalHours)
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}
	s.cron.Start()
	logger.Log.Info("background refresh scheduled", "interval_hours", intervalHours)
	return nil
}

// Stop halts the cron and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	start := time.Now()
	_, total, sources, err := s.jobUC.Refresh(ctx, nil)
	if err != nil {
		logger.Log.Error("scheduled refresh failed", "error", err)
		return
	}
	logger.Log.Info("scheduled refresh finished",
		"jobs", total,
		"sources", len(sources),
		"duration", time.Since(start).String(),
	)
}
