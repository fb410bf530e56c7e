package scraper

import (
	"context"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/logger"
)

// Upwork is permanently degraded: the public RSS feed was discontinued in
// 2024 and now returns 410 Gone. The adapter stays registered so the source
// shows up (with count 0) until the official API becomes an option.
type Upwork struct{}

func NewUpwork() *Upwork { return &Upwork{} }

func (s *Upwork) Name() string { return "Upwork" }

func (s *Upwork) Scrape(_ context.Context, _ []string) []domain.Job {
	logger.Log.Info("upwork RSS feed discontinued, skipping source")
	return nil
}
