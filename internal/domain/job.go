package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job is a normalized posting as produced by a source adapter. ID is derived
// from (source, native identifier), so re-scraping the same posting yields
// the same record and Merge stays idempotent.
type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Salary      string    `json:"salary,omitempty"`
	Posted      time.Time `json:"posted"`
	Remote      bool      `json:"remote"`

	// Derived per read against the current profile. Never persisted.
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons,omitempty"`
	Summary      string   `json:"summary,omitempty"`
}

// ScraperResult is the per-adapter output of one scrape run.
type ScraperResult struct {
	Jobs      []Job     `json:"jobs"`
	Source    string    `json:"source"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// SourceSummary is the per-source digest returned by a refresh.
type SourceSummary struct {
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// SearchFilters holds the query parameters of the search endpoint.
type SearchFilters struct {
	Skills    []string `json:"skills,omitempty"`
	Sources   []string `json:"sources,omitempty"`
	MinSalary int      `json:"minSalary,omitempty"` // compared against the leading integer of Salary
	Limit     int      `json:"limit,omitempty"`
	SortBy    string   `json:"sortBy,omitempty"` // "recent", "salary" or "match" (default)
}

type JobRepository interface {
	// Merge inserts unseen jobs and fully overwrites existing ones by ID,
	// then enforces the retention cap (newest by Posted win) and persists.
	Merge(ctx context.Context, jobs []Job) error
	List(ctx context.Context, limit, offset int) ([]Job, error)
	// Search is a case-insensitive OR-substring match over
	// title + description + joined skills. Empty keywords degenerate to List.
	Search(ctx context.Context, keywords []string, limit int) ([]Job, error)
}

type JobUsecase interface {
	Recent(ctx context.Context, limit int) ([]Job, error)
	Top(ctx context.Context) ([]Job, error)
	Search(ctx context.Context, filters SearchFilters) ([]Job, error)
	Refresh(ctx context.Context, skills []string) ([]Job, int, []SourceSummary, error)
	Sources() []string
}
