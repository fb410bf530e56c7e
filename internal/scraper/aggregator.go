package scraper

import (
	"context"
	"sort"
	"sync"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/logger"
)

const defaultAggregateLimit = 50

// Aggregator fans out to every registered source and merges the results.
// The curated fallback always runs; live sources run concurrently and each
// failure domain is isolated, so a blocked site only shows up as a missing
// source summary.
type Aggregator struct {
	curated *Curated
	live    []Source
}

func NewAggregator(curated *Curated, live ...Source) *Aggregator {
	return &Aggregator{curated: curated, live: live}
}

// Sources lists every name usable in the sources filter: live adapters plus
// the curated platform and category names.
func (a *Aggregator) Sources() []string {
	names := a.curated.Categories()
	for _, s := range a.live {
		names = append(names, s.Name())
	}
	sort.Strings(names)
	return names
}

// Aggregate runs all sources with the profile-derived keyword list, waits
// for every branch to settle, and returns the merged jobs (posted-desc,
// truncated to limit) plus the non-empty per-source results.
func (a *Aggregator) Aggregate(ctx context.Context, skills []string, limit int) ([]domain.Job, []domain.ScraperResult) {
	if limit <= 0 {
		limit = defaultAggregateLimit
	}

	results := make([]domain.ScraperResult, 1+len(a.live))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = a.scrapeOne(ctx, a.curated, skills)
	}()

	for i, src := range a.live {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			results[i+1] = a.scrapeOne(ctx, src, skills)
		}(i, src)
	}
	wg.Wait()

	var jobs []domain.Job
	var nonEmpty []domain.ScraperResult
	for _, r := range results {
		if len(r.Jobs) == 0 {
			continue
		}
		jobs = append(jobs, r.Jobs...)
		nonEmpty = append(nonEmpty, r)
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Posted.After(jobs[j].Posted)
	})
	if len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return jobs, nonEmpty
}

// scrapeOne isolates a single source run. A panicking adapter is treated the
// same as one that returned nothing.
func (a *Aggregator) scrapeOne(ctx context.Context, src Source, keywords []string) (result domain.ScraperResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Error("source panicked", "source", src.Name(), "panic", r)
			result = domain.ScraperResult{Source: src.Name(), ScrapedAt: time.Now()}
		}
	}()

	start := time.Now()
	result = Result(ctx, src, keywords)
	logger.Log.Info("source scraped",
		"source", src.Name(),
		"jobs", len(result.Jobs),
		"took", time.Since(start).String(),
	)
	return result
}
