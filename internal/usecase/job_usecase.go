package usecase

import (
	"context"
	"sort"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/internal/matcher"
	"remote-jobs-backend/internal/scraper"
	"remote-jobs-backend/pkg/apperror"
	"remote-jobs-backend/pkg/logger"
)

const (
	defaultListLimit = 25
	topPoolSize      = 100
	refreshFetchCap  = 50
)

type jobUsecase struct {
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
	aggregator  *scraper.Aggregator
}

func NewJobUsecase(jobRepo domain.JobRepository, profileRepo domain.ProfileRepository, aggregator *scraper.Aggregator) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		aggregator:  aggregator,
	}
}

// Recent takes the newest stored jobs, scores them against the current
// profile and returns them best match first.
func (u *jobUsecase) Recent(ctx context.Context, limit int) ([]domain.Job, error) {
	if limit < 1 {
		limit = defaultListLimit
	}

	jobs, err := u.jobRepo.List(ctx, limit, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return u.score(ctx, jobs, true)
}

// Top ranks the newest stored jobs by match score and returns the best 25.
func (u *jobUsecase) Top(ctx context.Context) ([]domain.Job, error) {
	jobs, err := u.jobRepo.List(ctx, topPoolSize, 0)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	ranked, err := u.score(ctx, jobs, true)
	if err != nil {
		return nil, err
	}
	if len(ranked) > defaultListLimit {
		ranked = ranked[:defaultListLimit]
	}
	return ranked, nil
}

// Search filters the store by the requested skills (falling back to the
// profile's skills), optionally narrows by source, then sorts by the
// requested key.
func (u *jobUsecase) Search(ctx context.Context, filters domain.SearchFilters) ([]domain.Job, error) {
	limit := filters.Limit
	if limit < 1 {
		limit = defaultListLimit
	}

	keywords := filters.Skills
	if len(keywords) == 0 {
		profile, err := u.profileRepo.Get(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		keywords = profile.Skills
		if len(keywords) > 5 {
			keywords = keywords[:5]
		}
	}

	// An explicit limit bounds the candidate pool itself; only an absent one
	// widens the fetch to the default pool.
	fetchLimit := filters.Limit
	if fetchLimit < 1 {
		fetchLimit = topPoolSize
	}
	jobs, err := u.jobRepo.Search(ctx, keywords, fetchLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if len(filters.Sources) > 0 {
		wanted := make(map[string]bool, len(filters.Sources))
		for _, s := range filters.Sources {
			wanted[s] = true
		}
		filtered := jobs[:0]
		for _, j := range jobs {
			if wanted[j.Source] {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}

	if filters.MinSalary > 0 {
		filtered := jobs[:0]
		for _, j := range jobs {
			if matcher.SalarySortValue(j.Salary) >= filters.MinSalary {
				filtered = append(filtered, j)
			}
		}
		jobs = filtered
	}

	ranked, err := u.score(ctx, jobs, filters.SortBy != "recent" && filters.SortBy != "salary")
	if err != nil {
		return nil, err
	}

	switch filters.SortBy {
	case "recent":
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Posted.After(ranked[j].Posted)
		})
	case "salary":
		sort.SliceStable(ranked, func(i, j int) bool {
			return matcher.SalarySortValue(ranked[i].Salary) > matcher.SalarySortValue(ranked[j].Salary)
		})
	}

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Refresh scrapes every source, merges the results into the store, and
// returns the best matches of the fresh batch plus a per-source digest.
func (u *jobUsecase) Refresh(ctx context.Context, skills []string) ([]domain.Job, int, []domain.SourceSummary, error) {
	keywords := skills
	if len(keywords) == 0 {
		profile, err := u.profileRepo.Get(ctx)
		if err != nil {
			return nil, 0, nil, apperror.Internal(err)
		}
		keywords = profile.Skills
	}

	jobs, results := u.aggregator.Aggregate(ctx, keywords, refreshFetchCap)

	if err := u.jobRepo.Merge(ctx, jobs); err != nil {
		return nil, 0, nil, apperror.Internal(err)
	}
	logger.Log.Info("refresh merged scraped jobs", "count", len(jobs), "sources", len(results))

	ranked, err := u.score(ctx, jobs, true)
	if err != nil {
		return nil, 0, nil, err
	}
	if len(ranked) > defaultListLimit {
		ranked = ranked[:defaultListLimit]
	}

	summaries := make([]domain.SourceSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, domain.SourceSummary{
			Name:      r.Source,
			Count:     len(r.Jobs),
			ScrapedAt: r.ScrapedAt,
		})
	}
	return ranked, len(jobs), summaries, nil
}

func (u *jobUsecase) Sources() []string {
	return u.aggregator.Sources()
}

// score decorates jobs with match score, reasons and the one-line summary.
// With rank set the result is reordered best-first.
func (u *jobUsecase) score(ctx context.Context, jobs []domain.Job, rank bool) ([]domain.Job, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	if rank {
		jobs = matcher.MatchJobsToProfile(jobs, profile, now)
	} else {
		out := make([]domain.Job, len(jobs))
		copy(out, jobs)
		for i := range out {
			out[i].MatchScore, out[i].MatchReasons = matcher.Score(&out[i], profile, now)
		}
		jobs = out
	}
	for i := range jobs {
		jobs[i].Summary = matcher.Summary(&jobs[i])
	}
	return jobs, nil
}
