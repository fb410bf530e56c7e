package scraper

import (
	"context"
	"testing"
	"time"

	"remote-jobs-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	name string
	jobs []domain.Job
}

func (s *stubSource) Name() string { return s.name }
func (s *stubSource) Scrape(_ context.Context, _ []string) []domain.Job {
	return s.jobs
}

type panicSource struct{}

func (s *panicSource) Name() string { return "Broken" }
func (s *panicSource) Scrape(_ context.Context, _ []string) []domain.Job {
	panic("upstream format changed")
}

func TestAggregateMergesAndSorts(t *testing.T) {
	now := time.Now()
	live := &stubSource{name: "Live", jobs: []domain.Job{
		{ID: "old", URL: "https://x/old", Posted: now.AddDate(0, 0, -5)},
		{ID: "new", URL: "https://x/new", Posted: now},
	}}

	agg := NewAggregator(NewCurated(), live)
	jobs, results := agg.Aggregate(context.Background(), []string{"AI & Automation"}, 50)

	assert.NotEmpty(t, jobs)
	assert.LessOrEqual(t, len(jobs), 50)
	for i := 1; i < len(jobs); i++ {
		assert.False(t, jobs[i].Posted.After(jobs[i-1].Posted), "jobs must be posted-desc")
	}

	var names []string
	for _, r := range results {
		names = append(names, r.Source)
	}
	assert.Contains(t, names, "Curated")
	assert.Contains(t, names, "Live")
}

func TestAggregateIsolatesFailingSource(t *testing.T) {
	agg := NewAggregator(NewCurated(), &panicSource{}, &stubSource{
		name: "Healthy",
		jobs: []domain.Job{{ID: "ok", URL: "https://x/ok", Posted: time.Now()}},
	})

	jobs, results := agg.Aggregate(context.Background(), []string{"AI & Automation"}, 50)

	assert.NotEmpty(t, jobs)
	var names []string
	for _, r := range results {
		names = append(names, r.Source)
	}
	assert.Contains(t, names, "Healthy")
	assert.NotContains(t, names, "Broken", "empty sources are excluded from results")
}

func TestAggregateEmptySourceListStillServesCurated(t *testing.T) {
	agg := NewAggregator(NewCurated())
	jobs, results := agg.Aggregate(context.Background(), []string{"AI & Automation"}, 25)

	assert.NotEmpty(t, jobs, "curated fallback never empty for a non-empty skill selection")
	assert.Len(t, jobs, 25)
	assert.NotEmpty(t, results)
}

func TestCuratedSelectsRelevantCategories(t *testing.T) {
	c := NewCurated()

	all := c.Scrape(context.Background(), nil)
	one := c.Scrape(context.Background(), []string{"Telehealth / Remote Healthcare"})

	assert.NotEmpty(t, one)
	assert.Greater(t, len(all), len(one))

	// every search platform appears once for a single selected category
	perPlatform := map[string]int{}
	for _, j := range one {
		perPlatform[j.Source]++
	}
	for _, name := range []string{"Upwork", "LinkedIn", "RemoteOK"} {
		assert.Equalf(t, 1, perPlatform[name], "platform %s", name)
	}
}

func TestCuratedIDsAreStable(t *testing.T) {
	c := NewCurated()
	a := c.Scrape(context.Background(), []string{"AI & Automation"})
	b := c.Scrape(context.Background(), []string{"AI & Automation"})

	ids := func(jobs []domain.Job) []string {
		out := make([]string, len(jobs))
		for i, j := range jobs {
			out[i] = j.ID
		}
		return out
	}
	assert.Equal(t, ids(a), ids(b))
}

func TestCuratedCategoriesCoverPlatforms(t *testing.T) {
	names := NewCurated().Categories()
	assert.Contains(t, names, "Upwork")
	assert.Contains(t, names, "Testing & Research")
	assert.Contains(t, names, "Advisory & Consulting")
	assert.Contains(t, names, "Freelance")
}
