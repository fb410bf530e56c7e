package jsonfile_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/internal/repository/jsonfile"
	"remote-jobs-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init("error")
}

func newStore(t *testing.T) *jsonfile.Store {
	t.Helper()
	return jsonfile.Open(filepath.Join(t.TempDir(), "db.json"))
}

func someJobs(n int, from time.Time) []domain.Job {
	jobs := make([]domain.Job, n)
	for i := 0; i < n; i++ {
		jobs[i] = domain.Job{
			ID:          fmt.Sprintf("src-%d", i),
			Title:       fmt.Sprintf("Job %d", i),
			Description: "remote work",
			URL:         fmt.Sprintf("https://jobs/%d", i),
			Posted:      from.Add(time.Duration(i) * time.Minute),
		}
	}
	return jobs
}

func TestMergeIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewJobRepository(newStore(t))
	jobs := someJobs(10, time.Now().Add(-time.Hour))

	require.NoError(t, repo.Merge(ctx, jobs))
	once, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)

	require.NoError(t, repo.Merge(ctx, jobs))
	twice, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Len(t, twice, 10)
}

func TestMergeOverwritesByID(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewJobRepository(newStore(t))
	posted := time.Now()

	require.NoError(t, repo.Merge(ctx, []domain.Job{{ID: "a", Title: "Old Title", Posted: posted}}))
	require.NoError(t, repo.Merge(ctx, []domain.Job{{ID: "a", Title: "New Title", Posted: posted}}))

	jobs, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "New Title", jobs[0].Title)
}

func TestRetentionCapKeepsNewest(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewJobRepository(newStore(t))
	base := time.Now().Add(-600 * time.Minute)

	require.NoError(t, repo.Merge(ctx, someJobs(600, base)))

	jobs, err := repo.List(ctx, 501, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 500)

	// the 100 oldest (src-0 .. src-99) were dropped
	for _, j := range jobs {
		assert.False(t, j.Posted.Before(base.Add(100*time.Minute)), "job %s should have been pruned", j.ID)
	}
}

func TestListSortedAndWindowed(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewJobRepository(newStore(t))
	require.NoError(t, repo.Merge(ctx, someJobs(20, time.Now().Add(-time.Hour))))

	page, err := repo.List(ctx, 5, 5)
	require.NoError(t, err)
	require.Len(t, page, 5)
	for i := 1; i < len(page); i++ {
		assert.False(t, page[i].Posted.After(page[i-1].Posted))
	}
	// offset 5 with posted-desc order means src-14 leads the second page
	assert.Equal(t, "src-14", page[0].ID)

	empty, err := repo.List(ctx, 5, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSearchIsCaseInsensitiveOrMatch(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewJobRepository(newStore(t))
	now := time.Now()

	require.NoError(t, repo.Merge(ctx, []domain.Job{
		{ID: "1", Title: "AI Engineer", Description: "pipelines", URL: "u1", Posted: now},
		{ID: "2", Title: "Gardener", Description: "plants", URL: "u2", Posted: now},
		{ID: "3", Title: "Writer", Description: "essays", Skills: []string{"AI writing"}, URL: "u3", Posted: now},
	}))

	jobs, err := repo.Search(ctx, []string{"ai"}, 25)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	for _, j := range jobs {
		assert.NotEqual(t, "2", j.ID)
	}

	all, err := repo.Search(ctx, nil, 25)
	require.NoError(t, err)
	assert.Len(t, all, 3, "empty keywords degenerate to a plain list")
}

func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")

	repo := jsonfile.NewJobRepository(jsonfile.Open(path))
	require.NoError(t, repo.Merge(ctx, someJobs(3, time.Now().Add(-time.Hour))))

	reopened := jsonfile.NewJobRepository(jsonfile.Open(path))
	jobs, err := reopened.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, jobs, 3)
}

func TestProfileShallowMerge(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewProfileRepository(newStore(t))

	exp := "senior"
	_, err := repo.Save(ctx, domain.ProfileUpdate{
		Skills:     []string{"AI & Automation"},
		Experience: &exp,
	})
	require.NoError(t, err)

	rate := 50
	_, err = repo.Save(ctx, domain.ProfileUpdate{MinHourlyRate: &rate})
	require.NoError(t, err)

	p, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"AI & Automation"}, p.Skills, "unset fields survive later saves")
	assert.Equal(t, "senior", p.Experience)
	assert.Equal(t, 50, p.MinHourlyRate)
}

func TestProfileGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewProfileRepository(newStore(t))

	_, err := repo.Save(ctx, domain.ProfileUpdate{Skills: []string{"AI & Automation"}})
	require.NoError(t, err)

	p1, _ := repo.Get(ctx)
	p1.Skills[0] = "mutated"

	p2, _ := repo.Get(ctx)
	assert.Equal(t, "AI & Automation", p2.Skills[0])
}

func TestFavoriteUniqueByUserAndURL(t *testing.T) {
	ctx := context.Background()
	repo := jsonfile.NewFavoriteRepository(newStore(t))

	fav := &domain.FavoriteJob{ID: "f1", UserID: "u1", Title: "AI Engineer", URL: "https://jobs/1", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(ctx, fav))

	dup := &domain.FavoriteJob{ID: "f2", UserID: "u1", Title: "Same job, different scrape", URL: "https://jobs/1"}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrDuplicate)

	other := &domain.FavoriteJob{ID: "f3", UserID: "u2", URL: "https://jobs/1"}
	assert.NoError(t, repo.Create(ctx, other), "same URL under another user is fine")
}
