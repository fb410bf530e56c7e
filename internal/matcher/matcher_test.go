package matcher_test

import (
	"fmt"
	"testing"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/internal/matcher"

	"github.com/stretchr/testify/assert"
)

func aiProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:     "default",
		Skills: []string{"AI & Automation"},
	}
}

func TestScoreAIEngineerScenario(t *testing.T) {
	now := time.Now()
	job := &domain.Job{
		Title:       "AI Engineer",
		Description: "Build ML pipelines",
		Remote:      true,
		Posted:      now,
		Salary:      "$80/hr",
	}

	score, reasons := matcher.Score(job, aiProfile(), now)

	// three distinct keyword hits (ai, ml, ai engineer) = 30, remote +10,
	// posted today +15; rate floor unset
	assert.Equal(t, 55, score)
	assert.Len(t, reasons, 3)
	assert.Equal(t, "Matches skills: ai, ml, ai engineer", reasons[0])
	assert.Contains(t, reasons, "Remote position")
	assert.Contains(t, reasons, "Posted today")
}

func TestScoreOldPosting(t *testing.T) {
	now := time.Now()
	job := &domain.Job{
		Title:       "AI Engineer",
		Description: "Build ML pipelines",
		Remote:      true,
		Posted:      now.AddDate(0, 0, -10),
	}

	score, reasons := matcher.Score(job, aiProfile(), now)

	// same keyword and remote points as the fresh posting, no recency bonus
	assert.Equal(t, 40, score)
	assert.NotContains(t, reasons, "Posted today")
	assert.NotContains(t, reasons, "Posted recently")
	assert.NotContains(t, reasons, "Posted this week")
}

func TestScoreRemoteBonusIsExactlyTen(t *testing.T) {
	now := time.Now()
	base := domain.Job{
		Title:       "Podcast Editor",
		Description: "Edit audio",
		Posted:      now.AddDate(0, 0, -30),
	}
	remote := base
	remote.Remote = true

	profile := &domain.UserProfile{Skills: []string{"Podcast Production & Editing"}}

	onsiteScore, _ := matcher.Score(&base, profile, now)
	remoteScore, _ := matcher.Score(&remote, profile, now)

	assert.Equal(t, onsiteScore+10, remoteScore)
}

func TestScoreBounded(t *testing.T) {
	now := time.Now()
	profile := &domain.UserProfile{
		Skills:              domain.SkillCategories,
		PreferredCategories: domain.SkillCategories,
		MinHourlyRate:       1,
	}
	job := &domain.Job{
		Title:       "ai automation machine learning gpt llm qa seo crm notion api excel coaching",
		Description: "everything at once",
		Skills:      []string{"podcast", "webflow", "salesforce"},
		Salary:      "$500/hr",
		Remote:      true,
		Posted:      now,
	}

	score, _ := matcher.Score(job, profile, now)
	assert.LessOrEqual(t, score, 100)
	assert.GreaterOrEqual(t, score, 0)

	empty, _ := matcher.Score(&domain.Job{Posted: now.AddDate(0, 0, -30)}, &domain.UserProfile{}, now)
	assert.GreaterOrEqual(t, empty, 0)
}

func TestScoreRateBonus(t *testing.T) {
	now := time.Now()
	profile := aiProfile()
	profile.MinHourlyRate = 50

	job := &domain.Job{Title: "AI Engineer", Posted: now.AddDate(0, 0, -30), Salary: "$80/hr"}
	score, reasons := matcher.Score(job, profile, now)
	assert.Contains(t, reasons, "Meets rate: $80/hr")

	job.Salary = "$30/hr"
	lower, reasons := matcher.Score(job, profile, now)
	assert.Equal(t, score-15, lower)
	assert.NotContains(t, reasons, "Meets rate: $30/hr")
}

func TestMatchJobsToProfileStableOrder(t *testing.T) {
	now := time.Now()
	old := now.AddDate(0, 0, -30)

	// Ascending by score on input; ties must keep input order.
	jobs := []domain.Job{
		{ID: "none", Title: "Forklift Operator", Posted: old},
		{ID: "tie-a", Title: "Podcast Editor", Description: "podcast", Posted: old},
		{ID: "tie-b", Title: "Audio Person", Description: "podcast", Posted: old},
		{ID: "best", Title: "Podcast Producer", Description: "podcast editing audio production", Posted: old},
	}
	profile := &domain.UserProfile{Skills: []string{"Podcast Production & Editing"}}

	ranked := matcher.MatchJobsToProfile(jobs, profile, now)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].MatchScore, ranked[i].MatchScore)
	}
	// tie-a scored the input before tie-b and must stay ahead of it
	posA, posB := -1, -1
	for i, j := range ranked {
		switch j.ID {
		case "tie-a":
			posA = i
		case "tie-b":
			posB = i
		}
	}
	assert.Less(t, posA, posB)
	assert.Equal(t, "best", ranked[0].ID)
}

func TestSummaryOmitsAbsentSegments(t *testing.T) {
	full := &domain.Job{
		Title:        "AI Engineer",
		Company:      "Acme",
		Salary:       "$90/hr",
		Remote:       true,
		Skills:       []string{"ai", "ml", "python", "golang"},
		MatchScore:   85,
		MatchReasons: []string{"Matches skills: ai, ml", "Remote position", "Posted today"},
	}
	s := matcher.Summary(full)
	assert.Equal(t, "AI Engineer at Acme | Pay: $90/hr | Remote | Skills: ai, ml, python | Match: 85% | Why: Matches skills: ai, ml; Remote position", s)

	bare := &domain.Job{Title: "QA Tester", MatchScore: 0}
	assert.Equal(t, "QA Tester | Match: 0%", matcher.Summary(bare))
}

func TestSalarySortValue(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"$80/hr", 80},
		{"80-100 USD", 80},
		{"competitive", 0},
		{"", 0},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			assert.Equal(t, tc.want, matcher.SalarySortValue(tc.in))
		})
	}
}

func TestExtractUserKeywordsDedupes(t *testing.T) {
	profile := &domain.UserProfile{
		Skills:              []string{"AI & Automation", "Nonexistent Category"},
		PreferredCategories: []string{"AI & Automation"},
	}
	kws := matcher.ExtractUserKeywords(profile)

	seen := map[string]int{}
	for _, kw := range kws {
		seen[kw]++
	}
	for kw, n := range seen {
		assert.Equalf(t, 1, n, "keyword %q duplicated", kw)
	}
	assert.Contains(t, kws, "ai")
	assert.Contains(t, kws, "machine learning")
}
