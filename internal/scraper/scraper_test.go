package scraper

import (
	"regexp"
	"testing"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func init() {
	logger.Init("error")
}

func TestGenerateIDIdempotent(t *testing.T) {
	a := generateID("remoteok", "job/123?x=1")
	b := generateID("remoteok", "job/123?x=1")
	assert.Equal(t, a, b)

	safe := regexp.MustCompile(`^[A-Za-z0-9-]+$`)
	assert.Regexp(t, safe, a)
	assert.Regexp(t, safe, generateID("wwr", "/remote-jobs/some listing (senior)!"))
}

func TestGenerateIDDistinguishesSources(t *testing.T) {
	assert.NotEqual(t, generateID("remoteok", "1"), generateID("indeed", "1"))
}

func TestExtractSkills(t *testing.T) {
	skills := extractSkills("Senior AI engineer, Python + React. QA testing of CRM dashboards. AI everywhere.")

	assert.Contains(t, skills, "ai")
	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "react")
	assert.Contains(t, skills, "qa")
	assert.Contains(t, skills, "crm")

	// distinct matches only
	count := 0
	for _, s := range skills {
		if s == "ai" {
			count++
		}
	}
	assert.Equal(t, 1, count)

	assert.Empty(t, extractSkills("nothing relevant here"))
}

func TestMatchesKeywordsIsOrMatch(t *testing.T) {
	text := "Senior Prompt Engineer at Acme"
	assert.True(t, matchesKeywords(text, []string{"banana", "prompt"}))
	assert.False(t, matchesKeywords(text, []string{"banana", "kiwi"}))
	assert.True(t, matchesKeywords(text, nil))
	assert.True(t, matchesKeywords(text, []string{"PROMPT ENGINEER"}))
}

func TestParseRelativeDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		in   string
		want time.Time
	}{
		{"today", now},
		{"just now", now},
		{"3 hours ago", now},
		{"yesterday", now.AddDate(0, 0, -1)},
		{"2 days ago", now.AddDate(0, 0, -2)},
		{"2d ago", now.AddDate(0, 0, -2)},
		{"3 weeks ago", now.AddDate(0, 0, -21)},
		{"1 month ago", now.AddDate(0, 0, -30)},
		{"gibberish", now},
		{"2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, parseRelativeDate(tc.in, now))
		})
	}
}

func TestDedupeByURL(t *testing.T) {
	jobs := []domain.Job{
		{ID: "a", URL: "https://x/1"},
		{ID: "b", URL: "https://x/2"},
		{ID: "c", URL: "https://x/1"},
	}
	out := dedupeByURL(jobs)
	assert.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "b", out[1].ID)
}

func TestCleanHTML(t *testing.T) {
	got := cleanHTML("<p>Build &amp; ship <b>AI</b>&nbsp;tools</p>")
	assert.Equal(t, "Build & ship AI tools", got)
}

func TestFormatSalaryRange(t *testing.T) {
	assert.Equal(t, "$50 - $90", formatSalaryRange(50, 90))
	assert.Equal(t, "$50+", formatSalaryRange(50, 0))
	assert.Equal(t, "Up to $90", formatSalaryRange(0, 90))
	assert.Equal(t, "", formatSalaryRange(0, 0))
}
