package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/logger"
)

const remoteOKCap = 50

// RemoteOK uses the platform's public JSON API. The first array element is a
// legal notice, not a job.
type RemoteOK struct {
	BaseURL string
	client  *http.Client
}

func NewRemoteOK() *RemoteOK {
	return &RemoteOK{
		BaseURL: "https://remoteok.com",
		client:  newHTTPClient(),
	}
}

func (s *RemoteOK) Name() string { return "RemoteOK" }

// remoteOKJob mirrors one element of the RemoteOK API response.
type remoteOKJob struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
	Date        string   `json:"date"`
	SalaryMin   int      `json:"salary_min"`
	SalaryMax   int      `json:"salary_max"`
}

func (s *RemoteOK) Scrape(ctx context.Context, keywords []string) []domain.Job {
	body, err := fetch(ctx, s.client, s.BaseURL+"/api", "application/json")
	if err != nil {
		logger.Log.Warn("remoteok scrape failed", "error", err)
		return nil
	}

	// The legal-notice element has a different shape, so decode leniently
	// and skip anything without a position.
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		logger.Log.Warn("remoteok response not a JSON array", "error", err)
		return nil
	}

	now := time.Now()
	var jobs []domain.Job
	for _, item := range raw {
		var rj remoteOKJob
		if err := json.Unmarshal(item, &rj); err != nil || rj.Position == "" {
			continue
		}

		searchText := rj.Position + " " + rj.Company + " " + rj.Description + " " + strings.Join(rj.Tags, " ")
		if !matchesKeywords(searchText, keywords) {
			continue
		}

		native := rj.ID
		if native == "" {
			native = rj.Slug
		}
		url := rj.URL
		if url == "" {
			url = s.BaseURL + "/remote-jobs/" + rj.Slug
		}

		skills := rj.Tags
		if len(skills) == 0 {
			skills = extractSkills(rj.Position + " " + rj.Description)
		}

		posted := now
		if t, err := time.Parse(time.RFC3339, rj.Date); err == nil {
			posted = t
		}

		jobs = append(jobs, domain.Job{
			ID:          generateID("remoteok", native),
			Title:       rj.Position,
			Company:     orDefault(rj.Company, "Unknown Company"),
			Source:      s.Name(),
			URL:         url,
			Description: cleanHTML(rj.Description),
			Skills:      skills,
			Salary:      formatSalaryRange(rj.SalaryMin, rj.SalaryMax),
			Posted:      posted,
			Remote:      true,
		})
	}

	jobs = dedupeByURL(jobs)
	if len(jobs) > remoteOKCap {
		jobs = jobs[:remoteOKCap]
	}
	return jobs
}

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)
var spaceRe = regexp.MustCompile(`\s+`)

// cleanHTML strips tags and entities and trims descriptions to 500 runes.
func cleanHTML(html string) string {
	text := htmlTagRe.ReplaceAllString(html, " ")
	replacer := strings.NewReplacer("&nbsp;", " ", "&amp;", "&", "&lt;", "<", "&gt;", ">")
	text = replacer.Replace(text)
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	if runes := []rune(text); len(runes) > 500 {
		return string(runes[:500])
	}
	return text
}

func formatSalaryRange(min, max int) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("$%d - $%d", min, max)
	case min > 0:
		return fmt.Sprintf("$%d+", min)
	case max > 0:
		return fmt.Sprintf("Up to $%d", max)
	default:
		return ""
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
