// Package scraper fetches postings from external job platforms and
// normalizes them into domain.Job records. Adapters are fail-open: any
// network or parse error degrades to an empty result so one dead source
// never blocks aggregation from the others.
package scraper

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"remote-jobs-backend/internal/domain"
)

// Source is one external platform adapter. Scrape must never return an
// error; failures are logged internally and yield an empty slice.
type Source interface {
	Name() string
	Scrape(ctx context.Context, keywords []string) []domain.Job
}

// Result wraps one adapter invocation into a ScraperResult.
func Result(ctx context.Context, s Source, keywords []string) domain.ScraperResult {
	return domain.ScraperResult{
		Jobs:      s.Scrape(ctx, keywords),
		Source:    s.Name(),
		ScrapedAt: time.Now(),
	}
}

var idUnsafe = regexp.MustCompile(`[^a-zA-Z0-9-]`)

// generateID derives the stable job ID from the source name and the
// platform-native identifier. Idempotent, and safe as a persisted key or URL
/// path segment: everything outside [A-Za-z0-9-] becomes a dash.
func generateID(source, identifier string) string {
	return idUnsafe.ReplaceAllString(source+"-"+identifier, "-")
}

// skillPatterns is the static extraction table. Adding a category here is
// enough; adapters never reference it directly.
var skillPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(ai|artificial intelligence|machine learning|ml)\b`),
	regexp.MustCompile(`(?i)\b(gpt|chatgpt|llm|claude|gemini)\b`),
	regexp.MustCompile(`(?i)\b(prompt engineering)\b`),
	regexp.MustCompile(`(?i)\b(python|javascript|typescript|nodejs|react)\b`),
	regexp.MustCompile(`(?i)\b(no-?code|zapier|make|n8n|automation)\b`),
	regexp.MustCompile(`(?i)\b(webflow|framer|notion|airtable)\b`),
	regexp.MustCompile(`(?i)\b(copywriting|seo|content writing)\b`),
	regexp.MustCompile(`(?i)\b(crm|hubspot|salesforce)\b`),
	regexp.MustCompile(`(?i)\b(podcast|video editing|youtube)\b`),
	regexp.MustCompile(`(?i)\b(qa|testing|quality assurance)\b`),
	regexp.MustCompile(`(?i)\b(ux|user testing|usability)\b`),
	regexp.MustCompile(`(?i)\b(data labeling|annotation|rlhf)\b`),
	regexp.MustCompile(`(?i)\b(api|integration|webhook)\b`),
	regexp.MustCompile(`(?i)\b(excel|spreadsheet|google sheets|dashboard)\b`),
	regexp.MustCompile(`(?i)\b(coaching|consulting|advisory)\b`),
}

// extractSkills scans free text against the pattern table and collects every
// distinct lowercase match.
func extractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	var skills []string
	for _, p := range skillPatterns {
		for _, m := range p.FindAllString(lower, -1) {
			if !seen[m] {
				seen[m] = true
				skills = append(skills, m)
			}
		}
	}
	return skills
}

// matchesKeywords reports whether the text contains at least one keyword,
// case-insensitively. An empty keyword list matches everything (OR over
// nothing yields no filter).
func matchesKeywords(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// dedupeByURL drops jobs repeating an earlier job's URL, keeping input order.
func dedupeByURL(jobs []domain.Job) []domain.Job {
	seen := make(map[string]bool, len(jobs))
	out := jobs[:0]
	for _, j := range jobs {
		if seen[j.URL] {
			continue
		}
		seen[j.URL] = true
		out = append(out, j)
	}
	return out
}

var (
	daysAgoRe   = regexp.MustCompile(`(?i)(\d+)\s*d(ay)?s?\s*ago`)
	weeksAgoRe  = regexp.MustCompile(`(?i)(\d+)\s*w(eek)?s?\s*ago`)
	monthsAgoRe = regexp.MustCompile(`(?i)(\d+)\s*m(onth)?s?\s*ago`)
)

// parseRelativeDate turns expressions like "2 days ago", "yesterday" or
// "3 weeks ago" into absolute timestamps relative to now. Unparseable input
// falls back to now.
func parseRelativeDate(s string, now time.Time) time.Time {
	lower := strings.ToLower(s)

	if strings.Contains(lower, "today") || strings.Contains(lower, "just now") || strings.Contains(lower, "hour") {
		return now
	}
	if strings.Contains(lower, "yesterday") {
		return now.AddDate(0, 0, -1)
	}
	if m := daysAgoRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -n)
	}
	if m := weeksAgoRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -7*n)
	}
	if m := monthsAgoRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return now.AddDate(0, 0, -30*n)
	}

	for _, layout := range []string{time.RFC3339, time.RFC1123Z, time.RFC1123, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now
}
