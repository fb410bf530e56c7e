// Package matcher scores jobs against the user profile. Everything here is
// pure: no I/O, deterministic for a fixed (job, profile, now).
package matcher

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"remote-jobs-backend/internal/domain"
)

// Scoring weights. Ad hoc heuristic carried over for compatibility; tune as
// policy, not as law.
const (
	maxScore          = 100
	pointsPerKeyword  = 10
	maxKeywordPoints  = 60
	remoteBonus       = 10
	postedTodayBonus  = 15 // <= 1 day
	postedRecentBonus = 10 // <= 3 days
	postedWeekBonus   = 5  // <= 7 days
	rateMatchBonus    = 15
	maxReasonKeywords = 3
)

var leadingIntRe = regexp.MustCompile(`\$?(\d+)`)

// ExtractUserKeywords expands the profile's skills and preferred categories
// through the skill keyword map into a deduplicated lowercase set. Categories
// without a map entry contribute nothing.
func ExtractUserKeywords(profile *domain.UserProfile) []string {
	seen := make(map[string]bool)
	var keywords []string

	add := func(categories []string) {
		for _, cat := range categories {
			for _, kw := range domain.SkillKeywords[cat] {
				kw = strings.ToLower(kw)
				if !seen[kw] {
					seen[kw] = true
					keywords = append(keywords, kw)
				}
			}
		}
	}

	add(profile.Skills)
	add(profile.PreferredCategories)
	return keywords
}

// Score computes the 0-100 match score and its human-readable reasons for one
// job. Reasons are emitted in award order: keywords, remote, recency, rate.
func Score(job *domain.Job, profile *domain.UserProfile, now time.Time) (int, []string) {
	return scoreWithKeywords(job, ExtractUserKeywords(profile), profile, now)
}

func scoreWithKeywords(job *domain.Job, userKeywords []string, profile *domain.UserProfile, now time.Time) (int, []string) {
	score := 0
	var reasons []string

	jobText := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Skills, " "))

	// Keyword matches, up to 60 points
	var matched []string
	for _, kw := range userKeywords {
		if strings.Contains(jobText, kw) {
			matched = append(matched, kw)
		}
	}
	if len(matched) > 0 {
		points := len(matched) * pointsPerKeyword
		if points > maxKeywordPoints {
			points = maxKeywordPoints
		}
		score += points

		top := matched
		if len(top) > maxReasonKeywords {
			top = top[:maxReasonKeywords]
		}
		reasons = append(reasons, "Matches skills: "+strings.Join(top, ", "))
	}

	if job.Remote {
		score += remoteBonus
		reasons = append(reasons, "Remote position")
	}

	// Recency tiers are mutually exclusive, first match wins
	switch days := daysSince(job.Posted, now); {
	case days <= 1:
		score += postedTodayBonus
		reasons = append(reasons, "Posted today")
	case days <= 3:
		score += postedRecentBonus
		reasons = append(reasons, "Posted recently")
	case days <= 7:
		score += postedWeekBonus
		reasons = append(reasons, "Posted this week")
	}

	if job.Salary != "" && profile.MinHourlyRate > 0 {
		if rate, ok := extractSalaryNumber(job.Salary); ok && rate >= profile.MinHourlyRate {
			score += rateMatchBonus
			reasons = append(reasons, "Meets rate: "+job.Salary)
		}
	}

	if score > maxScore {
		score = maxScore
	}
	return score, reasons
}

// daysSince is ceil(|now - posted|) in calendar days.
func daysSince(posted, now time.Time) int {
	diff := now.Sub(posted)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// extractSalaryNumber parses the first integer out of a free-text salary
// string ("$80/hr" -> 80).
func extractSalaryNumber(salary string) (int, bool) {
	m := leadingIntRe.FindStringSubmatch(salary)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SalarySortValue is the leading integer of a salary string, 0 when missing
// or unparseable, used by the salary sort order.
func SalarySortValue(salary string) int {
	n, _ := extractSalaryNumber(salary)
	return n
}

// MatchJobsToProfile scores every job against the profile and returns them in
// descending score order. The sort is stable: equal scores keep their input
// order, which callers rely on for deterministic pagination.
func MatchJobsToProfile(jobs []domain.Job, profile *domain.UserProfile, now time.Time) []domain.Job {
	userKeywords := ExtractUserKeywords(profile)

	out := make([]domain.Job, len(jobs))
	copy(out, jobs)
	for i := range out {
		score, reasons := scoreWithKeywords(&out[i], userKeywords, profile, now)
		out[i].MatchScore = score
		out[i].MatchReasons = reasons
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

// Summary composes the one-line digest shown in list views, omitting any
// segment whose source field is absent.
func Summary(job *domain.Job) string {
	var parts []string

	if job.Company != "" {
		parts = append(parts, fmt.Sprintf("%s at %s", job.Title, job.Company))
	} else {
		parts = append(parts, job.Title)
	}

	if job.Salary != "" {
		parts = append(parts, "Pay: "+job.Salary)
	}
	if job.Remote {
		parts = append(parts, "Remote")
	}
	if len(job.Skills) > 0 {
		top := job.Skills
		if len(top) > 3 {
			top = top[:3]
		}
		parts = append(parts, "Skills: "+strings.Join(top, ", "))
	}
	parts = append(parts, fmt.Sprintf("Match: %d%%", job.MatchScore))
	if len(job.MatchReasons) > 0 {
		why := job.MatchReasons
		if len(why) > 2 {
			why = why[:2]
		}
		parts = append(parts, "Why: "+strings.Join(why, "; "))
	}

	return strings.Join(parts, " | ")
}
