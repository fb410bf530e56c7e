package scraper

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"remote-jobs-backend/internal/domain"
	"remote-jobs-backend/pkg/logger"
)

// Indeed scrapes the public search results. Indeed blocks bots aggressively
// and rewrites its markup often; every selector below has fallbacks and a
// blocked response just yields an empty result.
type Indeed struct {
	BaseURL string
	client  *http.Client
}

func NewIndeed() *Indeed {
	return &Indeed{
		BaseURL: "https://www.indeed.com",
		client:  newHTTPClient(),
	}
}

func (s *Indeed) Name() string { return "Indeed" }

func (s *Indeed) Scrape(ctx context.Context, keywords []string) []domain.Job {
	searches := []string{
		"q=ai+remote&l=Remote",
		"q=automation+specialist+remote&l=Remote",
	}

	now := time.Now()
	var jobs []domain.Job
	for _, search := range searches {
		body, err := fetch(ctx, s.client, s.BaseURL+"/jobs?"+search+"&fromage=7&remotejob=1", "text/html,application/xhtml+xml")
		if err != nil {
			logger.Log.Warn("indeed search fetch failed", "search", search, "error", err)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			logger.Log.Warn("indeed parse failed", "search", search, "error", err)
			continue
		}

		doc.Find("[data-jk], .job_seen_beacon, .jobsearch-ResultsList > li").Each(func(_ int, sel *goquery.Selection) {
			title := strings.TrimSpace(sel.Find(".jobTitle span, h2.jobTitle, a[data-jk]").First().Text())
			company := strings.TrimSpace(sel.Find(".companyName, .company, [data-testid=\"company-name\"]").First().Text())
			location := strings.TrimSpace(sel.Find(".companyLocation, .location").First().Text())
			salary := strings.TrimSpace(sel.Find(".salary-snippet, .metadata.salary-snippet-container").First().Text())

			jobKey, ok := sel.Attr("data-jk")
			if !ok {
				jobKey, _ = sel.Find("a[data-jk]").Attr("data-jk")
			}

			var url string
			native := jobKey
			if jobKey != "" {
				url = s.BaseURL + "/viewjob?jk=" + jobKey
			} else if href, ok := sel.Find("a").First().Attr("href"); ok {
				native = href
				if strings.HasPrefix(href, "http") {
					url = href
				} else {
					url = s.BaseURL + href
				}
			}

			if title == "" || url == "" {
				return
			}
			if !matchesKeywords(title+" "+company, keywords) {
				return
			}

			desc := title + " at " + company
			if location != "" {
				desc += ". " + location
			}

			jobs = append(jobs, domain.Job{
				ID:          generateID("indeed", native),
				Title:       title,
				Company:     orDefault(company, "Company"),
				Source:      s.Name(),
				URL:         url,
				Description: desc,
				Skills:      extractSkills(title),
				Salary:      salary,
				Posted:      now,
				Remote:      true,
			})
		})
	}

	return dedupeByURL(jobs)
}
