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

const wwrCap = 30

// WeWorkRemotely scrapes the public listing pages. The site has no stable
// API, so selectors follow the current markup and the whole adapter degrades
// to empty when it changes.
type WeWorkRemotely struct {
	BaseURL string
	client  *http.Client
}

func NewWeWorkRemotely() *WeWorkRemotely {
	return &WeWorkRemotely{
		BaseURL: "https://weworkremotely.com",
		client:  newHTTPClient(),
	}
}

func (s *WeWorkRemotely) Name() string { return "WeWorkRemotely" }

func (s *WeWorkRemotely) Scrape(ctx context.Context, keywords []string) []domain.Job {
	pages := []string{
		"/remote-jobs/search?term=ai",
		"/remote-jobs/search?term=automation",
		"/remote-jobs/search?term=content",
	}

	now := time.Now()
	var jobs []domain.Job
	for _, page := range pages {
		body, err := fetch(ctx, s.client, s.BaseURL+page, "text/html")
		if err != nil {
			logger.Log.Warn("weworkremotely page fetch failed", "page", page, "error", err)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
		if err != nil {
			logger.Log.Warn("weworkremotely parse failed", "page", page, "error", err)
			continue
		}

		doc.Find("li.feature, li.new-listing").Each(func(_ int, sel *goquery.Selection) {
			href, ok := sel.Find("a").First().Attr("href")
			if !ok || strings.Contains(href, "categories") {
				return
			}

			title := strings.TrimSpace(sel.Find(".title").Text())
			company := strings.TrimSpace(sel.Find(".company").First().Text())
			region := strings.TrimSpace(sel.Find(".region").Text())
			if title == "" {
				return
			}

			if !matchesKeywords(title+" "+company, keywords) {
				return
			}

			url := href
			if !strings.HasPrefix(href, "http") {
				url = s.BaseURL + href
			}

			desc := title + " at " + company
			if region != "" {
				desc += ". " + region
			}

			jobs = append(jobs, domain.Job{
				ID:          generateID("wwr", href),
				Title:       title,
				Company:     company,
				Source:      s.Name(),
				URL:         url,
				Description: desc,
				Skills:      extractSkills(title + " " + company),
				Posted:      now,
				Remote:      true,
			})
		})
	}

	jobs = dedupeByURL(jobs)
	if len(jobs) > wwrCap {
		jobs = jobs[:wwrCap]
	}
	return jobs
}
