package scraper

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	httpTimeout = 15 * time.Second
	userAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// newHTTPClient builds the shared client used by all network adapters.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: httpTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
			ForceAttemptHTTP2:   true,
		},
	}
}

// fetch GETs the URL with a browser-like user agent and returns the body.
// Non-200 responses are returned as an httpError so callers can log the
// status without parsing.
func fetch(ctx context.Context, client *http.Client, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httpError{URL: url, Status: resp.StatusCode}
	}

	return io.ReadAll(resp.Body)
}

type httpError struct {
	URL    string
	Status int
}

func (e *httpError) Error() string {
	return "unexpected status " + http.StatusText(e.Status) + " from " + e.URL
}
