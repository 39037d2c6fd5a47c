package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
)

// UserAgent identifies the scraper to the site
const UserAgent = "vnl-stats/1.0 (github.com/pfrederiksen/vnl-stats)"

// HTTPFetcher fetches pages with plain HTTP GET requests
type HTTPFetcher struct {
	client *resty.Client
}

// New creates an HTTPFetcher with the default user agent and no request timeout
func New() *HTTPFetcher {
	return NewWithOptions(UserAgent, 0)
}

// NewWithOptions creates an HTTPFetcher with a custom user agent and timeout.
// A zero timeout leaves the transport default in place.
func NewWithOptions(userAgent string, timeout time.Duration) *HTTPFetcher {
	client := resty.New()
	if userAgent == "" {
		userAgent = UserAgent
	}
	client.SetHeader("User-Agent", userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPFetcher{client: client}
}

// Fetch returns the body of url. Any status other than 200 is an error.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	elapsed := time.Since(start)
	logger.Debug("Fetched page", logger.Fields{
		"url":      url,
		"bytes":    len(resp.Body()),
		"duration": elapsed.String(),
	})
	logger.IncrCounter("pages.fetched")
	logger.RecordTiming("fetch", elapsed)

	return resp.Body(), nil
}
