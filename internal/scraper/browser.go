package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pfrederiksen/vnl-stats/internal/logger"
)

// BrowserFetcher renders pages in a headless browser before returning their HTML
type BrowserFetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
}

// NewBrowser launches a headless browser. Close must be called to release it.
func NewBrowser(timeout time.Duration) (*BrowserFetcher, error) {
	l := launcher.New().Headless(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &BrowserFetcher{
		browser:  browser,
		launcher: l,
		timeout:  timeout,
	}, nil
}

// Fetch loads url, waits for the load event and returns the rendered document
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.browser.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for page load: %w", err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("reading rendered page: %w", err)
	}

	elapsed := time.Since(start)
	logger.Debug("Rendered page", logger.Fields{
		"url":      url,
		"bytes":    len(html),
		"duration": elapsed.String(),
	})
	logger.IncrCounter("pages.rendered")
	logger.RecordTiming("render", elapsed)

	return []byte(html), nil
}

// Close shuts down the browser and its launcher
func (f *BrowserFetcher) Close() error {
	var err error
	if f.browser != nil {
		err = f.browser.Close()
	}
	if f.launcher != nil {
		f.launcher.Kill()
	}
	return err
}
