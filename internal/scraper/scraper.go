package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/obsidianstack/wlxstat/internal/config"
	"github.com/obsidianstack/wlxstat/internal/device"
	"github.com/obsidianstack/wlxstat/pkg/types"
)

// Result is the outcome of one successful scrape.
type Result struct {
	Address   string
	Model     device.Model
	URL       string
	ScrapedAt time.Time
	Metrics   types.Metrics
}

// Scraper runs the resolve, fetch and extract pipeline.
type Scraper struct {
	fetcher Fetcher
	locator Locator          // nil: TableLocator using the profile's heading
	now     func() time.Time // injectable for deterministic tests
}

// New returns a Scraper that logs in with creds.
func New(creds config.Credentials) *Scraper {
	return NewWithFetcher(NewHTTPFetcher(creds))
}

// NewWithFetcher returns a Scraper that retrieves pages through f.
func NewWithFetcher(f Fetcher) *Scraper {
	return &Scraper{fetcher: f, now: time.Now}
}

// Scrape resolves model, fetches the status page of the device at addr and
// extracts the profile's metrics. An unsupported model returns an error
// before the fetcher is called.
func (s *Scraper) Scrape(ctx context.Context, addr, model string) (*Result, error) {
	url, profile, err := device.Resolve(addr, model)
	if err != nil {
		return nil, fmt.Errorf("scraper: %w", err)
	}
	slog.Debug("scraper: resolved target", "model", profile.Model, "url", url)

	page, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("scraper: fetch %s: %w", url, err)
	}

	doc, err := ParseDocument(page)
	if err != nil {
		return nil, fmt.Errorf("scraper: %s: %w", url, err)
	}

	loc := s.locator
	if loc == nil {
		loc = TableLocator{Heading: profile.Heading}
	}
	metrics, err := Extract(doc, profile, loc)
	if err != nil {
		return nil, fmt.Errorf("scraper: extract %s: %w", profile.Model, err)
	}

	return &Result{
		Address:   addr,
		Model:     profile.Model,
		URL:       url,
		ScrapedAt: s.now().UTC(),
		Metrics:   metrics,
	}, nil
}
