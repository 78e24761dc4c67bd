// Package scrape provides the scraper runtime: the fetch + extract harness
// each provider strategy plugs into, the batch orchestrator that runs
// providers concurrently, and change detection between runs.
package scrape

import (
	"context"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Scraper runs one provider: fetch the page, run both extraction passes,
// and return the combined records. Each Scraper owns its fetcher and has no
// shared mutable state, so scrapers for different providers may run
// concurrently.
type Scraper struct {
	Strategy deprecations.Strategy
	Fetcher  deprecations.Fetcher

	// Now stamps ScrapedAt on emitted items. Defaults to time.Now.
	Now func() time.Time
}

// Run fetches the provider page and extracts deprecation records. Fetch
// errors pass through unchanged; any failure inside the strategy surfaces
// as EEXTRACTION. Items that fail validation are dropped, not fatal.
func (s *Scraper) Run(ctx context.Context) ([]deprecations.DeprecationItem, error) {
	html, err := s.Fetcher.Fetch(ctx, s.Strategy.URL())
	if err != nil {
		return nil, err
	}

	structured, err := s.Strategy.ExtractStructured(html)
	if err != nil {
		return nil, deprecations.Errorf(deprecations.EEXTRACTION, "%s structured extraction: %v", s.Strategy.Provider(), err)
	}
	unstructured, err := s.Strategy.ExtractUnstructured(html)
	if err != nil {
		return nil, deprecations.Errorf(deprecations.EEXTRACTION, "%s unstructured extraction: %v", s.Strategy.Provider(), err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	scrapedAt := now().UTC().Format(time.RFC3339)

	seen := make(map[string]bool)
	items := make([]deprecations.DeprecationItem, 0, len(structured)+len(unstructured))
	for _, item := range append(structured, unstructured...) {
		if err := item.Validate(); err != nil {
			continue
		}
		// The unstructured pass may re-derive models the structured pass
		// already found.
		key := item.Provider + "|" + item.ModelID
		if seen[key] {
			continue
		}
		seen[key] = true

		item.ScrapedAt = scrapedAt
		item.ContentHash = item.Hash()
		items = append(items, item)
	}
	return items, nil
}
