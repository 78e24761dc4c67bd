package scrape

import (
	"context"
	"net/url"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
	"golang.org/x/sync/errgroup"
)

// Orchestrator runs a batch of provider scrapers concurrently, one task per
// provider. Provider failures are isolated: a failed scrape contributes zero
// records and an entry in Result.Failures, never an aborted batch.
type Orchestrator struct {
	Strategies []deprecations.Strategy

	// NewFetcher builds one fetcher per provider so no client state is
	// shared between concurrently running scrapers.
	NewFetcher func() deprecations.Fetcher

	RateLimiter deprecations.DomainLimiter
	Concurrency int
	Now         func() time.Time
}

// Result aggregates a batch run. Items preserve strategy order regardless
// of completion order.
type Result struct {
	Items    []deprecations.DeprecationItem
	Failures map[string]error
}

// Run scrapes every strategy and aggregates the outcome.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	concurrency := o.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	perProvider := make([][]deprecations.DeprecationItem, len(o.Strategies))
	errs := make([]error, len(o.Strategies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, strategy := range o.Strategies {
		g.Go(func() error {
			if o.RateLimiter != nil {
				if err := o.RateLimiter.Wait(gctx, domainOf(strategy.URL())); err != nil {
					errs[i] = err
					return nil
				}
			}

			fetcher := o.NewFetcher()
			defer fetcher.Close()

			scraper := &Scraper{Strategy: strategy, Fetcher: fetcher, Now: o.Now}
			items, err := scraper.Run(gctx)
			if err != nil {
				errs[i] = err
				return nil
			}
			perProvider[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Failures: make(map[string]error)}
	for i, strategy := range o.Strategies {
		if errs[i] != nil {
			result.Failures[strategy.Provider()] = errs[i]
			continue
		}
		result.Items = append(result.Items, perProvider[i]...)
	}
	return result, nil
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
