package main

import (
	"fmt"
	"sort"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/leblancfg/deprecations-rss/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	strategies, err := c.selectStrategies(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deprecations.ErrorMessage(err))
		return err
	}
	if len(strategies) == 0 {
		return fmt.Errorf("no providers enabled. Check the providers section of the config")
	}

	orchestrator := &scrape.Orchestrator{
		Strategies:  strategies,
		NewFetcher:  deps.NewFetcher,
		RateLimiter: deps.RateLimiter,
		Concurrency: c.Concurrency,
	}

	result, err := orchestrator.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deprecations.ErrorMessage(err))
		return err
	}
	for provider, failure := range result.Failures {
		fmt.Fprintf(deps.Stderr, "error: %s: %s\n", provider, deprecations.ErrorMessage(failure))
	}

	previous, err := deps.Store.LoadItems()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deprecations.ErrorMessage(err))
		return err
	}

	now := time.Now().UTC()
	changed, unchanged := scrape.NewDetector(previous).Partition(result.Items, now.Format(time.RFC3339))

	if deps.Analyzer != nil {
		for i := range changed {
			summary, err := deps.Analyzer.Summarize(deps.Ctx, &changed[i])
			if err != nil {
				fmt.Fprintf(deps.Stderr, "warning: summarize %s: %s\n", changed[i].FeedID(), deprecations.ErrorMessage(err))
				continue
			}
			changed[i].Summary = summary
		}
	}

	// Records for providers outside this run's scope carry over from the
	// previous cache untouched.
	scraped := make(map[string]bool, len(strategies))
	for _, strategy := range strategies {
		scraped[strategy.Provider()] = true
	}

	items := append(changed, unchanged...)
	for _, item := range previous {
		if !scraped[item.Provider] {
			items = append(items, item)
		}
	}
	sortItems(items)

	fmt.Fprintf(deps.Stdout, "Scraped %d providers: %d records (%d changed, %d unchanged, %d failures)\n",
		len(strategies), len(result.Items), len(changed), len(unchanged), len(result.Failures))

	if c.DryRun {
		return nil
	}

	if err := deps.Store.SaveItems(items); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := deps.Store.WriteFeeds(items, now); err != nil {
		return fmt.Errorf("failed to write feeds: %w", err)
	}

	for provider := range scraped {
		if err := deps.Deprecations.DeleteDeprecationsByProvider(deps.Ctx, provider); err != nil {
			return err
		}
	}
	for i := range items {
		if !scraped[items[i].Provider] {
			continue
		}
		if err := deps.Deprecations.CreateDeprecation(deps.Ctx, &items[i]); err != nil {
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s and feeds to %s\n",
		len(items), deps.Store.DataPath, deps.Store.FeedDir)
	return nil
}

// selectStrategies resolves the providers to scrape: the named ones, or
// every registered provider the config leaves enabled.
func (c *ScrapeCmd) selectStrategies(deps *Dependencies) ([]deprecations.Strategy, error) {
	if len(c.Providers) > 0 {
		strategies := make([]deprecations.Strategy, 0, len(c.Providers))
		for _, name := range c.Providers {
			strategy, err := deps.Registry.Get(name)
			if err != nil {
				return nil, err
			}
			strategies = append(strategies, strategy)
		}
		return strategies, nil
	}

	var strategies []deprecations.Strategy
	for _, strategy := range deps.Registry.List() {
		if deps.Config.Enabled(strategy.Provider()) {
			strategies = append(strategies, strategy)
		}
	}
	return strategies, nil
}

// sortItems orders records by provider, shutdown date, then model ID so
// every output artifact is stable across runs.
func sortItems(items []deprecations.DeprecationItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Provider != items[j].Provider {
			return items[i].Provider < items[j].Provider
		}
		if items[i].ShutdownDate != items[j].ShutdownDate {
			return items[i].ShutdownDate < items[j].ShutdownDate
		}
		return items[i].ModelID < items[j].ModelID
	})
}
