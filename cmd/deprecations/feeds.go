package main

import (
	"fmt"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Run executes the feeds command.
func (c *FeedsCmd) Run(deps *Dependencies) error {
	items, err := deps.Store.LoadItems()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deprecations.ErrorMessage(err))
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached data. Run 'deprecations scrape' first.")
		return nil
	}

	if err := deps.Store.WriteFeeds(items, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to write feeds: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote feed.json, deprecations.json and rss.xml to %s (%d records)\n",
		deps.Store.FeedDir, len(items))
	return nil
}
