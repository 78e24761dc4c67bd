package main

import (
	"fmt"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := deprecations.DeprecationFilter{
		Limit:  c.Limit,
		Offset: c.Offset,
	}
	if c.Provider != "" {
		filter.Provider = &c.Provider
	}
	if c.ModelID != "" {
		filter.ModelID = &c.ModelID
	}

	items, err := deps.Deprecations.FindDeprecations(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deprecations.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No deprecations recorded. Run 'deprecations scrape' first.")
		return nil
	}

	for _, item := range items {
		shutdown := item.ShutdownDate
		if shutdown == "" {
			shutdown = "(unscheduled)"
		}
		name := item.ModelID
		if name == "" {
			name = item.ModelName
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s", item.Provider, name, shutdown)
		if item.ReplacementModel != "" {
			fmt.Fprintf(deps.Stdout, "  -> %s", item.ReplacementModel)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
