package main

import (
	"context"
	"io"
	"log/slog"

	deprecations "github.com/leblancfg/deprecations-rss"
	"github.com/leblancfg/deprecations-rss/fs"
	"github.com/leblancfg/deprecations-rss/goquery"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config       deprecations.RunConfig
	Registry     *goquery.Registry
	Store        *fs.Store
	Deprecations deprecations.DeprecationService
	NewFetcher   func() deprecations.Fetcher
	RateLimiter  deprecations.DomainLimiter
	Analyzer     deprecations.Analyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `short:"C" default:"config.yml" help:"Path to the YAML run configuration"`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Text extractor for unstructured pages"`

	Scrape    ScrapeCmd    `cmd:"" help:"Scrape provider deprecation pages and publish feeds"`
	Feeds     FeedsCmd     `cmd:"" help:"Regenerate feed files from the cached scrape data"`
	List      ListCmd      `cmd:"" help:"List recorded deprecations"`
	Providers ProvidersCmd `cmd:"" help:"List registered provider scrapers"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Providers   []string `arg:"" optional:"" help:"Providers to scrape (default: all enabled)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent scrape limit"`
	Summarize   bool     `short:"s" help:"Generate summaries for new and changed records"`
	DryRun      bool     `short:"n" help:"Scrape and report without writing anything"`
}

// FeedsCmd is the "feeds" subcommand.
type FeedsCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Provider string `short:"p" help:"Filter by provider name"`
	ModelID  string `short:"m" help:"Filter by model ID"`
	Limit    int    `help:"Maximum records to show"`
	Offset   int    `help:"Records to skip"`
}

// ProvidersCmd is the "providers" subcommand.
type ProvidersCmd struct{}
