package slog

import (
	"context"
	"log/slog"
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Ensure LoggingAnalyzer implements deprecations.Analyzer.
var _ deprecations.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with per-call logging.
type LoggingAnalyzer struct {
	next   deprecations.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next deprecations.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Summarize delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Summarize(ctx context.Context, item *deprecations.DeprecationItem) (summary string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("summarize",
			"provider", item.Provider,
			"model_id", item.ModelID,
			"chars", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Summarize(ctx, item)
}
