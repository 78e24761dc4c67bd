package mock

import (
	"context"

	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of deprecations.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (title, text string, err error)
}

func (e *TextExtractor) ExtractText(html string) (string, string, error) {
	return e.ExtractTextFn(html)
}

var _ deprecations.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of deprecations.Analyzer.
type Analyzer struct {
	SummarizeFn func(ctx context.Context, item *deprecations.DeprecationItem) (string, error)
}

func (a *Analyzer) Summarize(ctx context.Context, item *deprecations.DeprecationItem) (string, error) {
	return a.SummarizeFn(ctx, item)
}
