// Package readability extracts readable text from scraped HTML pages using
// the go-readability port of the Firefox Reader View heuristics.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Ensure Extractor implements deprecations.TextExtractor at compile time.
var _ deprecations.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-readability. It is a lighter alternative to the
// trafilatura extractor for pages where Reader View heuristics suffice.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the page title and main text
// content.
func (e *Extractor) ExtractText(rawHTML string) (string, string, error) {
	if rawHTML == "" {
		return "", "", deprecations.Errorf(deprecations.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", "", deprecations.Errorf(deprecations.EEXTRACTION, "extract text: %v", err)
	}

	return article.Title, article.TextContent, nil
}
