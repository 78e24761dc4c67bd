// Package trafilatura extracts readable text from scraped HTML pages.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Ensure Extractor implements deprecations.TextExtractor at compile time.
var _ deprecations.TextExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the main text out of provider
// pages whose markup resists structured parsing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the page title and main text
// content with boilerplate (navigation, sidebars, footers) removed.
func (e *Extractor) ExtractText(rawHTML string) (string, string, error) {
	if rawHTML == "" {
		return "", "", deprecations.Errorf(deprecations.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", "", deprecations.Errorf(deprecations.EEXTRACTION, "extract text: %v", err)
	}

	return result.Metadata.Title, result.ContentText, nil
}
