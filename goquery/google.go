package goquery

import (
	"regexp"
	"strings"

	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.Strategy = (*GoogleStrategy)(nil)

// GoogleStrategy scrapes the Google AI (Gemini API) changelog. The page is
// organized as date-headed sections; a section is relevant only when its
// heading carries a date expression, which becomes the announcement date
// for everything the section mentions.
type GoogleStrategy struct{}

// NewGoogleStrategy creates a GoogleStrategy.
func NewGoogleStrategy() *GoogleStrategy {
	return &GoogleStrategy{}
}

// Provider returns the provider name.
func (s *GoogleStrategy) Provider() string { return "Google" }

// URL returns the changelog page URL.
func (s *GoogleStrategy) URL() string {
	return "https://ai.google.dev/gemini-api/docs/changelog"
}

// googleGeneralPatterns recover spelled-out model references ("Gemini 1.0
// Pro Vision") when no hyphenated identifier appears in the text. Longer
// patterns first so "pro vision" is not swallowed by "pro".
var googleGeneralPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)gemini\s+1\.0\s+pro\s+vision`),
	regexp.MustCompile(`(?i)gemini\s+1\.0\s+pro`),
	regexp.MustCompile(`(?i)gemini\s+1\.5\s+(?:pro|flash)`),
}

// ExtractStructured walks date-headed changelog sections and emits one item
// per model identifier mentioned in deprecation-flavored text.
func (s *GoogleStrategy) ExtractStructured(html string) ([]deprecations.DeprecationItem, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	content := findContent(doc, "article", "div.devsite-article-body")
	if content == nil {
		return nil, nil
	}

	var items []deprecations.DeprecationItem
	for _, sec := range sections(content, 3) {
		sectionDate := deprecations.NormalizeDate(humanDateRE.FindString(sec.title))
		if sectionDate == "" {
			continue
		}
		anchor := strings.ReplaceAll(sectionDate, "-", "")

		for _, node := range sec.nodes {
			text := nodeText(node, "")
			if text == "" {
				continue
			}
			lower := strings.ToLower(text)
			if !containsAny(lower, changelogKeywords) {
				continue
			}

			// An in-text date is adopted as the shutdown date only when
			// strictly later than the section date; an equal or earlier
			// date leaves the shutdown date empty.
			shutdown := ""
			if m := humanDateRE.FindString(text); m != "" {
				if parsed := deprecations.NormalizeDate(m); parsed > sectionDate {
					shutdown = parsed
				}
			}

			replacement := findReplacement(lower)

			models := uniqueMatches(geminiModelRE, text)
			if len(models) > 0 {
				for _, model := range models {
					items = append(items, deprecations.DeprecationItem{
						Provider:         s.Provider(),
						ModelID:          strings.ToLower(model),
						ModelName:        model,
						AnnouncementDate: sectionDate,
						ShutdownDate:     shutdown,
						ReplacementModel: replacement,
						Context:          text,
						URL:              s.URL() + "#" + anchor,
					})
				}
				continue
			}

			// No hyphenated identifier; try spelled-out model references.
			for _, re := range googleGeneralPatterns {
				m := re.FindString(text)
				if m == "" {
					continue
				}
				items = append(items, deprecations.DeprecationItem{
					Provider:         s.Provider(),
					ModelID:          strings.ToLower(strings.ReplaceAll(m, " ", "-")),
					ModelName:        m,
					AnnouncementDate: sectionDate,
					ShutdownDate:     shutdown,
					ReplacementModel: replacement,
					Context:          text,
					URL:              s.URL() + "#" + anchor,
				})
				break
			}
		}
	}

	return items, nil
}

// ExtractUnstructured returns nothing: the changelog is fully structured.
func (s *GoogleStrategy) ExtractUnstructured(html string) ([]deprecations.DeprecationItem, error) {
	return nil, nil
}
