package goquery

import (
	"regexp"
	"strings"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// humanDateRE matches "November 4, 2025" style date expressions, including
// ordinal day suffixes, the form providers use in headings and running text.
var humanDateRE = regexp.MustCompile(`[A-Za-z]+ \d{1,2}(?:st|nd|rd|th)?,? \d{4}`)

// isoDateRE matches a strict calendar date inside larger text.
var isoDateRE = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// anyDateRE matches either date form for "collect all dates" scans.
var anyDateRE = regexp.MustCompile(`[A-Za-z]+ \d{1,2}(?:st|nd|rd|th)?,? \d{4}|\d{4}-\d{2}-\d{2}`)

// geminiModelRE matches Gemini model identifiers in running text.
var geminiModelRE = regexp.MustCompile(`(?i)gemini-[a-z0-9.\-]+`)

// modelIDPatterns is the ordered model-identifier cascade used on list
// items and free text: the first pattern that matches wins. Extend by
// adding rows, not conditionals.
var modelIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)text-[\w]+-\d+`),
	regexp.MustCompile(`(?i)gpt-[\w.\-]+`),
	regexp.MustCompile(`(?i)palm-[\w.\-]+`),
	regexp.MustCompile(`(?i)gemini-[\w.\-]+`),
	regexp.MustCompile(`(?i)claude-[\w.\-]+`),
	regexp.MustCompile(`[\w\-]+@\d+`),
}

// firstModelMatch applies the cascade and returns the verbatim match, or "".
func firstModelMatch(text string) string {
	for _, re := range modelIDPatterns {
		if m := re.FindString(text); m != "" {
			return trimModelToken(m)
		}
	}
	return ""
}

// trimModelToken strips sentence punctuation the identifier character
// classes drag in ("gemini-1.0-pro." at end of sentence).
func trimModelToken(s string) string {
	return strings.TrimRight(s, ".,;-")
}

// replacementPatterns is the ordered replacement-phrase cascade; the first
// pattern that matches wins and its capture is the replacement model.
var replacementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)redirect(?:ing)?\s+to\s+([\w.\-@]+)`),
	regexp.MustCompile(`(?i)use\s+([\w.\-@]+-[\w.\-@]+)`),
	regexp.MustCompile(`(?i)replaced\s+(?:by|with)\s+([\w.\-@]+)`),
	regexp.MustCompile(`(?i)(?:migrate to|recommended replacement:?|replacement:?)\s*([A-Za-z0-9.\-@ ]+)`),
}

// findReplacement applies the replacement cascade to free text, returning
// "" when no phrase matches.
func findReplacement(text string) string {
	for _, re := range replacementPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return trimReplacement(m[1])
		}
	}
	return ""
}

func trimReplacement(s string) string {
	// Pattern captures over spaces can drag in trailing prose; cut at
	// sentence-ish boundaries.
	for i, r := range s {
		if r == ',' || r == ';' {
			s = s[:i]
			break
		}
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '.') {
		s = s[:len(s)-1]
	}
	return s
}

// cellPlaceholders are table-cell values that mean "no replacement".
var cellPlaceholders = map[string]bool{
	"—": true, "-": true, "–": true, "n/a": true, "na": true,
	"tbd": true, "none": true,
}

// isCellPlaceholder reports whether a lowercased cell value is a
// no-data marker.
func isCellPlaceholder(cell string) bool {
	return cellPlaceholders[cell]
}

// changelogKeywords mark a changelog paragraph as deprecation-relevant.
var changelogKeywords = []string{
	"deprecated", "deprecation", "no longer supported",
	"removed", "will be deprecated", "retirement",
}

// lifecycleHeadingKeywords mark a heading as lifecycle-relevant.
var lifecycleHeadingKeywords = []string{
	"lifecycle", "deprecat", "availab", "sunset", "retire", "discontinu",
}

// lifecycleRowKeywords mark a table row's status/date cells as
// deprecation candidates.
var lifecycleRowKeywords = []string{
	"deprecat", "sunset", "retire", "discontinu", "end", "legacy", "eol",
}

// uniqueMatches returns re's matches in s, in order, each verbatim match at
// most once. Preserving first-occurrence order keeps extraction idempotent.
func uniqueMatches(re *regexp.Regexp, s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range re.FindAllString(s, -1) {
		m = trimModelToken(m)
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// dedupeItems suppresses repeat (provider, model_id) records while
// preserving first-occurrence order.
func dedupeItems(items []deprecations.DeprecationItem) []deprecations.DeprecationItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		key := item.Provider + "|" + item.ModelID
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
