package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.Strategy = (*VertexStrategy)(nil)

// VertexStrategy scrapes the Google Vertex AI model lifecycle page.
// Sections are relevant when their heading mentions lifecycle vocabulary;
// within a section, models surface through tables, lists, and labeled date
// phrases in running text.
type VertexStrategy struct{}

// NewVertexStrategy creates a VertexStrategy.
func NewVertexStrategy() *VertexStrategy {
	return &VertexStrategy{}
}

// Provider returns the provider name.
func (s *VertexStrategy) Provider() string { return "Google Vertex AI" }

// URL returns the model lifecycle page URL.
func (s *VertexStrategy) URL() string {
	return "https://cloud.google.com/vertex-ai/generative-ai/docs/learn/models"
}

// labeledDatePatterns pull a date phrase out of lifecycle prose, e.g.
// "deprecated: June 24, 2025" or "available until January 2026". The
// capture runs to the end of the sentence and is handed to the normalizer.
var labeledDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)deprecated[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)sunset[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)retire[sd][:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)end[s]?[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)discontinu(?:ed|es)[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)available until[:\s]+([^.]+)`),
	regexp.MustCompile(`(?i)support ends?[:\s]+([^.]+)`),
}

// sectionTitleNoise is stripped from a section title before it is used as a
// fallback model name.
var sectionTitleNoise = regexp.MustCompile(`(?i)\b(?:lifecycle|deprecations?|availability)\b`)

// ExtractStructured walks lifecycle-titled sections, emitting one item per
// model found in tables and lists, with a section-title fallback when the
// section carries dates but names no individual model.
func (s *VertexStrategy) ExtractStructured(html string) ([]deprecations.DeprecationItem, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	content := findContent(doc, "article", "div.devsite-article-body")
	if content == nil {
		return nil, nil
	}

	var items []deprecations.DeprecationItem
	for _, sec := range sections(content, 4) {
		if !containsAny(strings.ToLower(sec.title), lifecycleHeadingKeywords) {
			continue
		}
		items = append(items, s.extractSection(sec)...)
	}

	return items, nil
}

// extractSection runs the sequential per-section scan: free text first to
// establish the section's dates and context, then tables and lists for
// individual models.
func (s *VertexStrategy) extractSection(sec section) []deprecations.DeprecationItem {
	var items []deprecations.DeprecationItem
	var contextParts []string
	deprecationDate := ""
	shutdownDate := ""
	sectionURL := s.URL() + "#" + sec.anchor

	for _, node := range sec.nodes {
		text := nodeText(node, "")

		for _, re := range labeledDatePatterns {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			if parsed := deprecations.NormalizeDate(m[1]); parsed != "" {
				if deprecationDate == "" {
					deprecationDate = parsed
				}
				if shutdownDate == "" {
					shutdownDate = parsed
				}
			}
		}

		if text != "" {
			contextParts = append(contextParts, text)
		}

		switch tagName(node) {
		case "table":
			items = append(items, s.extractTable(node, contextParts, deprecationDate, shutdownDate, sectionURL)...)
		case "ul", "ol":
			items = append(items, s.extractList(node, deprecationDate, shutdownDate, sectionURL)...)
		}
	}

	// Section-level fallback: dates but no identifiable model. Skip when an
	// emitted item already consumed this section's context.
	if deprecationDate == "" && shutdownDate == "" {
		return items
	}
	joined := strings.Join(contextParts, " ")
	for _, item := range items {
		if strings.Contains(item.Context, joined) {
			return items
		}
	}

	name := strings.Join(strings.Fields(sectionTitleNoise.ReplaceAllString(sec.title, "")), " ")
	if name == "" {
		return items
	}
	return append(items, deprecations.DeprecationItem{
		Provider:         s.Provider(),
		ModelID:          strings.ToLower(strings.ReplaceAll(name, " ", "-")),
		ModelName:        name,
		AnnouncementDate: deprecationDate,
		ShutdownDate:     shutdownDate,
		Context:          strings.TrimSpace(name + ". " + joined),
		URL:              sectionURL,
	})
}

// extractTable scans a lifecycle table: column roles resolve by substring
// against lowercased headers, and a row is a candidate only when its status
// or date cell carries a lifecycle keyword.
func (s *VertexStrategy) extractTable(table *goquery.Selection, contextParts []string, deprecationDate, shutdownDate, sectionURL string) []deprecations.DeprecationItem {
	headers := headerCells(table)
	if len(headers) == 0 {
		return nil
	}

	modelIdx := columnIndex(headers, "model", "name")
	statusIdx := columnIndex(headers, "status", "availab", "lifecycle")
	dateIdx := columnIndex(headers, "date", "until", "end")
	if modelIdx < 0 {
		modelIdx = 0
	}

	var items []deprecations.DeprecationItem
	for _, row := range dataRows(table) {
		cells := rowCells(row)
		model := cellAt(cells, modelIdx)
		if model == "" {
			continue
		}
		status := cellAt(cells, statusIdx)
		date := cellAt(cells, dateIdx)

		if !containsAny(strings.ToLower(status+date), lifecycleRowKeywords) {
			continue
		}

		rowShutdown := deprecations.NormalizeDate(date)
		if rowShutdown == "" {
			rowShutdown = shutdownDate
		}

		context := model
		if status != "" {
			context += " (" + status + ")"
		}
		if joined := strings.Join(contextParts, " "); joined != "" {
			context += ". " + joined
		}

		items = append(items, deprecations.DeprecationItem{
			Provider:         s.Provider(),
			ModelID:          strings.ToLower(strings.ReplaceAll(model, " ", "-")),
			ModelName:        model,
			AnnouncementDate: deprecationDate,
			ShutdownDate:     rowShutdown,
			Context:          context,
			URL:              sectionURL,
		})
	}
	return items
}

// extractList scans list items with the model-identifier cascade; an item
// is a candidate only when it also mentions lifecycle vocabulary.
func (s *VertexStrategy) extractList(list *goquery.Selection, deprecationDate, shutdownDate, sectionURL string) []deprecations.DeprecationItem {
	var items []deprecations.DeprecationItem
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := nodeText(li, "")
		if text == "" {
			return
		}

		model := firstModelMatch(text)
		if model == "" {
			return
		}
		if !containsAny(strings.ToLower(text), lifecycleRowKeywords) {
			return
		}

		itemDate := shutdownDate
		if m := anyDateRE.FindString(text); m != "" {
			if parsed := deprecations.NormalizeDate(m); parsed != "" {
				itemDate = parsed
			}
		}

		items = append(items, deprecations.DeprecationItem{
			Provider:         s.Provider(),
			ModelID:          strings.ToLower(strings.ReplaceAll(model, " ", "-")),
			ModelName:        model,
			AnnouncementDate: deprecationDate,
			ShutdownDate:     itemDate,
			ReplacementModel: findReplacement(text),
			Context:          text,
			URL:              sectionURL,
		})
	})
	return items
}

// ExtractUnstructured returns nothing: the lifecycle page is fully
// structured.
func (s *VertexStrategy) ExtractUnstructured(html string) ([]deprecations.DeprecationItem, error) {
	return nil, nil
}
