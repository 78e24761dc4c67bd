package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.Strategy = (*AnthropicStrategy)(nil)

// AnthropicStrategy scrapes the Anthropic model deprecations page. The page
// publishes two table shapes: a status overview (Model | State | Deprecated
// | Retired) and per-announcement tables (Retirement Date | Deprecated Model
// | Recommended Replacement) grouped under dated headings.
type AnthropicStrategy struct{}

// NewAnthropicStrategy creates an AnthropicStrategy.
func NewAnthropicStrategy() *AnthropicStrategy {
	return &AnthropicStrategy{}
}

// Provider returns the provider name.
func (s *AnthropicStrategy) Provider() string { return "Anthropic" }

// URL returns the deprecations page URL.
func (s *AnthropicStrategy) URL() string {
	return "https://docs.anthropic.com/en/docs/about-claude/model-deprecations"
}

// ExtractStructured walks heading-delimited sections and parses every table
// each section contains.
func (s *AnthropicStrategy) ExtractStructured(html string) ([]deprecations.DeprecationItem, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	content := findContent(doc, "main", "article")
	if content == nil {
		return nil, nil
	}

	var items []deprecations.DeprecationItem
	for _, sec := range sections(content, 3) {
		sectionDate := isoDateRE.FindString(sec.title)
		for _, node := range sec.nodes {
			if tagName(node) != "table" {
				continue
			}
			items = append(items, s.extractTable(node, sec.title, sectionDate)...)
		}
	}
	return dedupeItems(items), nil
}

func (s *AnthropicStrategy) extractTable(table *goquery.Selection, sectionTitle, sectionDate string) []deprecations.DeprecationItem {
	headers := headerCells(table)
	if len(headers) == 0 {
		return nil
	}

	// Per-announcement tables name the model column "Deprecated Model";
	// there the deprecation date lives in the section heading, not a column.
	announcementTable := strings.Contains(strings.Join(headers, " "), "deprecated model")

	modelIdx := columnIndex(headers, "model", "name")
	if modelIdx < 0 {
		modelIdx = 0
	}
	retireIdx := columnIndex(headers, "retire")
	depIdx := -1
	if !announcementTable {
		depIdx = columnIndex(headers, "deprecat")
	}
	stateIdx := columnIndex(headers, "state", "status")
	replacementIdx := columnIndex(headers, "replac", "recommended")

	var items []deprecations.DeprecationItem
	for _, row := range dataRows(table) {
		cells := rowCells(row)
		if len(cells) < 2 {
			continue
		}

		model := cellAt(cells, modelIdx)
		if model == "" || isoDateRE.MatchString(model) {
			model = firstNonDateCell(cells)
		}
		if model == "" {
			continue
		}

		// "N/A" in the deprecation column marks the model as still active.
		depCell := cellAt(cells, depIdx)
		if strings.EqualFold(strings.TrimSpace(depCell), "n/a") {
			continue
		}
		deprecatedDate := anthropicDate(depCell)
		retiredDate := anthropicDate(cellAt(cells, retireIdx))

		shutdown := firstNonEmpty(retiredDate, deprecatedDate)
		if shutdown == "" {
			continue
		}

		replacement := cellAt(cells, replacementIdx)
		if isCellPlaceholder(strings.ToLower(replacement)) {
			replacement = ""
		}

		items = append(items, deprecations.DeprecationItem{
			Provider:         s.Provider(),
			ModelID:          strings.ToLower(strings.ReplaceAll(model, " ", "-")),
			ModelName:        model,
			AnnouncementDate: firstNonEmpty(deprecatedDate, sectionDate),
			ShutdownDate:     shutdown,
			ReplacementModel: replacement,
			Context:          anthropicContext(model, cellAt(cells, stateIdx), sectionTitle),
			URL:              s.URL() + "#" + strings.ToLower(strings.ReplaceAll(model, " ", "-")),
		})
	}
	return items
}

// anthropicDate normalizes a date cell, handling hedged values like
// "Not sooner than 2025-07-21" by lifting the embedded ISO date.
func anthropicDate(cell string) string {
	if iso := isoDateRE.FindString(cell); iso != "" {
		return deprecations.NormalizeDate(iso)
	}
	return deprecations.NormalizeDate(cell)
}

// anthropicContext builds the justification string from table cells and the
// enclosing section heading.
func anthropicContext(model, state, sectionTitle string) string {
	ctx := model
	if state != "" {
		ctx += " (" + state + ")"
	}
	if sectionTitle != "" {
		ctx += ". " + sectionTitle
	}
	return ctx
}

// firstNonDateCell returns the first cell that is neither empty, a date,
// nor a placeholder. Used when the model column holds a date.
func firstNonDateCell(cells []string) string {
	for _, cell := range cells {
		if cell == "" || isoDateRE.MatchString(cell) || isCellPlaceholder(strings.ToLower(cell)) {
			continue
		}
		return cell
	}
	return ""
}

// ExtractUnstructured returns nothing: the deprecations page is fully
// tabular.
func (s *AnthropicStrategy) ExtractUnstructured(html string) ([]deprecations.DeprecationItem, error) {
	return nil, nil
}
