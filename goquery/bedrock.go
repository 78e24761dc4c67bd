package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.Strategy = (*BedrockStrategy)(nil)

// BedrockStrategy scrapes the AWS Bedrock model lifecycle page. Relevance
// is driven by table structure rather than headings: lifecycle tables carry
// legacy/EOL columns and one model per row.
type BedrockStrategy struct{}

// NewBedrockStrategy creates a BedrockStrategy.
func NewBedrockStrategy() *BedrockStrategy {
	return &BedrockStrategy{}
}

// Provider returns the provider name.
func (s *BedrockStrategy) Provider() string { return "AWS Bedrock" }

// URL returns the lifecycle page URL.
func (s *BedrockStrategy) URL() string {
	return "https://docs.aws.amazon.com/bedrock/latest/userguide/model-lifecycle.html"
}

// lifecycleTableKeywords identify a table as a lifecycle table from its
// joined header text.
var lifecycleTableKeywords = []string{"legacy", "eol", "end of life", "deprecat", "status"}

// ExtractStructured scans every lifecycle table in the main content region
// and emits one item per deprecation-candidate row.
func (s *BedrockStrategy) ExtractStructured(html string) ([]deprecations.DeprecationItem, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	content := findContent(doc, "div#main-content", "main")
	if content == nil {
		return nil, nil
	}

	var items []deprecations.DeprecationItem
	content.Find("table").Each(func(_ int, table *goquery.Selection) {
		items = append(items, s.extractTable(table)...)
	})
	return items, nil
}

func (s *BedrockStrategy) extractTable(table *goquery.Selection) []deprecations.DeprecationItem {
	headers := headerCells(table)
	if len(headers) == 0 || !containsAny(strings.Join(headers, " "), lifecycleTableKeywords) {
		return nil
	}

	modelIdx := columnIndex(headers, "model", "name")
	legacyIdx := columnIndex(headers, "legacy", "announc")
	eolIdx := columnIndex(headers, "eol", "end")
	replacementIdx := columnIndex(headers, "replac", "migration")
	statusIdx := columnIndex(headers, "status")
	if modelIdx < 0 {
		modelIdx = 0
	}

	var items []deprecations.DeprecationItem
	for _, row := range dataRows(table) {
		cells := rowCells(row)
		model := cellAt(cells, modelIdx)
		if model == "" || strings.ToLower(model) == "model" || strings.ToLower(model) == "name" {
			continue
		}

		// A row is a candidate only when its status or date cells carry
		// lifecycle vocabulary.
		statusAndDates := strings.ToLower(cellAt(cells, statusIdx) + " " + cellAt(cells, legacyIdx) + " " + cellAt(cells, eolIdx))
		if !containsAny(statusAndDates, lifecycleRowKeywords) && !strings.ContainsAny(statusAndDates, "0123456789") {
			continue
		}

		legacyDate := deprecations.NormalizeDate(cellAt(cells, legacyIdx))
		eolDate := deprecations.NormalizeDate(cellAt(cells, eolIdx))
		if legacyDate == "" && eolDate == "" {
			continue
		}

		replacement := cellAt(cells, replacementIdx)
		if isCellPlaceholder(strings.ToLower(replacement)) {
			replacement = ""
		}
		if replacement == "" {
			replacement = findReplacement(strings.Join(cells, " "))
		}

		items = append(items, deprecations.DeprecationItem{
			Provider:         s.Provider(),
			ModelID:          strings.ToLower(strings.ReplaceAll(model, " ", "-")),
			ModelName:        model,
			AnnouncementDate: legacyDate,
			ShutdownDate:     firstNonEmpty(eolDate, legacyDate),
			ReplacementModel: replacement,
			Context:          bedrockContext(model, legacyDate, eolDate, replacement),
			URL:              s.URL(),
		})
	}
	return items
}

// bedrockContext builds a human-readable justification from table cells,
// since the table itself carries no prose.
func bedrockContext(model, legacyDate, eolDate, replacement string) string {
	var b strings.Builder
	b.WriteString("Model " + model)
	switch {
	case legacyDate != "" && eolDate != "":
		b.WriteString(" entered legacy status on " + legacyDate +
			" and will reach end-of-life on " + eolDate + ".")
	case legacyDate != "":
		b.WriteString(" entered legacy status on " + legacyDate + ".")
	case eolDate != "":
		b.WriteString(" will reach end-of-life on " + eolDate + ".")
	}
	if replacement != "" {
		b.WriteString(" Recommended replacement: " + replacement + ".")
	}
	return b.String()
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// ExtractUnstructured returns nothing: the lifecycle page is fully
// structured.
func (s *BedrockStrategy) ExtractUnstructured(html string) ([]deprecations.DeprecationItem, error) {
	return nil, nil
}
