package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.Strategy = (*OpenAIStrategy)(nil)

// OpenAIStrategy scrapes the OpenAI deprecations page. Sections are keyed by
// headings of the form "2025-04-28: o1-preview and o1-mini", each followed by
// explanatory prose and usually a shutdown table. The page is occasionally
// served through bot protection that mangles markup, so a text-only
// unstructured pass backs up the structured one.
type OpenAIStrategy struct {
	extractor deprecations.TextExtractor
}

// NewOpenAIStrategy creates an OpenAIStrategy. The extractor powers the
// unstructured pass and may be nil to fall back to plain tag stripping.
func NewOpenAIStrategy(extractor deprecations.TextExtractor) *OpenAIStrategy {
	return &OpenAIStrategy{extractor: extractor}
}

// Provider returns the provider name.
func (s *OpenAIStrategy) Provider() string { return "OpenAI" }

// URL returns the deprecations page URL.
func (s *OpenAIStrategy) URL() string {
	return "https://platform.openai.com/docs/deprecations"
}

// openaiHeadingRE matches OpenAI's dated section headings,
// "2025-04-28: o1-preview and o1-mini".
var openaiHeadingRE = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}):\s*(.+)$`)

// openaiMentionRE finds model identifiers followed by deprecation verbs in
// running text, e.g. "gpt-4-32k will be deprecated".
var openaiMentionRE = regexp.MustCompile(`(?i)([\w.\-]+(?:-\d+k?|-preview|-turbo|-vision|-instruct|-\d{4}(?:-\d{2}-\d{2})?))\s+(?:will be|is|are)\s+(?:deprecated|retired|shut down|removed)`)

// openaiShutdownRE finds an explicit shutdown date in running text.
var openaiShutdownRE = regexp.MustCompile(`(?i)(?:on|by|before)\s+(\w+ \d{1,2},? \d{4}|\d{4}-\d{2}-\d{2})`)

// ExtractStructured walks dated sections and parses the shutdown table each
// one carries; sections without a table fall back to text scanning.
func (s *OpenAIStrategy) ExtractStructured(html string) ([]deprecations.DeprecationItem, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	content := findContent(doc, "main", "article", "div.docs-body", "div.content")
	if content == nil {
		return nil, nil
	}

	var items []deprecations.DeprecationItem
	for _, sec := range sections(content, 4) {
		m := openaiHeadingRE.FindStringSubmatch(sec.title)
		if m == nil {
			continue
		}
		announcement, sectionTitle := m[1], m[2]

		url := s.URL() + "#" + firstNonEmpty(sec.anchor, announcement)

		// Prose between the heading and the table is the section context.
		var contextParts []string
		var table *goquery.Selection
		for _, node := range sec.nodes {
			if tagName(node) == "table" {
				table = node
				break
			}
			if text := nodeText(node, ""); text != "" {
				contextParts = append(contextParts, text)
			}
		}
		context := strings.Join(contextParts, " ")

		if table != nil {
			items = append(items, s.extractTable(table, context, announcement, url)...)
			continue
		}
		items = append(items, s.extractText(context, sectionTitle, announcement, url)...)
	}
	return dedupeItems(items), nil
}

func (s *OpenAIStrategy) extractTable(table *goquery.Selection, context, announcement, url string) []deprecations.DeprecationItem {
	headers := headerCells(table)
	shutdownIdx := columnIndex(headers, "shutdown", "eol")
	modelIdx := columnIndex(headers, "model", "system")
	replacementIdx := columnIndex(headers, "replacement", "recommended")

	// Unlabeled tables follow the page's usual column order.
	if shutdownIdx < 0 && modelIdx < 0 && len(headers) >= 3 {
		shutdownIdx, modelIdx, replacementIdx = 0, 1, 2
	}
	if modelIdx < 0 {
		return nil
	}

	var items []deprecations.DeprecationItem
	for _, row := range dataRows(table) {
		cells := rowCells(row)
		modelCell := cellAt(cells, modelIdx)
		if modelCell == "" || strings.EqualFold(modelCell, "model") || strings.EqualFold(modelCell, "system") {
			continue
		}

		shutdown := announcement
		if parsed := deprecations.NormalizeDate(cellAt(cells, shutdownIdx)); parsed != "" {
			shutdown = parsed
		}

		replacement := cellAt(cells, replacementIdx)
		if isCellPlaceholder(strings.ToLower(replacement)) {
			replacement = ""
		}

		// "o1-preview and o1-mini" in one cell fans out to two records.
		for _, model := range splitModelCell(modelCell) {
			items = append(items, deprecations.DeprecationItem{
				Provider:         s.Provider(),
				ModelID:          strings.ToLower(strings.ReplaceAll(model, " ", "-")),
				ModelName:        model,
				AnnouncementDate: announcement,
				ShutdownDate:     shutdown,
				ReplacementModel: replacement,
				Context:          openaiContext(model, context),
				URL:              url,
			})
		}
	}
	return items
}

// extractText derives records from section prose when no table is present.
// Model mentions in the text win; otherwise the section title names the
// models.
func (s *OpenAIStrategy) extractText(text, title, announcement, url string) []deprecations.DeprecationItem {
	shutdown := announcement
	if m := openaiShutdownRE.FindStringSubmatch(text); m != nil {
		if parsed := deprecations.NormalizeDate(m[1]); parsed != "" {
			shutdown = parsed
		}
	}

	var models []string
	for _, m := range openaiMentionRE.FindAllStringSubmatch(text, -1) {
		models = append(models, m[1])
	}
	if len(models) == 0 && title != "" {
		models = splitModelCell(title)
	}

	var items []deprecations.DeprecationItem
	for _, model := range models {
		items = append(items, deprecations.DeprecationItem{
			Provider:         s.Provider(),
			ModelID:          strings.ToLower(strings.ReplaceAll(model, " ", "-")),
			ModelName:        model,
			AnnouncementDate: announcement,
			ShutdownDate:     shutdown,
			Context:          openaiContext(model, text),
			URL:              url,
		})
	}
	return items
}

// ExtractUnstructured runs a text-only pass over the whole page for model
// mentions the structured walk missed, typically when markup arrives mangled.
func (s *OpenAIStrategy) ExtractUnstructured(html string) ([]deprecations.DeprecationItem, error) {
	var text string
	if s.extractor != nil {
		_, extracted, err := s.extractor.ExtractText(html)
		if err != nil {
			return nil, deprecations.Errorf(deprecations.EEXTRACTION, "openai text extraction: %v", err)
		}
		text = extracted
	} else {
		text = deprecations.CleanText(html, true)
	}

	var items []deprecations.DeprecationItem
	for _, line := range strings.Split(text, "\n") {
		m := openaiMentionRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		model := m[1]

		shutdown := ""
		if d := openaiShutdownRE.FindStringSubmatch(line); d != nil {
			shutdown = deprecations.NormalizeDate(d[1])
		}
		if shutdown == "" {
			continue
		}

		items = append(items, deprecations.DeprecationItem{
			Provider:     s.Provider(),
			ModelID:      strings.ToLower(model),
			ModelName:    model,
			ShutdownDate: shutdown,
			Context:      strings.TrimSpace(line),
			URL:          s.URL(),
		})
	}
	return dedupeItems(items), nil
}

// splitModelCell splits "A and B" model lists into individual names.
func splitModelCell(cell string) []string {
	if !strings.Contains(cell, " and ") {
		return []string{cell}
	}
	parts := strings.Split(cell, " and ")
	models := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			models = append(models, p)
		}
	}
	return models
}

// openaiContext prefixes the section prose with the model name so every
// record's context names its model.
func openaiContext(model, context string) string {
	if context == "" {
		return "Model " + model + " is deprecated."
	}
	if strings.Contains(context, model) {
		return context
	}
	return "Model " + model + ". " + context
}
