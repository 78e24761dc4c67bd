// Package goquery implements the per-provider extraction strategies on top
// of goquery document traversal. Each provider page gets its own strategy
// file; shared section-walking, table-parsing, and pattern-cascade helpers
// live in section.go and patterns.go.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	deprecations "github.com/leblancfg/deprecations-rss"
)

// parseDoc parses raw HTML into a goquery document.
func parseDoc(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, deprecations.Errorf(deprecations.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// findContent returns the main content region: the first candidate selector
// that matches wins. Returns nil when no candidate matches.
func findContent(doc *goquery.Document, candidates ...string) *goquery.Selection {
	for _, selector := range candidates {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return nil
}

// section is one heading-delimited slice of the content region.
type section struct {
	title  string
	anchor string // heading id attribute, for URL fragments
	rank   int    // heading level, 2-4
	nodes  []*goquery.Selection
}

// sections flattens the content region into an ordered node list and groups
// it into heading-delimited sections. Headings of rank 2..maxRank act as
// boundaries; content before the first heading is not part of any section.
// The walk is an explicit loop over the flattened list rather than live
// sibling-pointer traversal.
func sections(content *goquery.Selection, maxRank int) []section {
	selector := "h2, h3, p, ul, ol, table"
	if maxRank >= 4 {
		selector = "h2, h3, h4, p, ul, ol, table"
	}

	var secs []section
	content.Find(selector).Each(func(_ int, node *goquery.Selection) {
		if rank := headingRank(goquery.NodeName(node)); rank > 0 {
			anchor, _ := node.Attr("id")
			secs = append(secs, section{
				title:  nodeText(node, ""),
				anchor: anchor,
				rank:   rank,
			})
			return
		}
		if len(secs) > 0 {
			sec := &secs[len(secs)-1]
			sec.nodes = append(sec.nodes, node)
		}
	})
	return secs
}

// tagName returns the element name of a selection's first node.
func tagName(sel *goquery.Selection) string {
	return goquery.NodeName(sel)
}

// headingRank returns the heading level for hN tags, 0 otherwise.
func headingRank(tag string) int {
	switch tag {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	}
	return 0
}

// nodeText extracts cleaned text from a node, returning def when the node
// is absent. Never fails on a nil or empty selection.
func nodeText(sel *goquery.Selection, def string) string {
	if sel == nil || sel.Length() == 0 {
		return def
	}
	text := deprecations.CleanText(sel.Text(), false)
	if text == "" {
		return def
	}
	return text
}

// nodeDate extracts and normalizes a date from a node's text. Returns ""
// when the node is absent or its text does not parse as a date.
func nodeDate(sel *goquery.Selection) string {
	return deprecations.NormalizeDate(nodeText(sel, ""))
}

// headerCells returns the lowercased cell texts of a table's header row.
func headerCells(table *goquery.Selection) []string {
	var headers []string
	table.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(nodeText(cell, "")))
	})
	return headers
}

// dataRows returns a table's rows after the header row.
func dataRows(table *goquery.Selection) []*goquery.Selection {
	var rows []*goquery.Selection
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		rows = append(rows, row)
	})
	return rows
}

// rowCells returns the cleaned td texts of a row.
func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, nodeText(cell, ""))
	})
	return cells
}

// columnIndex resolves a column role by substring match against lowercased
// header text: the first header containing any of the substrings wins.
// Returns -1 when no header matches.
func columnIndex(headers []string, subs ...string) int {
	for i, header := range headers {
		for _, sub := range subs {
			if strings.Contains(header, sub) {
				return i
			}
		}
	}
	return -1
}

// cellAt returns the cell at idx, or "" when idx is out of range or -1.
func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
