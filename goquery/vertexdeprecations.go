package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	deprecations "github.com/leblancfg/deprecations-rss"
)

var _ deprecations.Strategy = (*VertexDeprecationsStrategy)(nil)

// VertexDeprecationsStrategy scrapes the Google Vertex AI deprecations
// page. Sections announce "Deprecation date: ... Shutdown date: ..." pairs
// in prose and enumerate affected models in lists.
type VertexDeprecationsStrategy struct{}

// NewVertexDeprecationsStrategy creates a VertexDeprecationsStrategy.
func NewVertexDeprecationsStrategy() *VertexDeprecationsStrategy {
	return &VertexDeprecationsStrategy{}
}

// Provider returns the provider name.
func (s *VertexDeprecationsStrategy) Provider() string { return "Google Vertex" }

// URL returns the deprecations page URL.
func (s *VertexDeprecationsStrategy) URL() string {
	return "https://cloud.google.com/vertex-ai/generative-ai/docs/deprecations"
}

var (
	deprecationDateRE = regexp.MustCompile(`(?i)deprecation date[:\s]+([^.]+)`)
	shutdownDateRE    = regexp.MustCompile(`(?i)shutdown date[:\s]+([^.]+)`)
	versionedModelRE  = regexp.MustCompile(`[\w\-]+@\d+`)

	// Non-model features (e.g. "Image captioning") the page also retires.
	featureKeywords = []string{"caption", "question", "vqa"}
)

// ExtractStructured walks every section, reading the announced date pair
// from prose and fanning out one item per listed model.
func (s *VertexDeprecationsStrategy) ExtractStructured(html string) ([]deprecations.DeprecationItem, error) {
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
		items = append(items, s.extractSection(sec)...)
	}
	return items, nil
}

func (s *VertexDeprecationsStrategy) extractSection(sec section) []deprecations.DeprecationItem {
	var items []deprecations.DeprecationItem
	var contextParts []string
	deprecationDate := ""
	shutdownDate := ""
	sectionURL := s.URL() + "#" + sec.anchor

	for _, node := range sec.nodes {
		text := nodeText(node, "")

		if m := deprecationDateRE.FindStringSubmatch(text); m != nil {
			if parsed := deprecations.NormalizeDate(m[1]); parsed != "" {
				deprecationDate = parsed
			}
		}
		if m := shutdownDateRE.FindStringSubmatch(text); m != nil {
			if parsed := deprecations.NormalizeDate(m[1]); parsed != "" {
				shutdownDate = parsed
			}
		}

		if text != "" {
			contextParts = append(contextParts, text)
		}

		if tag := tagName(node); tag == "ul" || tag == "ol" {
			items = append(items, s.extractList(node, contextParts, deprecationDate, shutdownDate, sectionURL)...)
		}
	}

	// Section fallback when dates were announced but no model list followed.
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

func (s *VertexDeprecationsStrategy) extractList(list *goquery.Selection, contextParts []string, deprecationDate, shutdownDate, sectionURL string) []deprecations.DeprecationItem {
	joined := strings.Join(contextParts, " ")

	var items []deprecations.DeprecationItem
	list.Find("li").Each(func(_ int, li *goquery.Selection) {
		text := nodeText(li, "")
		if text == "" {
			return
		}

		if model := versionedModelRE.FindString(text); model != "" {
			name := strings.TrimSpace(strings.SplitN(text, ":", 2)[0])
			name = strings.TrimSpace(strings.ReplaceAll(name, "models", ""))
			if name == "" {
				name = model
			}

			replacement := ""
			if strings.Contains(strings.ToLower(text), "imagen") {
				replacement = "Imagen 3"
			}

			items = append(items, deprecations.DeprecationItem{
				Provider:         s.Provider(),
				ModelID:          strings.ToLower(model),
				ModelName:        name,
				AnnouncementDate: deprecationDate,
				ShutdownDate:     shutdownDate,
				ReplacementModel: replacement,
				Context:          strings.TrimSpace(text + ". " + joined),
				URL:              sectionURL,
			})
			return
		}

		// Retired capabilities without versioned identifiers.
		if containsAny(strings.ToLower(text), featureKeywords) {
			items = append(items, deprecations.DeprecationItem{
				Provider:         s.Provider(),
				ModelID:          strings.ToLower(strings.ReplaceAll(text, " ", "-")),
				ModelName:        text,
				AnnouncementDate: deprecationDate,
				ShutdownDate:     shutdownDate,
				Context:          strings.TrimSpace(text + ". " + joined),
				URL:              sectionURL,
			})
		}
	})
	return items
}

// ExtractUnstructured returns nothing: the deprecations page is fully
// structured.
func (s *VertexDeprecationsStrategy) ExtractUnstructured(html string) ([]deprecations.DeprecationItem, error) {
	return nil, nil
}
