// Package feed serializes deprecation records into the published feed
// formats: JSON Feed 1.1 and RSS 2.0.
package feed

import (
	"time"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Site constants baked into every generated feed.
const (
	Title       = "AI Model Deprecations"
	HomePageURL = "https://deprecations.info/"
	FeedURL     = "https://deprecations.info/v1/feed.json"
	Description = "Tracking deprecations and sunsets for AI/ML models across major providers"
)

// JSONFeed is a JSON Feed 1.1 document.
type JSONFeed struct {
	Version     string     `json:"version"`
	Title       string     `json:"title"`
	HomePageURL string     `json:"home_page_url"`
	FeedURL     string     `json:"feed_url"`
	Description string     `json:"description"`
	Language    string     `json:"language"`
	Items       []JSONItem `json:"items"`
}

// JSONItem is one feed entry. The _deprecation extension carries the full
// structured record so consumers don't have to parse content_text.
type JSONItem struct {
	ID            string       `json:"id"`
	URL           string       `json:"url"`
	Title         string       `json:"title"`
	ContentText   string       `json:"content_text"`
	DatePublished string       `json:"date_published,omitempty"`
	Deprecation   *Deprecation `json:"_deprecation,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
}

// Deprecation is the custom extension object on each feed item.
type Deprecation struct {
	Provider         string `json:"provider"`
	ModelID          string `json:"model_id,omitempty"`
	ModelName        string `json:"model_name,omitempty"`
	AnnouncementDate string `json:"announcement_date,omitempty"`
	ShutdownDate     string `json:"shutdown_date,omitempty"`
	ReplacementModel string `json:"replacement_model,omitempty"`
	FirstObserved    string `json:"first_observed,omitempty"`
	LastObserved     string `json:"last_observed,omitempty"`
	Summary          string `json:"summary,omitempty"`
}

// BuildJSONFeed folds deprecation records into a JSON Feed document. Item
// order follows the input, and item IDs come from the deterministic FeedID
// derivation, so feed readers see stable entries across runs.
func BuildJSONFeed(items []deprecations.DeprecationItem, now time.Time) *JSONFeed {
	feed := &JSONFeed{
		Version:     "https://jsonfeed.org/version/1.1",
		Title:       Title,
		HomePageURL: HomePageURL,
		FeedURL:     FeedURL,
		Description: Description,
		Language:    "en-US",
		Items:       make([]JSONItem, 0, len(items)),
	}

	for _, item := range items {
		content := item.Summary
		if content == "" {
			content = item.Context
		}

		published := item.ScrapedAt
		if published == "" {
			published = now.UTC().Format(time.RFC3339)
		}

		feed.Items = append(feed.Items, JSONItem{
			ID:            item.FeedID(),
			URL:           item.URL,
			Title:         itemTitle(item),
			ContentText:   content,
			DatePublished: published,
			Deprecation: &Deprecation{
				Provider:         item.Provider,
				ModelID:          item.ModelID,
				ModelName:        item.ModelName,
				AnnouncementDate: item.AnnouncementDate,
				ShutdownDate:     item.ShutdownDate,
				ReplacementModel: item.ReplacementModel,
				FirstObserved:    item.FirstObserved,
				LastObserved:     item.LastObserved,
				Summary:          item.Summary,
			},
			Tags: itemTags(item),
		})
	}
	return feed
}

// itemTitle renders "Provider: model name" for readers that only show
// titles.
func itemTitle(item deprecations.DeprecationItem) string {
	name := item.ModelName
	if name == "" {
		name = item.ModelID
	}
	if name == "" {
		return item.Provider + " Deprecation"
	}
	return item.Provider + ": " + name
}

// itemTags derives the filtering tags: the provider name, plus
// "shutdown-<year>" when a shutdown date is known.
func itemTags(item deprecations.DeprecationItem) []string {
	tags := []string{item.Provider}
	if len(item.ShutdownDate) >= 4 {
		tags = append(tags, "shutdown-"+item.ShutdownDate[:4])
	}
	return tags
}
