package deprecations

import (
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// DeprecationItem is the normalized record every provider strategy emits.
// Items are immutable value objects created during a single scraping pass;
// they have no identity beyond their field values.
type DeprecationItem struct {
	Provider         string `json:"provider"`
	ModelID          string `json:"model_id"`
	ModelName        string `json:"model_name"`
	AnnouncementDate string `json:"announcement_date"` // ISO YYYY-MM-DD or ""
	ShutdownDate     string `json:"shutdown_date"`     // ISO YYYY-MM-DD or ""
	ReplacementModel string `json:"replacement_model,omitempty"`
	Context          string `json:"deprecation_context"`
	URL              string `json:"url"`
	ContentHash      string `json:"content_hash,omitempty"`
	ScrapedAt        string `json:"scraped_at,omitempty"`
	FirstObserved    string `json:"first_observed,omitempty"`
	LastObserved     string `json:"last_observed,omitempty"`
	Summary          string `json:"summary,omitempty"`
}

// Validate returns an error if the item is missing required fields.
func (d *DeprecationItem) Validate() error {
	if d.Provider == "" {
		return Errorf(EINVALID, "deprecation provider required")
	}
	if d.ModelID == "" && d.ModelName == "" {
		return Errorf(EINVALID, "deprecation model identifier required")
	}
	if d.Context == "" {
		return Errorf(EINVALID, "deprecation context required")
	}
	return nil
}

// Hash returns the content hash identifying this deprecation. It covers the
// fields that make the notice unique, so a changed shutdown date reads as a
// changed item.
func (d *DeprecationItem) Hash() string {
	return HashContent(d.Provider + "|" + d.ModelID + "|" + d.ShutdownDate + "|" + d.AnnouncementDate)
}

// FeedID derives the stable feed item identifier: provider and model name
// joined with a hyphen, spaces replaced by hyphens, colons removed,
// lowercased, truncated to 100 bytes. Feed readers key on this across runs,
// so the derivation must not change.
func (d *DeprecationItem) FeedID() string {
	name := d.ModelName
	if name == "" {
		name = d.ModelID
	}
	id := d.Provider + "-" + name
	id = strings.ReplaceAll(id, " ", "-")
	id = strings.ReplaceAll(id, ":", "")
	id = strings.ToLower(id)
	if len(id) > 100 {
		id = id[:100]
	}
	return id
}

// HashContent computes the xxHash of content and returns it as a hex string.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// Strategy extracts deprecation records from one provider's page. Each
// provider implements the same two-method contract and is selected via
// registry lookup rather than subclassing.
type Strategy interface {
	// Provider returns the provider name stamped on emitted items.
	Provider() string

	// URL returns the fixed page the strategy scrapes.
	URL() string

	// ExtractStructured walks the document's structured markup (sections,
	// tables, lists) and returns zero or more items. A missing content
	// region yields an empty slice, not an error.
	ExtractStructured(html string) ([]DeprecationItem, error)

	// ExtractUnstructured scans free text for mentions the structured pass
	// may miss. Providers with fully structured markup return an empty
	// slice here.
	ExtractUnstructured(html string) ([]DeprecationItem, error)
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch returns the response body for the URL. The context bounds the
	// request, including backoff sleeps between retries.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases the underlying client. A subsequent Fetch recreates it.
	Close() error
}

// TextExtractor produces boilerplate-free text from a full HTML page.
// Used by unstructured extraction passes.
type TextExtractor interface {
	ExtractText(html string) (title, text string, err error)
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the domain's rate limit admits a request, or the
	// context is cancelled.
	Wait(ctx context.Context, domain string) error
}

// Analyzer produces a short natural-language summary of a deprecation.
type Analyzer interface {
	Summarize(ctx context.Context, item *DeprecationItem) (string, error)
}

// DeprecationFilter restricts FindDeprecations results.
type DeprecationFilter struct {
	Provider *string `json:"provider"`
	ModelID  *string `json:"modelId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DeprecationService represents a store for deprecation records.
type DeprecationService interface {
	// CreateDeprecation persists a new record.
	CreateDeprecation(ctx context.Context, item *DeprecationItem) error

	// FindDeprecations retrieves records matching the filter.
	FindDeprecations(ctx context.Context, filter DeprecationFilter) ([]*DeprecationItem, error)

	// DeleteDeprecationsByProvider removes all records for a provider.
	DeleteDeprecationsByProvider(ctx context.Context, provider string) error
}

// ScraperConfig configures the scraper runtime transport.
type ScraperConfig struct {
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
	UserAgent  string
}

// DefaultScraperConfig returns the standard transport settings: 30s request
// timeout, 3 attempts, 1s base backoff.
func DefaultScraperConfig() ScraperConfig {
	return ScraperConfig{
		Timeout:    30 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second,
		UserAgent:  "DeprecationsRSS/1.0 (+https://github.com/leblancfg/deprecations-rss)",
	}
}
