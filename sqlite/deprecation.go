package sqlite

import (
	"context"
	"strings"

	"github.com/google/uuid"

	deprecations "github.com/leblancfg/deprecations-rss"
)

// Compile-time interface verification.
var _ deprecations.DeprecationService = (*DeprecationService)(nil)

// DeprecationService implements deprecations.DeprecationService using SQLite.
type DeprecationService struct {
	db *DB
}

// NewDeprecationService creates a new DeprecationService.
func NewDeprecationService(db *DB) *DeprecationService {
	return &DeprecationService{db: db}
}

// CreateDeprecation persists a new deprecation record.
func (s *DeprecationService) CreateDeprecation(ctx context.Context, item *deprecations.DeprecationItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if item.ContentHash == "" {
		item.ContentHash = item.Hash()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO deprecations (
			id, provider, model_id, model_name, announcement_date, shutdown_date,
			replacement_model, context, url, content_hash, scraped_at,
			first_observed, last_observed, summary
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), item.Provider, item.ModelID, item.ModelName,
		item.AnnouncementDate, item.ShutdownDate, item.ReplacementModel,
		item.Context, item.URL, item.ContentHash, item.ScrapedAt,
		item.FirstObserved, item.LastObserved, item.Summary)

	return err
}

// FindDeprecations retrieves records matching the filter, ordered by
// provider then shutdown date so feed output is stable across runs.
func (s *DeprecationService) FindDeprecations(ctx context.Context, filter deprecations.DeprecationFilter) ([]*deprecations.DeprecationItem, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT provider, model_id, model_name, announcement_date, shutdown_date,
			replacement_model, context, url, content_hash, scraped_at,
			first_observed, last_observed, summary
		FROM deprecations WHERE 1=1`)

	if filter.Provider != nil {
		query.WriteString(" AND provider = ?")
		args = append(args, *filter.Provider)
	}
	if filter.ModelID != nil {
		query.WriteString(" AND model_id = ?")
		args = append(args, *filter.ModelID)
	}

	query.WriteString(" ORDER BY provider, shutdown_date, model_id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*deprecations.DeprecationItem
	for rows.Next() {
		var item deprecations.DeprecationItem
		if err := rows.Scan(&item.Provider, &item.ModelID, &item.ModelName,
			&item.AnnouncementDate, &item.ShutdownDate, &item.ReplacementModel,
			&item.Context, &item.URL, &item.ContentHash, &item.ScrapedAt,
			&item.FirstObserved, &item.LastObserved, &item.Summary); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

// DeleteDeprecationsByProvider removes all records for a provider. Deleting
// for a provider with no records is not an error: a scrape run replaces a
// provider's records wholesale and the first run starts from nothing.
func (s *DeprecationService) DeleteDeprecationsByProvider(ctx context.Context, provider string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM deprecations WHERE provider = ?", provider)
	return err
}
