package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/lawwatch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lawwatch.HeadlineService = (*HeadlineService)(nil)

// HeadlineService implements lawwatch.HeadlineService using SQLite.
type HeadlineService struct {
	db *DB
}

// NewHeadlineService creates a new HeadlineService.
func NewHeadlineService(db *DB) *HeadlineService {
	return &HeadlineService{db: db}
}

// CreateHeadline creates a new headline. The caller normally supplies an
// ID derived from the feed entry; a random ID is assigned when missing.
func (s *HeadlineService) CreateHeadline(ctx context.Context, headline *lawwatch.Headline) error {
	if err := headline.Validate(); err != nil {
		return err
	}

	if headline.ID == "" {
		headline.ID = uuid.New().String()
	}
	headline.ImportedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO headlines (id, category, title, source_url, author, published_at, imported_at, text, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, headline.ID, headline.Category, headline.Title, headline.SourceURL, headline.Author,
		headline.PublishedAt.UTC().Format(time.RFC3339),
		headline.ImportedAt.Format(time.RFC3339),
		headline.Text, headline.Summary)

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return lawwatch.Errorf(lawwatch.ECONFLICT, "headline %q already exists", headline.ID)
	}

	return err
}

// FindHeadlineByID retrieves a headline by ID.
func (s *HeadlineService) FindHeadlineByID(ctx context.Context, id string) (*lawwatch.Headline, error) {
	var headline lawwatch.Headline
	var publishedAt, importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, category, title, source_url, author, published_at, imported_at, text, summary
		FROM headlines
		WHERE id = ?
	`, id).Scan(&headline.ID, &headline.Category, &headline.Title, &headline.SourceURL,
		&headline.Author, &publishedAt, &importedAt, &headline.Text, &headline.Summary)

	if err == sql.ErrNoRows {
		return nil, lawwatch.Errorf(lawwatch.ENOTFOUND, "headline not found")
	}
	if err != nil {
		return nil, err
	}

	if headline.PublishedAt, err = parseRFC3339(publishedAt, "published_at"); err != nil {
		return nil, err
	}
	if headline.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
		return nil, err
	}

	return &headline, nil
}

// FindHeadlines retrieves headlines matching the filter, newest first.
func (s *HeadlineService) FindHeadlines(ctx context.Context, filter lawwatch.HeadlineFilter) ([]*lawwatch.Headline, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, category, title, source_url, author, published_at, imported_at, text, summary FROM headlines WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.Since != nil {
		query.WriteString(" AND published_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.RFC3339))
	}

	query.WriteString(" ORDER BY published_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var headlines []*lawwatch.Headline
	for rows.Next() {
		var headline lawwatch.Headline
		var publishedAt, importedAt string

		if err := rows.Scan(&headline.ID, &headline.Category, &headline.Title, &headline.SourceURL,
			&headline.Author, &publishedAt, &importedAt, &headline.Text, &headline.Summary); err != nil {
			return nil, err
		}

		if headline.PublishedAt, err = parseRFC3339(publishedAt, "published_at"); err != nil {
			return nil, err
		}
		if headline.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
			return nil, err
		}

		headlines = append(headlines, &headline)
	}

	return headlines, rows.Err()
}

// DeleteHeadline permanently removes a headline.
func (s *HeadlineService) DeleteHeadline(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM headlines WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return lawwatch.Errorf(lawwatch.ENOTFOUND, "headline not found")
	}

	return nil
}
