package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lawwatch"
)

// Compile-time interface verification.
var _ lawwatch.ChapterService = (*ChapterService)(nil)

// ChapterService implements lawwatch.ChapterService using SQLite.
type ChapterService struct {
	db *DB
}

// NewChapterService creates a new ChapterService.
func NewChapterService(db *DB) *ChapterService {
	return &ChapterService{db: db}
}

// ChapterID derives a stable 12-hex-digit chapter ID from the chapter
// URL. Fragment IDs embed this value, so it must not change between
// scrapes of the same page.
func ChapterID(url string) string {
	h := xxhash.Sum64String(url)
	b := []byte{
		byte(h >> 56), byte(h >> 48), byte(h >> 40), byte(h >> 32),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	}
	return hex.EncodeToString(b)[:12]
}

// CreateChapter creates a chapter, replacing any existing record with
// the same URL-derived ID so chapters can be re-scraped in place. A
// zero ScrapedAt defaults to the current time.
func (s *ChapterService) CreateChapter(ctx context.Context, chapter *lawwatch.Chapter) error {
	if err := chapter.Validate(); err != nil {
		return err
	}

	chapter.ID = ChapterID(chapter.URL)
	if chapter.ScrapedAt.IsZero() {
		chapter.ScrapedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chapters (id, url, title, section, content_length, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			section = excluded.section,
			content_length = excluded.content_length,
			scraped_at = excluded.scraped_at
	`, chapter.ID, chapter.URL, chapter.Title, chapter.Section, chapter.ContentLength,
		chapter.ScrapedAt.Format(time.RFC3339))

	return err
}

// FindChapterByID retrieves a chapter by ID.
func (s *ChapterService) FindChapterByID(ctx context.Context, id string) (*lawwatch.Chapter, error) {
	var chapter lawwatch.Chapter
	var scrapedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, section, content_length, scraped_at
		FROM chapters
		WHERE id = ?
	`, id).Scan(&chapter.ID, &chapter.URL, &chapter.Title, &chapter.Section,
		&chapter.ContentLength, &scrapedAt)

	if err == sql.ErrNoRows {
		return nil, lawwatch.Errorf(lawwatch.ENOTFOUND, "chapter not found")
	}
	if err != nil {
		return nil, err
	}

	chapter.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	return &chapter, nil
}

// FindChapters retrieves chapters matching the filter.
func (s *ChapterService) FindChapters(ctx context.Context, filter lawwatch.ChapterFilter) ([]*lawwatch.Chapter, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, section, content_length, scraped_at FROM chapters WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Section != nil {
		query.WriteString(" AND section = ?")
		args = append(args, *filter.Section)
	}

	query.WriteString(" ORDER BY section ASC, title ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*lawwatch.Chapter
	for rows.Next() {
		var chapter lawwatch.Chapter
		var scrapedAt string

		if err := rows.Scan(&chapter.ID, &chapter.URL, &chapter.Title, &chapter.Section,
			&chapter.ContentLength, &scrapedAt); err != nil {
			return nil, err
		}

		chapter.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at")
		if err != nil {
			return nil, err
		}

		chapters = append(chapters, &chapter)
	}

	return chapters, rows.Err()
}

// DeleteChapter permanently removes a chapter. Associated fragments are
// removed by the foreign key cascade.
func (s *ChapterService) DeleteChapter(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM chapters WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return lawwatch.Errorf(lawwatch.ENOTFOUND, "chapter not found")
	}

	return nil
}
