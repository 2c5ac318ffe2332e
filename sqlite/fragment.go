package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/fwojciec/lawwatch"
)

// Compile-time interface verification.
var _ lawwatch.FragmentService = (*FragmentService)(nil)

// FragmentService implements lawwatch.FragmentService using SQLite.
type FragmentService struct {
	db *DB
}

// NewFragmentService creates a new FragmentService.
func NewFragmentService(db *DB) *FragmentService {
	return &FragmentService{db: db}
}

// CreateFragment creates a fragment. Fragment IDs are deterministic
// (chapter ID + section number), so creation upserts by ID and
// re-scraping a chapter refreshes its fragments in place.
func (s *FragmentService) CreateFragment(ctx context.Context, fragment *lawwatch.Fragment) error {
	if err := fragment.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fragments (id, chapter_id, fragment_order, content, char_count)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			chapter_id = excluded.chapter_id,
			fragment_order = excluded.fragment_order,
			content = excluded.content,
			char_count = excluded.char_count
	`, fragment.ID, fragment.ChapterID, fragment.Order, fragment.Content, fragment.CharCount)

	return err
}

// CreateFragments creates multiple fragments in a batch.
func (s *FragmentService) CreateFragments(ctx context.Context, fragments []*lawwatch.Fragment) error {
	for _, fragment := range fragments {
		if err := s.CreateFragment(ctx, fragment); err != nil {
			return err
		}
	}
	return nil
}

// FindFragmentByID retrieves a fragment by ID.
func (s *FragmentService) FindFragmentByID(ctx context.Context, id string) (*lawwatch.Fragment, error) {
	var fragment lawwatch.Fragment

	err := s.db.QueryRowContext(ctx, `
		SELECT id, chapter_id, fragment_order, content, char_count
		FROM fragments
		WHERE id = ?
	`, id).Scan(&fragment.ID, &fragment.ChapterID, &fragment.Order,
		&fragment.Content, &fragment.CharCount)

	if err == sql.ErrNoRows {
		return nil, lawwatch.Errorf(lawwatch.ENOTFOUND, "fragment not found")
	}
	if err != nil {
		return nil, err
	}

	return &fragment, nil
}

// FindFragments retrieves fragments matching the filter, ordered by
// their position within the chapter.
func (s *FragmentService) FindFragments(ctx context.Context, filter lawwatch.FragmentFilter) ([]*lawwatch.Fragment, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, chapter_id, fragment_order, content, char_count FROM fragments WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ChapterID != nil {
		query.WriteString(" AND chapter_id = ?")
		args = append(args, *filter.ChapterID)
	}

	query.WriteString(" ORDER BY chapter_id ASC, fragment_order ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fragments []*lawwatch.Fragment
	for rows.Next() {
		var fragment lawwatch.Fragment

		if err := rows.Scan(&fragment.ID, &fragment.ChapterID, &fragment.Order,
			&fragment.Content, &fragment.CharCount); err != nil {
			return nil, err
		}

		fragments = append(fragments, &fragment)
	}

	return fragments, rows.Err()
}

// DeleteFragmentsByChapter removes all fragments for a chapter.
func (s *FragmentService) DeleteFragmentsByChapter(ctx context.Context, chapterID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM fragments WHERE chapter_id = ?", chapterID)
	return err
}
