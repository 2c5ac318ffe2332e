package lawwatch

import "context"

// Fragment represents one retrievable unit of chapter content, anchored
// to a numbered paragraph (e.g. "1.2.15"). Fragments are produced by
// AssembleFragments and never split or reordered after creation.
type Fragment struct {
	ID        string `json:"id"`
	ChapterID string `json:"chapterId"`
	Order     int    `json:"order"`
	Content   string `json:"content"`
	CharCount int    `json:"charCount"`
}

// Validate returns an error if the fragment contains invalid fields.
func (f *Fragment) Validate() error {
	if f.ID == "" {
		return Errorf(EINVALID, "fragment ID required")
	}
	if f.ChapterID == "" {
		return Errorf(EINVALID, "fragment chapter ID required")
	}
	if f.Content == "" {
		return Errorf(EINVALID, "fragment content required")
	}
	return nil
}

// FragmentService represents a service for managing fragments.
type FragmentService interface {
	// CreateFragment creates a fragment. Fragment IDs are derived from
	// chapter ID and section number, so creation is an upsert by ID.
	CreateFragment(ctx context.Context, fragment *Fragment) error

	// CreateFragments creates multiple fragments in a batch.
	CreateFragments(ctx context.Context, fragments []*Fragment) error

	// FindFragmentByID retrieves a fragment by ID.
	// Returns ENOTFOUND if fragment does not exist.
	FindFragmentByID(ctx context.Context, id string) (*Fragment, error)

	// FindFragments retrieves fragments matching the filter, ordered by
	// their position within the chapter.
	FindFragments(ctx context.Context, filter FragmentFilter) ([]*Fragment, error)

	// DeleteFragmentsByChapter removes all fragments for a chapter.
	DeleteFragmentsByChapter(ctx context.Context, chapterID string) error
}

// FragmentFilter represents a filter for FindFragments.
type FragmentFilter struct {
	ID        *string `json:"id"`
	ChapterID *string `json:"chapterId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
