package lawwatch

import (
	"context"
	"time"
)

// Chapter represents one legal-reference page from the About Singapore
// Law section of the site.
type Chapter struct {
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Section       string    `json:"section"`
	ContentLength int       `json:"contentLength"`
	ScrapedAt     time.Time `json:"scrapedAt"`
}

// Validate returns an error if the chapter contains invalid fields.
func (c *Chapter) Validate() error {
	if c.URL == "" {
		return Errorf(EINVALID, "chapter URL required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "chapter title required")
	}
	return nil
}

// ChapterService represents a service for managing chapters.
type ChapterService interface {
	// CreateChapter creates a new chapter. The chapter ID is derived
	// from the chapter URL, so re-creating an existing chapter updates
	// it in place.
	CreateChapter(ctx context.Context, chapter *Chapter) error

	// FindChapterByID retrieves a chapter by ID.
	// Returns ENOTFOUND if chapter does not exist.
	FindChapterByID(ctx context.Context, id string) (*Chapter, error)

	// FindChapters retrieves chapters matching the filter.
	FindChapters(ctx context.Context, filter ChapterFilter) ([]*Chapter, error)

	// DeleteChapter permanently removes a chapter and all associated
	// fragments. Returns ENOTFOUND if chapter does not exist.
	DeleteChapter(ctx context.Context, id string) error
}

// ChapterFilter represents a filter for FindChapters.
type ChapterFilter struct {
	ID      *string `json:"id"`
	URL     *string `json:"url"`
	Section *string `json:"section"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ChapterLink is a chapter reference discovered on a section home page.
type ChapterLink struct {
	URL     string
	Title   string
	Section string
}

// LinkDiscoverer finds chapter links on a section home page.
type LinkDiscoverer interface {
	// DiscoverChapterLinks parses a section page and returns links to
	// the chapters it lists. The baseURL is used to resolve relative
	// URLs; section labels the home page the links were found on.
	DiscoverChapterLinks(html, baseURL, section string) ([]ChapterLink, error)
}
