package lawwatch

import (
	"context"
	"time"
)

// Headline represents one legal news item from the Headlines RSS feed,
// enriched with fetched article text and an AI-generated summary.
type Headline struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"sourceUrl"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
	ImportedAt  time.Time `json:"importedAt"`
	Text        string    `json:"text"`
	Summary     string    `json:"summary"`
}

// Validate returns an error if the headline contains invalid fields.
func (h *Headline) Validate() error {
	if h.Title == "" {
		return Errorf(EINVALID, "headline title required")
	}
	if h.SourceURL == "" {
		return Errorf(EINVALID, "headline source URL required")
	}
	return nil
}

// HeadlineService represents a service for managing headlines.
type HeadlineService interface {
	// CreateHeadline creates a new headline.
	// Returns ECONFLICT if a headline with the same ID already exists.
	CreateHeadline(ctx context.Context, headline *Headline) error

	// FindHeadlineByID retrieves a headline by ID.
	// Returns ENOTFOUND if headline does not exist.
	FindHeadlineByID(ctx context.Context, id string) (*Headline, error)

	// FindHeadlines retrieves headlines matching the filter, newest
	// first.
	FindHeadlines(ctx context.Context, filter HeadlineFilter) ([]*Headline, error)

	// DeleteHeadline permanently removes a headline.
	// Returns ENOTFOUND if headline does not exist.
	DeleteHeadline(ctx context.Context, id string) error
}

// HeadlineFilter represents a filter for FindHeadlines.
type HeadlineFilter struct {
	ID       *string    `json:"id"`
	Category *string    `json:"category"`
	Since    *time.Time `json:"since"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
