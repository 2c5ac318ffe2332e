package lawwatch

import (
	"context"
	"time"
)

// FeedEntry represents one raw item parsed from the Headlines RSS feed,
// before article content is fetched or summarized.
type FeedEntry struct {
	GUID        string
	Title       string
	Link        string
	Category    string
	Author      string
	PublishedAt time.Time
}

// FeedService parses RSS feeds into entries.
type FeedService interface {
	// FetchEntries retrieves and parses the RSS feed at feedURL.
	// Entries are returned in feed order. Items whose publication date
	// cannot be parsed are returned with a zero PublishedAt rather than
	// dropped.
	FetchEntries(ctx context.Context, feedURL string) ([]FeedEntry, error)
}
