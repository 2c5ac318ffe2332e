package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/lawwatch"
)

// pubDateLayouts are the date formats observed in the Headlines feed,
// tried in order. The feed mostly uses full month names but occasionally
// falls back to RFC1123-style dates.
var pubDateLayouts = []string{
	"02 January 2006 15:04:05",
	"02 Jan 2006 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
}

// Ensure FeedService implements lawwatch.FeedService at compile time.
var _ lawwatch.FeedService = (*FeedService)(nil)

// FeedService parses RSS 2.0 feeds over HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// FetchEntries retrieves and parses the RSS feed at feedURL.
// Entries are returned in feed order. Items whose publication date
// cannot be parsed get a zero PublishedAt rather than being dropped.
func (s *FeedService) FetchEntries(ctx context.Context, feedURL string) ([]lawwatch.FeedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, feedURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return ParseFeed(body)
}

// ParseFeed parses RSS 2.0 XML into feed entries.
func ParseFeed(data []byte) ([]lawwatch.FeedEntry, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, lawwatch.Errorf(lawwatch.EINVALID, "failed to parse feed XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "rss" {
		return nil, lawwatch.Errorf(lawwatch.EINVALID, "not an RSS document")
	}

	var entries []lawwatch.FeedEntry
	for _, item := range root.FindElements("channel/item") {
		entry := lawwatch.FeedEntry{
			GUID:        elementText(item, "guid"),
			Title:       elementText(item, "title"),
			Link:        elementText(item, "link"),
			Category:    elementText(item, "category"),
			Author:      elementText(item, "author"),
			PublishedAt: parsePubDate(elementText(item, "pubDate")),
		}
		if entry.Author == "" {
			// Some feeds carry the author in dc:creator instead.
			entry.Author = elementText(item, "creator")
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// elementText returns the trimmed text of a child element, or "" when
// the element is absent.
func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}

// parsePubDate tries the known feed date layouts in order.
// Returns the zero time if none match.
func parsePubDate(value string) time.Time {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
