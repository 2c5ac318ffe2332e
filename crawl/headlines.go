package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lawwatch"
)

// DefaultFeedURL is the Headlines RSS feed.
const DefaultFeedURL = "https://www.singaporelawwatch.sg/Portals/0/RSS/Headlines.xml"

// DefaultMaxAgeDays is how far back feed entries are ingested.
const DefaultMaxAgeDays = 60

// adPrefix marks sponsored feed items, which are never ingested.
const adPrefix = "ADV:"

// HeadlineIngestor orchestrates the Headlines pipeline: feed parsing,
// article fetching, summarization and storage. Article fetching and
// summarization degrade gracefully: a failed fetch falls back to a
// title-derived text, and a failed summary falls back to a truncated
// title, so a feed run never loses an entry to a transient error.
type HeadlineIngestor struct {
	Feed         lawwatch.FeedService
	Headlines    lawwatch.HeadlineService
	Fetcher      lawwatch.Fetcher
	Extractor    lawwatch.Extractor
	Converter    lawwatch.Converter
	Summarizer   lawwatch.Summarizer
	TokenCounter lawwatch.TokenCounter
	RateLimiter  lawwatch.DomainLimiter

	// MaxAgeDays bounds entry age; defaults to DefaultMaxAgeDays.
	MaxAgeDays int

	// MaxSummaryTokens caps the article text sent to the summarizer.
	// Zero means no cap.
	MaxSummaryTokens int

	RetryDelays []time.Duration
	Now         func() time.Time
}

// HeadlineResult holds the outcome of a feed ingestion run.
type HeadlineResult struct {
	Saved   int
	Skipped int
	Failed  int
}

// HeadlineID derives a stable headline ID from the publication time and
// title, for feed items that carry no GUID.
func HeadlineID(publishedAt time.Time, title string) string {
	h := xxhash.Sum64String(publishedAt.UTC().Format(time.RFC3339) + "|" + title)
	return fmt.Sprintf("%016x", h)
}

// IngestFeed fetches the RSS feed and ingests its entries. Sponsored
// items, stale items and already-stored items are skipped. The progress
// callback, if provided, receives one event per processed entry.
func (h *HeadlineIngestor) IngestFeed(ctx context.Context, feedURL string, progress ProgressFunc) (*HeadlineResult, error) {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}

	entries, err := h.Feed.FetchEntries(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	maxAge := h.MaxAgeDays
	if maxAge <= 0 {
		maxAge = DefaultMaxAgeDays
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(entries)})
	}

	var result HeadlineResult
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return &result, err
		}

		if skip := h.shouldSkip(ctx, entry, now(), maxAge); skip {
			result.Skipped++
			continue
		}

		headline, err := h.processEntry(ctx, entry, now())
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     len(entries),
					URL:       entry.Link,
					Error:     err,
				})
			}
			continue
		}

		if err := h.Headlines.CreateHeadline(ctx, headline); err != nil {
			if lawwatch.ErrorCode(err) == lawwatch.ECONFLICT {
				result.Skipped++
				continue
			}
			result.Failed++
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: i + 1,
				Total:     len(entries),
				URL:       entry.Link,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(entries), Total: len(entries)})
	}

	return &result, nil
}

// shouldSkip reports whether a feed entry should not be ingested.
func (h *HeadlineIngestor) shouldSkip(ctx context.Context, entry lawwatch.FeedEntry, now time.Time, maxAgeDays int) bool {
	if strings.HasPrefix(entry.Title, adPrefix) {
		return true
	}
	if entry.PublishedAt.IsZero() {
		return true
	}
	if now.Sub(entry.PublishedAt) > time.Duration(maxAgeDays)*24*time.Hour {
		return true
	}

	if _, err := h.Headlines.FindHeadlineByID(ctx, entryID(entry)); err == nil {
		return true
	}
	return false
}

// processEntry fetches the article behind a feed entry and builds the
// headline, falling back to title-derived text and summary on failure.
func (h *HeadlineIngestor) processEntry(ctx context.Context, entry lawwatch.FeedEntry, now time.Time) (*lawwatch.Headline, error) {
	headline := &lawwatch.Headline{
		ID:          entryID(entry),
		Category:    entry.Category,
		Title:       entry.Title,
		SourceURL:   entry.Link,
		Author:      entry.Author,
		PublishedAt: entry.PublishedAt,
		ImportedAt:  now.UTC(),
	}

	text, err := h.fetchArticleText(ctx, entry.Link)
	if err != nil || text == "" {
		text = fallbackText(entry.Title, entry.Link)
	}
	headline.Text = text

	summary, err := h.summarize(ctx, text)
	if err != nil || summary == "" {
		summary = fallbackSummary(entry.Title)
	}
	headline.Summary = summary

	return headline, nil
}

// fetchArticleText retrieves the article page and converts the main
// content to Markdown.
func (h *HeadlineIngestor) fetchArticleText(ctx context.Context, articleURL string) (string, error) {
	if err := waitForHost(ctx, h.RateLimiter, articleURL); err != nil {
		return "", err
	}

	delays := h.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, articleURL, h.Fetcher.Fetch, nil, delays)
	if err != nil {
		return "", err
	}

	extracted, err := h.Extractor.Extract(html)
	if err != nil {
		return "", err
	}

	return h.Converter.Convert(extracted.ContentHTML)
}

// summarize generates a summary of the article text, trimming the text
// to the token cap first if one is configured.
func (h *HeadlineIngestor) summarize(ctx context.Context, text string) (string, error) {
	if h.TokenCounter != nil && h.MaxSummaryTokens > 0 {
		tokens, err := h.TokenCounter.CountTokens(ctx, text)
		if err == nil && tokens > h.MaxSummaryTokens {
			text = truncateByRatio(text, h.MaxSummaryTokens, tokens)
		}
	}
	return h.Summarizer.Summarize(ctx, text)
}

// entryID returns the feed-supplied GUID, or a hash of the publication
// time and title when the feed omits one.
func entryID(entry lawwatch.FeedEntry) string {
	if entry.GUID != "" {
		return entry.GUID
	}
	return HeadlineID(entry.PublishedAt, entry.Title)
}

// fallbackText stands in for article content that could not be fetched.
func fallbackText(title, sourceURL string) string {
	return fmt.Sprintf("Article: %s\nSource: %s\n\nContent could not be retrieved from source.", title, sourceURL)
}

// fallbackSummary stands in for a summary that could not be generated.
func fallbackSummary(title string) string {
	r := []rune(title)
	if len(r) > 100 {
		return "Legal news article: " + string(r[:100]) + "..."
	}
	return "Legal news article: " + title
}

// truncateByRatio trims text to approximately maxTokens worth of runes,
// assuming token density is uniform across the text.
func truncateByRatio(text string, maxTokens, tokens int) string {
	r := []rune(text)
	keep := len(r) * maxTokens / tokens
	if keep >= len(r) {
		return text
	}
	return string(r[:keep])
}

// waitForHost applies per-domain rate limiting if a limiter is set.
func waitForHost(ctx context.Context, limiter lawwatch.DomainLimiter, pageURL string) error {
	if limiter == nil {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return lawwatch.Errorf(lawwatch.EINVALID, "invalid URL %q", pageURL)
	}
	return limiter.Wait(ctx, u.Host)
}
