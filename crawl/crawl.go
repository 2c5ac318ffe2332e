// Package crawl provides ingestion orchestration. It coordinates chapter
// discovery on the section home pages, fetching, block extraction,
// fragment assembly, and storage, plus the Headlines feed pipeline.
package crawl

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/lawwatch"
	"github.com/fwojciec/lawwatch/bloom"
	"github.com/fwojciec/lawwatch/sqlite"
	"golang.org/x/sync/errgroup"
)

// Section pairs a section home page URL with its display name.
type Section struct {
	URL  string
	Name string
}

// DefaultSections returns the legal-reference section home pages.
func DefaultSections() []Section {
	return []Section{
		{URL: "https://www.singaporelawwatch.sg/About-Singapore-Law/Overview", Name: "Overview"},
		{URL: "https://www.singaporelawwatch.sg/About-Singapore-Law/Commercial-Law", Name: "Commercial Law"},
		{URL: "https://www.singaporelawwatch.sg/About-Singapore-Law/Singapore-Legal-System", Name: "Singapore Legal System"},
	}
}

// Dedup filter sizing. The site lists well under a thousand chapters,
// so this keeps false positives negligible.
const (
	dedupExpectedURLs      = 10000
	dedupFalsePositiveRate = 0.01
)

// Crawler orchestrates chapter ingestion: discovery on the section home
// pages followed by per-chapter scrape, fragment assembly and storage.
type Crawler struct {
	Fetcher     lawwatch.Fetcher
	Discoverer  lawwatch.LinkDiscoverer
	Extractor   lawwatch.ChapterExtractor
	Chapters    lawwatch.ChapterService
	Fragments   lawwatch.FragmentService
	RateLimiter lawwatch.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Now         func() time.Time
}

// Result holds the outcome of an ingestion run.
type Result struct {
	Saved     int
	Failed    int
	Fragments int
	Chars     int
}

// ProgressEvent reports progress during an ingestion run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting ingestion progress.
type ProgressFunc func(event ProgressEvent)

// chapterResult holds the outcome of processing a single chapter page.
type chapterResult struct {
	link      lawwatch.ChapterLink
	fragments []*lawwatch.Fragment
	chars     int
	err       error
}

// IngestSections discovers chapters across the given section home pages
// and scrapes each one. Chapters found on more than one section page are
// processed once. The progress callback, if provided, receives events as
// ingestion proceeds.
func (c *Crawler) IngestSections(ctx context.Context, sections []Section, progress ProgressFunc) (*Result, error) {
	if len(sections) == 0 {
		sections = DefaultSections()
	}

	links, err := c.discoverChapters(ctx, sections)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return &Result{}, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan chapterResult, len(links))

	var completed atomic.Int64
	total := len(links)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, link := range links {
			link := link
			g.Go(func() error {
				resultCh <- c.processChapter(gctx, link)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	for res := range resultCh {
		completed.Add(1)

		if res.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       res.link.URL,
					Error:     res.err,
				})
			}
			continue
		}

		if err := c.saveChapter(ctx, res); err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       res.link.URL,
					Error:     err,
				})
			}
			continue
		}

		result.Saved++
		result.Fragments += len(res.fragments)
		result.Chars += res.chars
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       res.link.URL,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &result, nil
}

// discoverChapters fetches each section home page and collects chapter
// links, deduplicating URLs across sections.
func (c *Crawler) discoverChapters(ctx context.Context, sections []Section) ([]lawwatch.ChapterLink, error) {
	seen := bloom.NewFilter(dedupExpectedURLs, dedupFalsePositiveRate)

	var links []lawwatch.ChapterLink
	for _, section := range sections {
		if err := c.waitForDomain(ctx, section.URL); err != nil {
			return nil, err
		}

		html, err := c.fetchWithRetry(ctx, section.URL)
		if err != nil {
			return nil, fmt.Errorf("fetching section %q: %w", section.Name, err)
		}

		discovered, err := c.Discoverer.DiscoverChapterLinks(html, section.URL, section.Name)
		if err != nil {
			return nil, fmt.Errorf("discovering chapters in %q: %w", section.Name, err)
		}

		for _, link := range discovered {
			if seen.Seen(link.URL) {
				continue
			}
			links = append(links, link)
		}
	}

	return links, nil
}

// processChapter fetches one chapter page and assembles its fragments.
func (c *Crawler) processChapter(ctx context.Context, link lawwatch.ChapterLink) chapterResult {
	result := chapterResult{link: link}

	if err := c.waitForDomain(ctx, link.URL); err != nil {
		result.err = err
		return result
	}

	html, err := c.fetchWithRetry(ctx, link.URL)
	if err != nil {
		result.err = err
		return result
	}

	blocks, err := c.Extractor.ExtractBlocks(html)
	if err != nil {
		result.err = err
		return result
	}

	blocks = lawwatch.GroupPseudoListItems(blocks)
	blocks = lawwatch.TruncateFooter(blocks)

	chapterID := sqlite.ChapterID(link.URL)
	result.fragments = lawwatch.AssembleFragments(chapterID, blocks)
	for _, f := range result.fragments {
		result.chars += f.CharCount
	}

	return result
}

// saveChapter persists a chapter and replaces its fragments.
func (c *Crawler) saveChapter(ctx context.Context, res chapterResult) error {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	chapter := &lawwatch.Chapter{
		ID:            sqlite.ChapterID(res.link.URL),
		URL:           res.link.URL,
		Title:         res.link.Title,
		Section:       res.link.Section,
		ContentLength: res.chars,
		ScrapedAt:     now().UTC(),
	}
	if err := c.Chapters.CreateChapter(ctx, chapter); err != nil {
		return err
	}

	// Re-scrapes replace the fragment set, so stale fragments from a
	// previous page version don't linger.
	if err := c.Fragments.DeleteFragmentsByChapter(ctx, chapter.ID); err != nil {
		return err
	}
	return c.Fragments.CreateFragments(ctx, res.fragments)
}

// fetchWithRetry fetches a URL using the configured retry delays.
func (c *Crawler) fetchWithRetry(ctx context.Context, pageURL string) (string, error) {
	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, nil, delays)
}

// waitForDomain applies per-domain rate limiting if configured.
func (c *Crawler) waitForDomain(ctx context.Context, pageURL string) error {
	return waitForHost(ctx, c.RateLimiter, pageURL)
}
