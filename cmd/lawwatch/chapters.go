package main

import (
	"fmt"

	"github.com/fwojciec/lawwatch/crawl"
)

// Run executes the chapters command.
func (c *ChaptersCmd) Run(deps *Dependencies) error {
	if deps.Crawler == nil {
		return fmt.Errorf("crawler not configured")
	}

	if c.Concurrency > 0 {
		deps.Crawler.Concurrency = c.Concurrency
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d chapters\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		case crawl.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result, err := deps.Crawler.IngestSections(deps.Ctx, crawl.DefaultSections(), progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping chapters: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d chapters, %d fragments (%s)\n",
		result.Saved, result.Fragments, crawl.FormatChars(result.Chars))
	if result.Failed > 0 {
		fmt.Fprintf(deps.Stdout, "  Failed %d chapters\n", result.Failed)
	}

	return nil
}
