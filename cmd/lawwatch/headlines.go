package main

import (
	"fmt"

	"github.com/fwojciec/lawwatch/crawl"
)

// Run executes the headlines command.
func (c *HeadlinesCmd) Run(deps *Dependencies) error {
	if deps.Ingestor == nil {
		return fmt.Errorf("headline ingestor not configured")
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Feed has %d entries\n", event.Total)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := deps.Ingestor.IngestFeed(deps.Ctx, c.Feed, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error ingesting headlines: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d headlines (%d skipped, %d failed)\n",
		result.Saved, result.Skipped, result.Failed)

	return nil
}
