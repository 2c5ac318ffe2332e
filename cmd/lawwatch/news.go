package main

import (
	"fmt"

	"github.com/fwojciec/lawwatch"
)

// Run executes the news command.
func (c *NewsCmd) Run(deps *Dependencies) error {
	filter := lawwatch.HeadlineFilter{Limit: c.Limit}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	headlines, err := deps.Headlines.FindHeadlines(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawwatch.ErrorMessage(err))
		return err
	}

	if len(headlines) == 0 {
		fmt.Fprintln(deps.Stdout, "No headlines found. Use 'lawwatch headlines' to ingest the feed.")
		return nil
	}

	for _, h := range headlines {
		fmt.Fprintf(deps.Stdout, "%s  [%s] %s\n", h.PublishedAt.Format("2006-01-02"), h.Category, h.Title)
		if c.Full {
			fmt.Fprintf(deps.Stdout, "    %s\n    %s\n\n", h.Summary, h.SourceURL)
		}
	}

	return nil
}
