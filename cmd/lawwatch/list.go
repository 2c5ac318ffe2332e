package main

import (
	"fmt"

	"github.com/fwojciec/lawwatch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := lawwatch.ChapterFilter{}
	if c.Section != "" {
		filter.Section = &c.Section
	}

	chapters, err := deps.Chapters.FindChapters(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawwatch.ErrorMessage(err))
		return err
	}

	if len(chapters) == 0 {
		fmt.Fprintln(deps.Stdout, "No chapters found. Use 'lawwatch chapters' to scrape them.")
		return nil
	}

	for _, ch := range chapters {
		fmt.Fprintf(deps.Stdout, "%s  %-22s  %s\n", ch.ID, ch.Section, ch.Title)
	}

	return nil
}
