package main

import (
	"fmt"

	"github.com/fwojciec/lawwatch"
)

// Run executes the fragments command.
func (c *FragmentsCmd) Run(deps *Dependencies) error {
	chapter, err := deps.Chapters.FindChapterByID(deps.Ctx, c.ChapterID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: chapter %q not found. Use 'lawwatch list' to see stored chapters.\n", c.ChapterID)
		return err
	}

	fragments, err := deps.Fragments.FindFragments(deps.Ctx, lawwatch.FragmentFilter{
		ChapterID: &chapter.ID,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawwatch.ErrorMessage(err))
		return err
	}

	if len(fragments) == 0 {
		fmt.Fprintf(deps.Stderr, "error: chapter %q has no fragments. Re-run 'lawwatch chapters' to scrape it.\n", chapter.Title)
		return lawwatch.Errorf(lawwatch.ENOTFOUND, "chapter %q has no fragments", chapter.ID)
	}

	fmt.Fprintf(deps.Stdout, "Fragments for %s (%d total):\n\n", chapter.Title, len(fragments))
	for _, f := range fragments {
		if c.Full {
			fmt.Fprintf(deps.Stdout, "--- %s (%d chars)\n%s\n\n", f.ID, f.CharCount, f.Content)
			continue
		}
		fmt.Fprintf(deps.Stdout, "  %3d. %s (%d chars)\n", f.Order, f.ID, f.CharCount)
	}

	return nil
}
