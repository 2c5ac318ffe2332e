package main

import (
	"fmt"

	"github.com/fwojciec/lawwatch"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return lawwatch.Errorf(lawwatch.EINVALID, "use --force to confirm deletion")
	}

	chapter, err := deps.Chapters.FindChapterByID(deps.Ctx, c.ChapterID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: chapter %q not found. Use 'lawwatch list' to see stored chapters.\n", c.ChapterID)
		return err
	}

	if err := deps.Chapters.DeleteChapter(deps.Ctx, chapter.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", lawwatch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted chapter %q\n", chapter.Title)
	return nil
}
