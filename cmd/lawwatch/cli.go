package main

import (
	"context"
	"io"

	"github.com/fwojciec/lawwatch"
	"github.com/fwojciec/lawwatch/crawl"
	"github.com/fwojciec/lawwatch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Chapters  lawwatch.ChapterService
	Fragments lawwatch.FragmentService
	Headlines lawwatch.HeadlineService
	Crawler   *crawl.Crawler
	Ingestor  *crawl.HeadlineIngestor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Chapters  ChaptersCmd  `cmd:"" help:"Scrape the legal-reference chapters into fragments"`
	Headlines HeadlinesCmd `cmd:"" help:"Ingest the Headlines RSS feed with AI summaries"`
	List      ListCmd      `cmd:"" help:"List stored chapters"`
	Fragments FragmentsCmd `cmd:"" help:"List fragments for a chapter"`
	News      NewsCmd      `cmd:"" help:"List stored headlines"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a chapter and its fragments"`
}

// ChaptersCmd is the "chapters" subcommand.
type ChaptersCmd struct {
	Concurrency int `short:"c" default:"4" help:"Concurrent fetch limit"`
}

// HeadlinesCmd is the "headlines" subcommand.
type HeadlinesCmd struct {
	Feed    string `help:"RSS feed URL (defaults to the Headlines feed)"`
	Browser bool   `short:"b" help:"Render article pages in a headless browser"`
	MaxAge  int    `default:"60" help:"Skip entries older than this many days"`
	Verbose bool   `short:"v" help:"Log feed and summarizer activity"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Section string `short:"s" help:"Filter by section name"`
}

// FragmentsCmd is the "fragments" subcommand.
type FragmentsCmd struct {
	ChapterID string `arg:"" help:"Chapter ID"`
	Full      bool   `help:"Show full fragment content"`
}

// NewsCmd is the "news" subcommand.
type NewsCmd struct {
	Category string `help:"Filter by feed category"`
	Limit    int    `default:"20" help:"Maximum headlines to show"`
	Full     bool   `help:"Show article summaries"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ChapterID string `arg:"" help:"Chapter ID"`
	Force     bool   `help:"Confirm deletion"`
}
