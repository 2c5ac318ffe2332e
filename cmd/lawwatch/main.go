package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lawwatch"
	"github.com/fwojciec/lawwatch/crawl"
	"github.com/fwojciec/lawwatch/gemini"
	"github.com/fwojciec/lawwatch/goquery"
	"github.com/fwojciec/lawwatch/htmltomarkdown"
	lawhttp "github.com/fwojciec/lawwatch/http"
	"github.com/fwojciec/lawwatch/rod"
	lawslog "github.com/fwojciec/lawwatch/slog"
	"github.com/fwojciec/lawwatch/sqlite"
	"github.com/fwojciec/lawwatch/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ChapterService  lawwatch.ChapterService
	FragmentService lawwatch.FragmentService
	HeadlineService lawwatch.HeadlineService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lawwatch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lawwatch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LAWWATCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ChapterService = sqlite.NewChapterService(m.DB)
	m.FragmentService = sqlite.NewFragmentService(m.DB)
	m.HeadlineService = sqlite.NewHeadlineService(m.DB)
	deps.DB = m.DB
	deps.Chapters = m.ChapterService
	deps.Fragments = m.FragmentService
	deps.Headlines = m.HeadlineService

	// Wire command-specific dependencies based on command
	if cmd == "chapters" {
		fetcher := lawhttp.NewFetcher()
		defer fetcher.Close()

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Discoverer:  goquery.NewDiscoverer(),
			Extractor:   goquery.NewExtractor(),
			Chapters:    m.ChapterService,
			Fragments:   m.FragmentService,
			RateLimiter: crawl.NewDomainLimiter(1.0),
			Concurrency: cli.Chapters.Concurrency,
		}
	}

	if cmd == "headlines" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		var fetcher lawwatch.Fetcher
		if cli.Headlines.Browser {
			manager, err := rod.NewBrowserManager()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rod.NewManagedFetcher(manager)
		} else {
			fetcher = lawhttp.NewFetcher()
		}
		defer fetcher.Close()

		tokenCounter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return fmt.Errorf("failed to create token counter: %w", err)
		}

		var feed lawwatch.FeedService = lawhttp.NewFeedService(nil)
		var summarizer lawwatch.Summarizer = gemini.NewSummarizer(client)
		if cli.Headlines.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			feed = lawslog.NewLoggingFeedService(feed, logger)
			summarizer = lawslog.NewLoggingSummarizer(summarizer, logger)
			fetcher = rod.NewLoggingFetcher(fetcher, logger)
		}

		deps.Ingestor = &crawl.HeadlineIngestor{
			Feed:             feed,
			Headlines:        m.HeadlineService,
			Fetcher:          fetcher,
			Extractor:        trafilatura.NewExtractor(),
			Converter:        htmltomarkdown.NewConverter(),
			Summarizer:       summarizer,
			TokenCounter:     tokenCounter,
			RateLimiter:      crawl.NewDomainLimiter(1.0),
			MaxAgeDays:       cli.Headlines.MaxAge,
			MaxSummaryTokens: maxSummaryTokens,
		}
	}

	return kongCtx.Run(deps)
}

// tokenizerModel is used for token counting.
const tokenizerModel = "gemini-2.5-flash"

// maxSummaryTokens caps the article text sent to the summarizer; far
// below the model context limit but generous for news articles.
const maxSummaryTokens = 100000

func defaultDBPath() string {
	if path := os.Getenv("LAWWATCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "lawwatch.db"
	}
	dir := filepath.Join(home, ".lawwatch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "lawwatch.db")
}
