// Package rod provides a Chrome-based implementation of the lawwatch
// Fetcher for pages that require JavaScript to render their content.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/lawwatch"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds the time spent rendering a single page.
const DefaultFetchTimeout = 30 * time.Second

// serializeJS serializes the rendered document to HTML, descending into
// open shadow roots so web-component content survives serialization.
// outerHTML alone drops shadow DOM subtrees.
const serializeJS = `() => {
	const serialize = (root) => {
		let html = "";
		for (const node of root.childNodes) {
			if (node.nodeType === Node.ELEMENT_NODE) {
				const clone = node.cloneNode(false);
				let inner = serialize(node);
				if (node.shadowRoot) {
					inner = serialize(node.shadowRoot) + inner;
				}
				clone.innerHTML = inner;
				html += clone.outerHTML;
			} else if (node.nodeType === Node.TEXT_NODE) {
				html += node.textContent;
			} else if (node.nodeType === Node.COMMENT_NODE) {
				html += "<!--" + node.textContent + "-->";
			}
		}
		return html;
	};
	const doc = document.documentElement.cloneNode(false);
	doc.innerHTML = serialize(document.documentElement);
	return "<!DOCTYPE html>\n" + doc.outerHTML;
}`

// Ensure Fetcher implements lawwatch.Fetcher at compile time.
var _ lawwatch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser      *rod.Browser
	launcher     *launcher.Launcher
	fetchTimeout time.Duration
	closed       atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page rendering timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.fetchTimeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Leakless(true).Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", lawwatch.Errorf(lawwatch.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	result, err := page.Eval(serializeJS)
	if err != nil {
		return "", err
	}

	return result.Value.Str(), nil
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if f.browser != nil {
		err = f.browser.Close()
	}
	if f.launcher != nil {
		f.launcher.Kill()
	}
	return err
}
