package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/lawwatch"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure ManagedFetcher implements lawwatch.Fetcher at compile time.
var _ lawwatch.Fetcher = (*ManagedFetcher)(nil)

// ManagedFetcher is a Fetcher backed by a BrowserManager, so long runs
// benefit from periodic browser recycling.
type ManagedFetcher struct {
	manager      *BrowserManager
	fetchTimeout time.Duration
	closed       atomic.Bool
}

// NewManagedFetcher creates a Fetcher that obtains its browser from the
// given manager. Closing the fetcher closes the manager.
func NewManagedFetcher(manager *BrowserManager) *ManagedFetcher {
	return &ManagedFetcher{
		manager:      manager,
		fetchTimeout: DefaultFetchTimeout,
	}
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *ManagedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", lawwatch.Errorf(lawwatch.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.fetchTimeout)
	defer cancel()

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

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

	f.manager.IncrementPageCount()
	return result.Value.Str(), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *ManagedFetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}
