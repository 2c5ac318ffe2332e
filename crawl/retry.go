package crawl

import (
	"context"
	"time"
)

// FetchFunc fetches the HTML at url.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives retry notices in printf form.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff schedule for page fetches.
// singaporelawwatch.sg intermittently serves transient errors under
// load; three retries at 1s, 2s, 4s ride those out while staying within
// the crawl's politeness budget.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches a URL with the default backoff schedule.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logger, DefaultRetryDelays())
}

// FetchWithRetryDelays fetches a URL, retrying once per entry in delays
// and sleeping that entry's duration first. The logger, if provided, is
// called before each retry. Tests pass zero delays to avoid sleeping.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if attempt == len(delays) {
			return "", lastErr
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}
