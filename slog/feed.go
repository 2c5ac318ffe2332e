// Package slog provides logging decorators for lawwatch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lawwatch"
)

// Ensure LoggingFeedService implements lawwatch.FeedService.
var _ lawwatch.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with debug logging.
type LoggingFeedService struct {
	next   lawwatch.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next lawwatch.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// FetchEntries delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) FetchEntries(ctx context.Context, feedURL string) (entries []lawwatch.FeedEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed fetch",
			"url", feedURL,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchEntries(ctx, feedURL)
}
