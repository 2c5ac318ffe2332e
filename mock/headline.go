package mock

import (
	"context"

	"github.com/fwojciec/lawwatch"
)

var _ lawwatch.HeadlineService = (*HeadlineService)(nil)

// HeadlineService is a mock implementation of lawwatch.HeadlineService.
type HeadlineService struct {
	CreateHeadlineFn   func(ctx context.Context, headline *lawwatch.Headline) error
	FindHeadlineByIDFn func(ctx context.Context, id string) (*lawwatch.Headline, error)
	FindHeadlinesFn    func(ctx context.Context, filter lawwatch.HeadlineFilter) ([]*lawwatch.Headline, error)
	DeleteHeadlineFn   func(ctx context.Context, id string) error
}

func (s *HeadlineService) CreateHeadline(ctx context.Context, headline *lawwatch.Headline) error {
	return s.CreateHeadlineFn(ctx, headline)
}

func (s *HeadlineService) FindHeadlineByID(ctx context.Context, id string) (*lawwatch.Headline, error) {
	return s.FindHeadlineByIDFn(ctx, id)
}

func (s *HeadlineService) FindHeadlines(ctx context.Context, filter lawwatch.HeadlineFilter) ([]*lawwatch.Headline, error) {
	return s.FindHeadlinesFn(ctx, filter)
}

func (s *HeadlineService) DeleteHeadline(ctx context.Context, id string) error {
	return s.DeleteHeadlineFn(ctx, id)
}

var _ lawwatch.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of lawwatch.FeedService.
type FeedService struct {
	FetchEntriesFn func(ctx context.Context, feedURL string) ([]lawwatch.FeedEntry, error)
}

func (s *FeedService) FetchEntries(ctx context.Context, feedURL string) ([]lawwatch.FeedEntry, error) {
	return s.FetchEntriesFn(ctx, feedURL)
}

var _ lawwatch.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of lawwatch.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, text string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.SummarizeFn(ctx, text)
}
