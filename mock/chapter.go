package mock

import (
	"context"

	"github.com/fwojciec/lawwatch"
)

var _ lawwatch.ChapterService = (*ChapterService)(nil)

// ChapterService is a mock implementation of lawwatch.ChapterService.
type ChapterService struct {
	CreateChapterFn   func(ctx context.Context, chapter *lawwatch.Chapter) error
	FindChapterByIDFn func(ctx context.Context, id string) (*lawwatch.Chapter, error)
	FindChaptersFn    func(ctx context.Context, filter lawwatch.ChapterFilter) ([]*lawwatch.Chapter, error)
	DeleteChapterFn   func(ctx context.Context, id string) error
}

func (s *ChapterService) CreateChapter(ctx context.Context, chapter *lawwatch.Chapter) error {
	return s.CreateChapterFn(ctx, chapter)
}

func (s *ChapterService) FindChapterByID(ctx context.Context, id string) (*lawwatch.Chapter, error) {
	return s.FindChapterByIDFn(ctx, id)
}

func (s *ChapterService) FindChapters(ctx context.Context, filter lawwatch.ChapterFilter) ([]*lawwatch.Chapter, error) {
	return s.FindChaptersFn(ctx, filter)
}

func (s *ChapterService) DeleteChapter(ctx context.Context, id string) error {
	return s.DeleteChapterFn(ctx, id)
}

var _ lawwatch.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of lawwatch.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverChapterLinksFn func(html, baseURL, section string) ([]lawwatch.ChapterLink, error)
}

func (d *LinkDiscoverer) DiscoverChapterLinks(html, baseURL, section string) ([]lawwatch.ChapterLink, error) {
	return d.DiscoverChapterLinksFn(html, baseURL, section)
}

var _ lawwatch.ChapterExtractor = (*ChapterExtractor)(nil)

// ChapterExtractor is a mock implementation of lawwatch.ChapterExtractor.
type ChapterExtractor struct {
	ExtractBlocksFn func(html string) ([]lawwatch.ContentBlock, error)
}

func (e *ChapterExtractor) ExtractBlocks(html string) ([]lawwatch.ContentBlock, error) {
	return e.ExtractBlocksFn(html)
}
