package mock

import (
	"context"

	"github.com/fwojciec/lawwatch"
)

var _ lawwatch.FragmentService = (*FragmentService)(nil)

// FragmentService is a mock implementation of lawwatch.FragmentService.
type FragmentService struct {
	CreateFragmentFn           func(ctx context.Context, fragment *lawwatch.Fragment) error
	CreateFragmentsFn          func(ctx context.Context, fragments []*lawwatch.Fragment) error
	FindFragmentByIDFn         func(ctx context.Context, id string) (*lawwatch.Fragment, error)
	FindFragmentsFn            func(ctx context.Context, filter lawwatch.FragmentFilter) ([]*lawwatch.Fragment, error)
	DeleteFragmentsByChapterFn func(ctx context.Context, chapterID string) error
}

func (s *FragmentService) CreateFragment(ctx context.Context, fragment *lawwatch.Fragment) error {
	return s.CreateFragmentFn(ctx, fragment)
}

func (s *FragmentService) CreateFragments(ctx context.Context, fragments []*lawwatch.Fragment) error {
	return s.CreateFragmentsFn(ctx, fragments)
}

func (s *FragmentService) FindFragmentByID(ctx context.Context, id string) (*lawwatch.Fragment, error) {
	return s.FindFragmentByIDFn(ctx, id)
}

func (s *FragmentService) FindFragments(ctx context.Context, filter lawwatch.FragmentFilter) ([]*lawwatch.Fragment, error) {
	return s.FindFragmentsFn(ctx, filter)
}

func (s *FragmentService) DeleteFragmentsByChapter(ctx context.Context, chapterID string) error {
	return s.DeleteFragmentsByChapterFn(ctx, chapterID)
}
