package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fwojciec/lawwatch"
	main "github.com/fwojciec/lawwatch/cmd/lawwatch"
	"github.com/fwojciec/lawwatch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsCmd_Run(t *testing.T) {
	t.Parallel()

	headlines := []*lawwatch.Headline{
		{
			ID:          "guid-1",
			Category:    "Judgments",
			Title:       "Court of Appeal clarifies the penalty rule",
			SourceURL:   "https://www.singaporelawwatch.sg/Headlines/court-of-appeal-clarifies",
			Summary:     "The Court of Appeal held that the penalty rule applies only to secondary obligations.",
			PublishedAt: time.Date(2025, 8, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "guid-2",
			Category:    "Legislation",
			Title:       "Arbitration (Amendment) Bill introduced",
			SourceURL:   "https://www.singaporelawwatch.sg/Headlines/arbitration-amendment-bill",
			Summary:     "Parliament introduced amendments to the arbitration regime.",
			PublishedAt: time.Date(2025, 8, 11, 9, 0, 0, 0, time.UTC),
		},
	}

	t.Run("lists headlines with date, category, and title", func(t *testing.T) {
		t.Parallel()

		service := &mock.HeadlineService{
			FindHeadlinesFn: func(_ context.Context, _ lawwatch.HeadlineFilter) ([]*lawwatch.Headline, error) {
				return headlines, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Headlines: service,
		}

		err := (&main.NewsCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "2025-08-12  [Judgments] Court of Appeal clarifies the penalty rule")
		assert.Contains(t, output, "2025-08-11  [Legislation] Arbitration (Amendment) Bill introduced")
		assert.NotContains(t, output, "secondary obligations")
	})

	t.Run("shows summaries and URLs with --full", func(t *testing.T) {
		t.Parallel()

		service := &mock.HeadlineService{
			FindHeadlinesFn: func(_ context.Context, _ lawwatch.HeadlineFilter) ([]*lawwatch.Headline, error) {
				return headlines[:1], nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Headlines: service,
		}

		err := (&main.NewsCmd{Limit: 20, Full: true}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "applies only to secondary obligations")
		assert.Contains(t, output, "https://www.singaporelawwatch.sg/Headlines/court-of-appeal-clarifies")
	})

	t.Run("passes the category filter and limit through", func(t *testing.T) {
		t.Parallel()

		var gotFilter lawwatch.HeadlineFilter
		service := &mock.HeadlineService{
			FindHeadlinesFn: func(_ context.Context, filter lawwatch.HeadlineFilter) ([]*lawwatch.Headline, error) {
				gotFilter = filter
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Headlines: service,
		}

		err := (&main.NewsCmd{Category: "Judgments", Limit: 5}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, gotFilter.Category)
		assert.Equal(t, "Judgments", *gotFilter.Category)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when no headlines exist", func(t *testing.T) {
		t.Parallel()

		service := &mock.HeadlineService{
			FindHeadlinesFn: func(_ context.Context, _ lawwatch.HeadlineFilter) ([]*lawwatch.Headline, error) {
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Headlines: service,
		}

		err := (&main.NewsCmd{Limit: 20}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No headlines found")
	})
}
