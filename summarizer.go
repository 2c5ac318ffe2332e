package lawwatch

import "context"

// Summarizer produces short narrative summaries of legal news articles
// for time-constrained readers.
type Summarizer interface {
	// Summarize generates a one-paragraph summary of the article text.
	Summarize(ctx context.Context, text string) (string, error)
}
