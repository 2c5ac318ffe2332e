package mock

import "github.com/fwojciec/lawwatch"

var _ lawwatch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lawwatch.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*lawwatch.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*lawwatch.ExtractResult, error) {
	return e.ExtractFn(html)
}
