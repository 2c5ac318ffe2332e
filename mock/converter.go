package mock

import "github.com/fwojciec/lawwatch"

var _ lawwatch.Converter = (*Converter)(nil)

// Converter is a mock implementation of lawwatch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
