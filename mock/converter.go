package mock

import "github.com/fwojciec/wikidump"

var _ wikidump.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikidump.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
