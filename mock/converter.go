package mock

import "github.com/fwojciec/rsdoc"

var _ rsdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of rsdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
