package mock

import "github.com/fwojciec/maildoc"

var _ maildoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of maildoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
