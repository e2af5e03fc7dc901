package mock

import "github.com/jturek/wikinote"

var _ wikinote.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikinote.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
