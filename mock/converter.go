package mock

import "kbingest"

var _ kbingest.Converter = (*Converter)(nil)

// Converter is a mock implementation of kbingest.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
