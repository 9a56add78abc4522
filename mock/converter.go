package mock

import (
	"github.com/draftdiff/draftdiff"
)

var _ draftdiff.Converter = (*Converter)(nil)

// Converter is a mock implementation of draftdiff.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
