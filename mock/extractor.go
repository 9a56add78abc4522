package mock

import (
	"github.com/draftdiff/draftdiff"
)

var _ draftdiff.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of draftdiff.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*draftdiff.PageContent, error)
}

func (e *ContentExtractor) Extract(html string) (*draftdiff.PageContent, error) {
	return e.ExtractFn(html)
}
