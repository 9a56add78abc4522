package mock

import (
	"context"

	"github.com/draftdiff/draftdiff"
)

var _ draftdiff.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of draftdiff.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, req draftdiff.SummaryRequest) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, req draftdiff.SummaryRequest) (string, error) {
	return s.SummarizeFn(ctx, req)
}
