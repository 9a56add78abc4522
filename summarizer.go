package draftdiff

import "context"

// SummaryRequest carries the material handed to the external summarizer:
// both raw paragraph sequences and the heading-diff bullet notes.
type SummaryRequest struct {
	OldName       string
	NewName       string
	OldParagraphs []string
	NewParagraphs []string
	HeadingNotes  []string
}

// Summarizer produces a natural-language summary of the differences between
// two versions' body text. Implementations call a remote model; failures
// must come back as errors, never as a silently empty summary.
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (string, error)
}
