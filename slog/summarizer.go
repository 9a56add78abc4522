package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/draftdiff/draftdiff"
)

// Ensure LoggingSummarizer implements draftdiff.Summarizer.
var _ draftdiff.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next   draftdiff.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next draftdiff.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the operation.
func (s *LoggingSummarizer) Summarize(ctx context.Context, req draftdiff.SummaryRequest) (summary string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("ai summary",
			"old", req.OldName,
			"new", req.NewName,
			"bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, req)
}
