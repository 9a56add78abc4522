package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/draftdiff/draftdiff"
)

// Ensure LoggingVersionService implements draftdiff.VersionService.
var _ draftdiff.VersionService = (*LoggingVersionService)(nil)

// LoggingVersionService wraps a VersionService with debug logging.
type LoggingVersionService struct {
	next   draftdiff.VersionService
	logger *slog.Logger
}

// NewLoggingVersionService creates a new LoggingVersionService.
func NewLoggingVersionService(next draftdiff.VersionService, logger *slog.Logger) *LoggingVersionService {
	return &LoggingVersionService{next: next, logger: logger}
}

// CreateVersion delegates to the wrapped service and logs the operation.
func (s *LoggingVersionService) CreateVersion(ctx context.Context, v *draftdiff.Version) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create version",
			"name", v.Name,
			"kind", v.Kind,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateVersion(ctx, v)
}

// FindVersionByID delegates to the wrapped service and logs the operation.
func (s *LoggingVersionService) FindVersionByID(ctx context.Context, id string) (v *draftdiff.Version, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find version",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindVersionByID(ctx, id)
}

// FindVersions delegates to the wrapped service and logs the operation.
func (s *LoggingVersionService) FindVersions(ctx context.Context, filter draftdiff.VersionFilter) (versions []*draftdiff.Version, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list versions",
			"count", len(versions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindVersions(ctx, filter)
}

// DeleteVersion delegates to the wrapped service and logs the operation.
func (s *LoggingVersionService) DeleteVersion(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete version",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteVersion(ctx, id)
}
