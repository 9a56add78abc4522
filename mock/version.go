package mock

import (
	"context"

	"github.com/draftdiff/draftdiff"
)

var _ draftdiff.VersionService = (*VersionService)(nil)

// VersionService is a mock implementation of draftdiff.VersionService.
type VersionService struct {
	CreateVersionFn   func(ctx context.Context, v *draftdiff.Version) error
	FindVersionByIDFn func(ctx context.Context, id string) (*draftdiff.Version, error)
	FindVersionsFn    func(ctx context.Context, filter draftdiff.VersionFilter) ([]*draftdiff.Version, error)
	DeleteVersionFn   func(ctx context.Context, id string) error
}

func (s *VersionService) CreateVersion(ctx context.Context, v *draftdiff.Version) error {
	return s.CreateVersionFn(ctx, v)
}

func (s *VersionService) FindVersionByID(ctx context.Context, id string) (*draftdiff.Version, error) {
	return s.FindVersionByIDFn(ctx, id)
}

func (s *VersionService) FindVersions(ctx context.Context, filter draftdiff.VersionFilter) ([]*draftdiff.Version, error) {
	return s.FindVersionsFn(ctx, filter)
}

func (s *VersionService) DeleteVersion(ctx context.Context, id string) error {
	return s.DeleteVersionFn(ctx, id)
}
