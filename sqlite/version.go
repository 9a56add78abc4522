package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/draftdiff/draftdiff"
)

// Compile-time interface verification.
var _ draftdiff.VersionService = (*VersionService)(nil)

// VersionService implements draftdiff.VersionService using SQLite.
type VersionService struct {
	db *DB
}

// NewVersionService creates a new VersionService.
func NewVersionService(db *DB) *VersionService {
	return &VersionService{db: db}
}

// hashBlocks computes xxHash of the serialized blocks and returns a hex
// string. The hash identifies identical content stored under two names.
func hashBlocks(blocks []byte) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64(blocks))
	return hex.EncodeToString(b)
}

// CreateVersion stores a new version.
func (s *VersionService) CreateVersion(ctx context.Context, v *draftdiff.Version) error {
	if err := v.Validate(); err != nil {
		return err
	}

	existing, err := s.FindVersions(ctx, draftdiff.VersionFilter{Name: &v.Name})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return draftdiff.Errorf(draftdiff.ECONFLICT, "version %q already exists", v.Name)
	}

	blocks, err := json.Marshal(v.Blocks)
	if err != nil {
		return fmt.Errorf("failed to encode blocks: %w", err)
	}

	v.ID = uuid.New().String()
	v.CreatedAt = time.Now().UTC()
	v.ContentHash = hashBlocks(blocks)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO versions (id, name, source, kind, blocks, markdown, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, v.ID, v.Name, v.Source, v.Kind, string(blocks), v.Markdown, v.ContentHash,
		v.CreatedAt.Format(time.RFC3339))

	return err
}

// FindVersionByID retrieves a version by ID.
func (s *VersionService) FindVersionByID(ctx context.Context, id string) (*draftdiff.Version, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, source, kind, blocks, markdown, content_hash, created_at
		FROM versions
		WHERE id = ?
	`, id)

	v, err := scanVersion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, draftdiff.Errorf(draftdiff.ENOTFOUND, "version not found")
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// FindVersions retrieves versions matching the filter, newest first.
func (s *VersionService) FindVersions(ctx context.Context, filter draftdiff.VersionFilter) ([]*draftdiff.Version, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source, kind, blocks, markdown, content_hash, created_at FROM versions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []*draftdiff.Version
	for rows.Next() {
		v, err := scanVersion(rows.Scan)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}

	return versions, rows.Err()
}

// DeleteVersion permanently removes a version.
func (s *VersionService) DeleteVersion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM versions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return draftdiff.Errorf(draftdiff.ENOTFOUND, "version not found")
	}
	return nil
}

// scanVersion reads one versions row through the given scan function.
func scanVersion(scan func(dest ...any) error) (*draftdiff.Version, error) {
	var v draftdiff.Version
	var blocks, createdAt string

	if err := scan(&v.ID, &v.Name, &v.Source, &v.Kind, &blocks, &v.Markdown,
		&v.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(blocks), &v.Blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocks: %w", err)
	}

	var err error
	v.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &v, nil
}
