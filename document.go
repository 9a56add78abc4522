package draftdiff

import (
	"context"
	"time"
)

// Canonical metadata field names.
const (
	FieldMetaTitle       = "Meta Title"
	FieldMetaDescription = "Meta Description"
	FieldURL             = "URL"
	FieldH1              = "H1"
)

// MetaFields lists the canonical metadata fields in display order.
var MetaFields = []string{FieldMetaTitle, FieldMetaDescription, FieldURL, FieldH1}

// Blocks is the ordered text content of one document version as produced by
// a format adapter (docx, goquery). Body paragraphs come first in document
// order; tables follow as rows of cells, with a cell's internal paragraphs
// joined by newlines.
type Blocks struct {
	Paragraphs []string     `json:"paragraphs"`
	Tables     [][][]string `json:"tables,omitempty"`
}

// Heading is a single markup-style heading (e.g. "H2: Pricing") extracted
// from a document.
type Heading struct {
	Tag  string `json:"tag"` // H1 through H6
	Text string `json:"text"`
}

// String returns the canonical single-string form used for alignment and
// display.
func (h Heading) String() string { return h.Tag + ": " + h.Text }

// IsZero reports whether the heading has neither tag nor text.
func (h Heading) IsZero() bool { return h.Tag == "" && h.Text == "" }

// ParsedDocument is the complete output of extraction for one version:
// metadata fields, headings, and body paragraphs as separate ordered
// sequences. The original interleaving of headings and paragraphs is not
// preserved.
type ParsedDocument struct {
	Meta       map[string]string `json:"meta"`
	Headings   []Heading         `json:"headings"`
	Paragraphs []string          `json:"paragraphs"`
}

// Version kinds.
const (
	KindDocx = "docx"
	KindHTML = "html"
	KindURL  = "url"
)

// Version represents one stored document version (a content brief, draft, or
// fetched live page) available for comparison.
type Version struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"` // file path or URL the content came from
	Kind        string    `json:"kind"`   // docx, html, or url
	Blocks      *Blocks   `json:"blocks"`
	Markdown    string    `json:"markdown,omitempty"` // readable rendition, set for fetched pages
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the version contains invalid fields.
func (v *Version) Validate() error {
	if v.Name == "" {
		return Errorf(EINVALID, "version name required")
	}
	if v.Blocks == nil {
		return Errorf(EINVALID, "version content required")
	}
	return nil
}

// VersionService represents a service for managing stored document versions.
type VersionService interface {
	// CreateVersion stores a new version.
	// Returns ECONFLICT if a version with the same name already exists.
	CreateVersion(ctx context.Context, v *Version) error

	// FindVersionByID retrieves a version by ID.
	// Returns ENOTFOUND if the version does not exist.
	FindVersionByID(ctx context.Context, id string) (*Version, error)

	// FindVersions retrieves versions matching the filter.
	FindVersions(ctx context.Context, filter VersionFilter) ([]*Version, error)

	// DeleteVersion permanently removes a version.
	// Returns ENOTFOUND if the version does not exist.
	DeleteVersion(ctx context.Context, id string) error
}

// VersionFilter represents a filter for FindVersions.
type VersionFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
