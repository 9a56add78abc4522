// Package draftdiff compares versions of SEO content drafts. It extracts
// structured content (metadata fields, headings, body paragraphs) from
// document versions, computes a structural diff between two versions, and
// optionally asks an external language model to summarize body changes.
//
// This package contains domain types and the pure extraction and diff core
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/,
// gemini/, docx/).
package draftdiff
