// Package docx reads ordered text blocks out of .docx files.
// Only word/document.xml is consulted: body paragraphs and tables are
// returned in document order, with styling and everything else ignored.
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"github.com/draftdiff/draftdiff"
)

// ReadFile opens a .docx archive and returns its paragraph and table blocks.
func ReadFile(path string) (*draftdiff.Blocks, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx %q: %w", path, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		defer rc.Close()
		return Parse(rc)
	}

	return nil, draftdiff.Errorf(draftdiff.EINVALID, "%q is not a .docx file: word/document.xml missing", path)
}

// Parse reads a word/document.xml stream and returns its blocks. Paragraph
// text is the concatenation of the paragraph's text runs; a table cell's
// paragraphs are joined by newlines.
func Parse(r io.Reader) (*draftdiff.Blocks, error) {
	tree := etree.NewDocument()
	if _, err := tree.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}

	blocks := &draftdiff.Blocks{}
	body := childByTag(tree.Root(), "body")
	if body == nil {
		return blocks, nil
	}

	for _, el := range body.ChildElements() {
		switch el.Tag {
		case "p":
			if text := paragraphText(el); text != "" {
				blocks.Paragraphs = append(blocks.Paragraphs, text)
			}
		case "tbl":
			if rows := tableCells(el); len(rows) > 0 {
				blocks.Tables = append(blocks.Tables, rows)
			}
		}
	}
	return blocks, nil
}

// childByTag returns the first child element with the given local tag,
// ignoring namespace prefixes.
func childByTag(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	for _, ch := range el.ChildElements() {
		if ch.Tag == tag {
			return ch
		}
	}
	return nil
}

// paragraphText concatenates the w:t text runs of a w:p element. Breaks and
// tabs become spaces so words from adjacent runs don't fuse.
func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	collectRuns(p, &sb)
	return strings.TrimSpace(sb.String())
}

func collectRuns(el *etree.Element, sb *strings.Builder) {
	for _, ch := range el.ChildElements() {
		switch ch.Tag {
		case "t":
			sb.WriteString(ch.Text())
		case "br", "cr", "tab":
			sb.WriteString(" ")
		case "tbl":
			// Nested tables are out of scope.
		default:
			collectRuns(ch, sb)
		}
	}
}

// tableCells returns a w:tbl element as rows of cell text.
func tableCells(tbl *etree.Element) [][]string {
	var rows [][]string
	for _, tr := range tbl.ChildElements() {
		if tr.Tag != "tr" {
			continue
		}
		var row []string
		for _, tc := range tr.ChildElements() {
			if tc.Tag != "tc" {
				continue
			}
			var paras []string
			for _, el := range tc.ChildElements() {
				if el.Tag == "p" {
					paras = append(paras, paragraphText(el))
				}
			}
			row = append(row, strings.Join(paras, "\n"))
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
