package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/draftdiff/draftdiff"
	"github.com/draftdiff/draftdiff/docx"
	"github.com/draftdiff/draftdiff/goquery"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	blocks, kind, err := readFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	v := &draftdiff.Version{
		Name:   c.Name,
		Source: c.Path,
		Kind:   kind,
		Blocks: blocks,
	}
	if err := deps.Versions.CreateVersion(deps.Ctx, v); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added version %q (%s, %d paragraphs, %d tables)\n",
		v.Name, v.Kind, len(blocks.Paragraphs), len(blocks.Tables))
	return nil
}

// readFile loads content blocks from a local draft file, dispatching on the
// file extension.
func readFile(path string) (*draftdiff.Blocks, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		blocks, err := docx.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		return blocks, draftdiff.KindDocx, nil
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		blocks, err := goquery.Parse(string(data))
		if err != nil {
			return nil, "", err
		}
		return blocks, draftdiff.KindHTML, nil
	default:
		return nil, "", draftdiff.Errorf(draftdiff.EINVALID, "unsupported file type %q, expected .docx or .html", filepath.Ext(path))
	}
}
