package main

import (
	"fmt"

	"github.com/draftdiff/draftdiff"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	if c.Markdown && c.Extract {
		fmt.Fprintf(deps.Stderr, "error: --markdown and --extract are mutually exclusive\n")
		return draftdiff.Errorf(draftdiff.EINVALID, "--markdown and --extract are mutually exclusive")
	}

	v, err := findVersionByName(deps, c.Name)
	if err != nil {
		return err
	}

	if c.Markdown {
		if v.Markdown == "" {
			fmt.Fprintf(deps.Stderr, "error: version %q has no markdown rendition\n", c.Name)
			return draftdiff.Errorf(draftdiff.ENOTFOUND, "version %q has no markdown rendition", c.Name)
		}
		fmt.Fprintln(deps.Stdout, v.Markdown)
		return nil
	}

	doc := draftdiff.Extract(v.Blocks)

	fmt.Fprintf(deps.Stdout, "%s (%s, %s)\n", v.Name, v.Kind, v.Source)
	fmt.Fprintf(deps.Stdout, "hash %s, created %s\n\n", v.ContentHash, v.CreatedAt.Format("2006-01-02 15:04"))

	fmt.Fprintln(deps.Stdout, "Metadata:")
	for _, field := range draftdiff.MetaFields {
		fmt.Fprintf(deps.Stdout, "  %s: %q\n", field, doc.Meta[field])
	}

	fmt.Fprintln(deps.Stdout, "\nHeadings:")
	if len(doc.Headings) == 0 {
		fmt.Fprintln(deps.Stdout, "  (none)")
	}
	for _, h := range doc.Headings {
		fmt.Fprintf(deps.Stdout, "  %s\n", h)
	}

	fmt.Fprintf(deps.Stdout, "\nParagraphs: %d\n", len(doc.Paragraphs))
	return nil
}

// findVersionByName resolves a version name, printing guidance when missing.
func findVersionByName(deps *Dependencies, name string) (*draftdiff.Version, error) {
	versions, err := deps.Versions.FindVersions(deps.Ctx, draftdiff.VersionFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return nil, err
	}
	if len(versions) == 0 {
		fmt.Fprintf(deps.Stderr, "error: version %q not found. Use 'draftdiff list' to see stored versions.\n", name)
		return nil, draftdiff.Errorf(draftdiff.ENOTFOUND, "version %q not found", name)
	}
	return versions[0], nil
}
