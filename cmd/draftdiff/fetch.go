package main

import (
	"fmt"

	"github.com/draftdiff/draftdiff"
	"github.com/draftdiff/draftdiff/goquery"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	page, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	blocks, err := goquery.Parse(page.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	markdown, err := deps.Converter.Convert(page.ContentHTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	v := &draftdiff.Version{
		Name:     c.Name,
		Source:   c.URL,
		Kind:     draftdiff.KindURL,
		Blocks:   blocks,
		Markdown: markdown,
	}
	if err := deps.Versions.CreateVersion(deps.Ctx, v); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", draftdiff.ErrorMessage(err))
		return err
	}

	title := page.Title
	if title == "" {
		title = c.URL
	}
	fmt.Fprintf(deps.Stdout, "Fetched %q as version %q (%d paragraphs)\n",
		title, v.Name, len(blocks.Paragraphs))
	return nil
}
