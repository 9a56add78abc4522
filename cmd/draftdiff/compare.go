package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/draftdiff/draftdiff"
	"github.com/draftdiff/draftdiff/bloom"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	if c.Threshold < 0 || c.Threshold > 1 {
		fmt.Fprintf(deps.Stderr, "error: threshold must be between 0 and 1\n")
		return draftdiff.Errorf(draftdiff.EINVALID, "threshold must be between 0 and 1")
	}

	oldVersion, err := findVersionByName(deps, c.Old)
	if err != nil {
		return err
	}
	newVersion, err := findVersionByName(deps, c.New)
	if err != nil {
		return err
	}
	if oldVersion.ID == newVersion.ID {
		fmt.Fprintf(deps.Stderr, "error: select two different versions\n")
		return draftdiff.Errorf(draftdiff.ECONFLICT, "select two different versions")
	}

	var oldDoc, newDoc *draftdiff.ParsedDocument
	g, _ := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		oldDoc = draftdiff.Extract(oldVersion.Blocks)
		return nil
	})
	g.Go(func() error {
		newDoc = draftdiff.Extract(newVersion.Blocks)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	cmp := draftdiff.Compare(oldDoc, newDoc, draftdiff.CompareOptions{
		Threshold: &c.Threshold,
		NewFilter: func(n uint) draftdiff.ParagraphFilter {
			return bloom.NewFilter(n, 0.01)
		},
	})

	fmt.Fprint(deps.Stdout, draftdiff.FormatComparison(c.Old, c.New, cmp))

	if !c.AI {
		return nil
	}
	if deps.Summarizer == nil {
		fmt.Fprintln(deps.Stdout, "\nAI summary unavailable: GEMINI_API_KEY not set.")
		return nil
	}

	ctx, cancel := context.WithTimeout(deps.Ctx, time.Duration(c.AITimeout)*time.Second)
	defer cancel()

	summary, err := deps.Summarizer.Summarize(ctx, draftdiff.SummaryRequest{
		OldName:       c.Old,
		NewName:       c.New,
		OldParagraphs: cmp.OldParagraphs,
		NewParagraphs: cmp.NewParagraphs,
		HeadingNotes:  draftdiff.AlignmentNotes(cmp.Alignment),
	})
	if err != nil {
		fmt.Fprintf(deps.Stdout, "\nAI summary unavailable: %s\n", draftdiff.ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nAI summary:\n%s\n", summary)
	return nil
}
