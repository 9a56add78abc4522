package draftdiff

import (
	"fmt"
	"strings"
)

// AlignmentNotes renders a heading alignment as human-readable bullet lines.
// The lines are shared by the text report and the summarizer prompt.
func AlignmentNotes(al HeadingAlignment) []string {
	var notes []string
	for _, m := range al.Modified {
		notes = append(notes, fmt.Sprintf("Reworded: %q -> %q", m.Old, m.New))
	}
	for _, s := range al.Added {
		notes = append(notes, fmt.Sprintf("Added: %q", s))
	}
	for _, s := range al.Removed {
		notes = append(notes, fmt.Sprintf("Removed: %q", s))
	}
	return notes
}

// FormatComparison renders a comparison as a plain-text report: metadata
// deltas, positional heading pairs, alignment buckets, and paragraph churn.
// The report is complete on its own; an AI summary, when requested, is
// appended separately by the caller.
func FormatComparison(oldName, newName string, cmp *Comparison) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Comparing %s -> %s\n", oldName, newName)

	sb.WriteString("\nMetadata\n")
	for _, d := range cmp.Fields {
		if d.Changed {
			fmt.Fprintf(&sb, "  %s: %q -> %q\n", d.Field, d.Old, d.New)
		} else {
			fmt.Fprintf(&sb, "  %s: %q (no change)\n", d.Field, d.Old)
		}
	}

	if len(cmp.Pairs) > 0 {
		sb.WriteString("\nHeadings by position\n")
		for _, p := range cmp.Pairs {
			fmt.Fprintf(&sb, "  %s -> %s\n", pairSide(p.Old), pairSide(p.New))
		}
	}

	sb.WriteString("\nHeading changes\n")
	al := cmp.Alignment
	if len(al.Unchanged)+len(al.Modified)+len(al.Added)+len(al.Removed) == 0 {
		sb.WriteString("  (none)\n")
	}
	for _, m := range al.Unchanged {
		fmt.Fprintf(&sb, "  unchanged  %s\n", m.Old)
	}
	for _, note := range AlignmentNotes(al) {
		fmt.Fprintf(&sb, "  %s\n", note)
	}

	fmt.Fprintf(&sb, "\nParagraphs: %d -> %d (%d added, %d removed)\n",
		cmp.Stats.OldCount, cmp.Stats.NewCount, cmp.Stats.Added, cmp.Stats.Removed)

	return sb.String()
}

func pairSide(h Heading) string {
	if h.IsZero() {
		return "-"
	}
	return h.String()
}
