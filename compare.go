package draftdiff

// FieldDelta reports one canonical metadata field across both versions.
// Every canonical field is always reported, even when both sides are empty.
type FieldDelta struct {
	Field   string `json:"field"`
	Old     string `json:"old"`
	New     string `json:"new"`
	Changed bool   `json:"changed"`
}

// HeadingPair is a positional side-by-side pairing of headings: the two
// sequences zipped by index, the shorter side padded with zero headings.
type HeadingPair struct {
	Old Heading `json:"old"`
	New Heading `json:"new"`
}

// ParagraphFilter is an approximate-membership filter over paragraph text.
// The bloom subpackage provides the production implementation; false
// positives are possible, false negatives are not.
type ParagraphFilter interface {
	Add(p string)
	Test(p string) bool
}

// ParagraphStats summarizes paragraph-level churn between two versions.
// Membership is tested through a ParagraphFilter, so Added and Removed are
// lower bounds when the filter admits false positives.
type ParagraphStats struct {
	OldCount int `json:"oldCount"`
	NewCount int `json:"newCount"`
	Added    int `json:"added"`   // new-side paragraphs absent from the old version
	Removed  int `json:"removed"` // old-side paragraphs absent from the new version
}

// Comparison is the full result of comparing two parsed versions. The raw
// paragraph sequences are carried unmodified for the summarizer boundary.
type Comparison struct {
	Fields        []FieldDelta     `json:"fields"`
	Pairs         []HeadingPair    `json:"pairs"`
	Alignment     HeadingAlignment `json:"alignment"`
	OldParagraphs []string         `json:"oldParagraphs"`
	NewParagraphs []string         `json:"newParagraphs"`
	Stats         ParagraphStats   `json:"stats"`
}

// CompareOptions configures a comparison.
type CompareOptions struct {
	// Threshold is the heading similarity threshold in [0,1].
	// DefaultThreshold is used when nil; an explicit zero is honored.
	Threshold *float64

	// NewFilter builds the paragraph membership filter for churn statistics,
	// sized for n expected paragraphs. An exact in-memory filter is used
	// when nil.
	NewFilter func(n uint) ParagraphFilter
}

// Compare produces the full comparison between two parsed versions:
// per-field metadata deltas, positional heading pairs, the heading
// alignment, both raw paragraph sequences, and paragraph churn statistics.
func Compare(old, updated *ParsedDocument, opts CompareOptions) *Comparison {
	threshold := DefaultThreshold
	if opts.Threshold != nil {
		threshold = *opts.Threshold
	}

	cmp := &Comparison{
		OldParagraphs: old.Paragraphs,
		NewParagraphs: updated.Paragraphs,
	}

	for _, f := range MetaFields {
		ov, nv := old.Meta[f], updated.Meta[f]
		cmp.Fields = append(cmp.Fields, FieldDelta{Field: f, Old: ov, New: nv, Changed: ov != nv})
	}

	// Positional pairs: zip by index, pad the shorter side, skip pairs that
	// are empty on both sides.
	n := max(len(old.Headings), len(updated.Headings))
	for i := 0; i < n; i++ {
		var p HeadingPair
		if i < len(old.Headings) {
			p.Old = old.Headings[i]
		}
		if i < len(updated.Headings) {
			p.New = updated.Headings[i]
		}
		if p.Old.IsZero() && p.New.IsZero() {
			continue
		}
		cmp.Pairs = append(cmp.Pairs, p)
	}

	cmp.Alignment = AlignHeadings(old.Headings, updated.Headings, threshold)
	cmp.Stats = paragraphChurn(old.Paragraphs, updated.Paragraphs, opts.NewFilter)
	return cmp
}

func paragraphChurn(old, updated []string, newFilter func(n uint) ParagraphFilter) ParagraphStats {
	if newFilter == nil {
		newFilter = newExactFilter
	}
	stats := ParagraphStats{OldCount: len(old), NewCount: len(updated)}

	seen := newFilter(uint(len(old)) + 1)
	for _, p := range old {
		seen.Add(p)
	}
	for _, p := range updated {
		if !seen.Test(p) {
			stats.Added++
		}
	}

	kept := newFilter(uint(len(updated)) + 1)
	for _, p := range updated {
		kept.Add(p)
	}
	for _, p := range old {
		if !kept.Test(p) {
			stats.Removed++
		}
	}
	return stats
}

// exactFilter is the degenerate ParagraphFilter used when no approximate
// filter is supplied.
type exactFilter map[string]struct{}

func newExactFilter(uint) ParagraphFilter { return exactFilter{} }

func (f exactFilter) Add(p string) { f[p] = struct{}{} }

func (f exactFilter) Test(p string) bool {
	_, ok := f[p]
	return ok
}
