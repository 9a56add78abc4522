package draftdiff_test

import (
	"testing"

	"github.com/draftdiff/draftdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsed(meta map[string]string, headings []draftdiff.Heading, paragraphs []string) *draftdiff.ParsedDocument {
	doc := &draftdiff.ParsedDocument{
		Meta:       make(map[string]string, len(draftdiff.MetaFields)),
		Headings:   headings,
		Paragraphs: paragraphs,
	}
	for _, f := range draftdiff.MetaFields {
		doc.Meta[f] = meta[f]
	}
	return doc
}

func TestCompare(t *testing.T) {
	t.Parallel()

	t.Run("reports every canonical field even when unchanged", func(t *testing.T) {
		t.Parallel()

		old := parsed(map[string]string{draftdiff.FieldMetaTitle: "Guide"}, nil, nil)
		updated := parsed(map[string]string{draftdiff.FieldMetaTitle: "Guide 2026"}, nil, nil)

		cmp := draftdiff.Compare(old, updated, draftdiff.CompareOptions{})

		require.Len(t, cmp.Fields, len(draftdiff.MetaFields))

		byField := make(map[string]draftdiff.FieldDelta)
		for _, d := range cmp.Fields {
			byField[d.Field] = d
		}
		assert.True(t, byField[draftdiff.FieldMetaTitle].Changed)
		assert.Equal(t, "Guide", byField[draftdiff.FieldMetaTitle].Old)
		assert.Equal(t, "Guide 2026", byField[draftdiff.FieldMetaTitle].New)
		assert.False(t, byField[draftdiff.FieldURL].Changed)
		assert.Empty(t, byField[draftdiff.FieldURL].Old)
	})

	t.Run("pads positional pairs on the shorter side", func(t *testing.T) {
		t.Parallel()

		old := parsed(nil, []draftdiff.Heading{
			{Tag: "H2", Text: "Intro"},
			{Tag: "H2", Text: "Pricing"},
		}, nil)
		updated := parsed(nil, []draftdiff.Heading{
			{Tag: "H2", Text: "Intro"},
		}, nil)

		cmp := draftdiff.Compare(old, updated, draftdiff.CompareOptions{})

		require.Len(t, cmp.Pairs, 2)
		assert.Equal(t, draftdiff.Heading{Tag: "H2", Text: "Pricing"}, cmp.Pairs[1].Old)
		assert.True(t, cmp.Pairs[1].New.IsZero())
	})

	t.Run("no pairs when both sides have no headings", func(t *testing.T) {
		t.Parallel()

		cmp := draftdiff.Compare(parsed(nil, nil, nil), parsed(nil, nil, nil), draftdiff.CompareOptions{})

		assert.Empty(t, cmp.Pairs)
	})

	t.Run("uses default threshold when unset", func(t *testing.T) {
		t.Parallel()

		old := parsed(nil, []draftdiff.Heading{{Tag: "H2", Text: "Intro"}}, nil)
		updated := parsed(nil, []draftdiff.Heading{{Tag: "H2", Text: "Introduction"}}, nil)

		cmp := draftdiff.Compare(old, updated, draftdiff.CompareOptions{})

		// Similarity of "H2: Intro" vs "H2: Introduction" is above 0.7.
		assert.Len(t, cmp.Alignment.Modified, 1)
	})

	t.Run("honors an explicit zero threshold", func(t *testing.T) {
		t.Parallel()

		// Dissimilar enough that 0.7 would leave them unmatched.
		old := parsed(nil, []draftdiff.Heading{{Tag: "H2", Text: "Pricing"}}, nil)
		updated := parsed(nil, []draftdiff.Heading{{Tag: "H4", Text: "About"}}, nil)

		threshold := 0.0
		cmp := draftdiff.Compare(old, updated, draftdiff.CompareOptions{Threshold: &threshold})

		want := draftdiff.AlignHeadings(old.Headings, updated.Headings, 0)
		assert.Equal(t, want, cmp.Alignment)
		require.Len(t, cmp.Alignment.Modified, 1)
		assert.Empty(t, cmp.Alignment.Added)
		assert.Empty(t, cmp.Alignment.Removed)
	})

	t.Run("carries raw paragraphs for the summarizer boundary", func(t *testing.T) {
		t.Parallel()

		old := parsed(nil, nil, []string{"alpha", "beta"})
		updated := parsed(nil, nil, []string{"beta", "gamma"})

		cmp := draftdiff.Compare(old, updated, draftdiff.CompareOptions{})

		assert.Equal(t, []string{"alpha", "beta"}, cmp.OldParagraphs)
		assert.Equal(t, []string{"beta", "gamma"}, cmp.NewParagraphs)
	})

	t.Run("computes paragraph churn", func(t *testing.T) {
		t.Parallel()

		old := parsed(nil, nil, []string{"alpha", "beta", "gamma"})
		updated := parsed(nil, nil, []string{"beta", "delta"})

		cmp := draftdiff.Compare(old, updated, draftdiff.CompareOptions{})

		assert.Equal(t, draftdiff.ParagraphStats{
			OldCount: 3,
			NewCount: 2,
			Added:    1,
			Removed:  2,
		}, cmp.Stats)
	})

	t.Run("uses the supplied paragraph filter", func(t *testing.T) {
		t.Parallel()

		var built int
		opts := draftdiff.CompareOptions{
			NewFilter: func(n uint) draftdiff.ParagraphFilter {
				built++
				return recordingFilter{}
			},
		}

		cmp := draftdiff.Compare(parsed(nil, nil, []string{"a"}), parsed(nil, nil, []string{"b"}), opts)

		assert.Equal(t, 2, built)
		// recordingFilter reports everything as present, so nothing counts
		// as added or removed.
		assert.Zero(t, cmp.Stats.Added)
		assert.Zero(t, cmp.Stats.Removed)
	})
}

// recordingFilter is a ParagraphFilter that reports every paragraph as seen.
type recordingFilter struct{}

func (recordingFilter) Add(string) {}

func (recordingFilter) Test(string) bool { return true }
