package draftdiff_test

import (
	"testing"

	"github.com/draftdiff/draftdiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	t.Run("identical strings score 1", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1.0, draftdiff.Similarity("H2: Intro", "H2: Intro"))
	})

	t.Run("different strings score below 1", func(t *testing.T) {
		t.Parallel()

		assert.Less(t, draftdiff.Similarity("H2: Intro", "H2: Introduction"), 1.0)
	})

	t.Run("is symmetric", func(t *testing.T) {
		t.Parallel()

		a, b := "H2: Topic A", "H3: Topic B"

		assert.Equal(t, draftdiff.Similarity(a, b), draftdiff.Similarity(b, a))
	})

	t.Run("disjoint strings score 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, draftdiff.Similarity("ab", "cd"))
	})
}

func TestAlignHeadings(t *testing.T) {
	t.Parallel()

	t.Run("reworded heading is modified", func(t *testing.T) {
		t.Parallel()

		old := []draftdiff.Heading{{Tag: "H2", Text: "Intro"}}
		updated := []draftdiff.Heading{{Tag: "H2", Text: "Introduction"}}

		al := draftdiff.AlignHeadings(old, updated, 0.5)

		assert.Equal(t, []draftdiff.HeadingMatch{{Old: "H2: Intro", New: "H2: Introduction"}}, al.Modified)
		assert.Empty(t, al.Unchanged)
		assert.Empty(t, al.Added)
		assert.Empty(t, al.Removed)
	})

	t.Run("dissimilar headings become added and removed", func(t *testing.T) {
		t.Parallel()

		old := []draftdiff.Heading{{Tag: "H2", Text: "Topic A"}}
		updated := []draftdiff.Heading{{Tag: "H3", Text: "Topic B"}}

		al := draftdiff.AlignHeadings(old, updated, 0.9)

		assert.Equal(t, []string{"H3: Topic B"}, al.Added)
		assert.Equal(t, []string{"H2: Topic A"}, al.Removed)
		assert.Empty(t, al.Unchanged)
		assert.Empty(t, al.Modified)
	})

	t.Run("exact match is unchanged regardless of threshold", func(t *testing.T) {
		t.Parallel()

		old := []draftdiff.Heading{{Tag: "H2", Text: "Pricing"}}
		updated := []draftdiff.Heading{{Tag: "H2", Text: "Pricing"}}

		for _, threshold := range []float64{0, 0.5, 0.99, 1} {
			al := draftdiff.AlignHeadings(old, updated, threshold)

			assert.Equal(t, []draftdiff.HeadingMatch{{Old: "H2: Pricing", New: "H2: Pricing"}},
				al.Unchanged, "threshold %v", threshold)
			assert.Empty(t, al.Modified)
		}
	})

	t.Run("every heading lands in exactly one bucket", func(t *testing.T) {
		t.Parallel()

		old := []draftdiff.Heading{
			{Tag: "H2", Text: "Overview"},
			{Tag: "H2", Text: "Features"},
			{Tag: "H3", Text: "Installation Steps"},
			{Tag: "H2", Text: "FAQ"},
		}
		updated := []draftdiff.Heading{
			{Tag: "H2", Text: "Overview"},
			{Tag: "H3", Text: "Installation Guide"},
			{Tag: "H2", Text: "Warranty"},
		}

		al := draftdiff.AlignHeadings(old, updated, 0.7)

		assert.Equal(t, len(old), len(al.Unchanged)+len(al.Modified)+len(al.Removed))
		assert.Equal(t, len(updated), len(al.Unchanged)+len(al.Modified)+len(al.Added))
	})

	t.Run("duplicate headings match one-to-one in order", func(t *testing.T) {
		t.Parallel()

		old := []draftdiff.Heading{
			{Tag: "H2", Text: "Specs"},
			{Tag: "H2", Text: "Specs"},
		}
		updated := []draftdiff.Heading{
			{Tag: "H2", Text: "Specs"},
			{Tag: "H2", Text: "Specs"},
			{Tag: "H2", Text: "Specs"},
		}

		al := draftdiff.AlignHeadings(old, updated, 0.9)

		require.Len(t, al.Unchanged, 2)
		assert.Empty(t, al.Removed)
		// The third duplicate finds no unused partner above threshold.
		assert.Len(t, al.Added, 1)
	})

	t.Run("greedy matching lets an earlier heading consume a better partner", func(t *testing.T) {
		t.Parallel()

		old := []draftdiff.Heading{{Tag: "H2", Text: "Install"}}
		updated := []draftdiff.Heading{
			{Tag: "H2", Text: "Installing"},
			{Tag: "H2", Text: "Install"},
		}

		al := draftdiff.AlignHeadings(old, updated, 0.7)

		// "H2: Installing" runs first and claims the only old heading even
		// though "H2: Install" would have matched exactly.
		assert.Equal(t, []draftdiff.HeadingMatch{{Old: "H2: Install", New: "H2: Installing"}}, al.Modified)
		assert.Equal(t, []string{"H2: Install"}, al.Added)
		assert.Empty(t, al.Unchanged)
		assert.Empty(t, al.Removed)
	})

	t.Run("empty inputs", func(t *testing.T) {
		t.Parallel()

		al := draftdiff.AlignHeadings(nil, nil, 0.7)

		assert.Empty(t, al.Unchanged)
		assert.Empty(t, al.Modified)
		assert.Empty(t, al.Added)
		assert.Empty(t, al.Removed)

		al = draftdiff.AlignHeadings(nil, []draftdiff.Heading{{Tag: "H2", Text: "New"}}, 0.7)
		assert.Equal(t, []string{"H2: New"}, al.Added)

		al = draftdiff.AlignHeadings([]draftdiff.Heading{{Tag: "H2", Text: "Old"}}, nil, 0.7)
		assert.Equal(t, []string{"H2: Old"}, al.Removed)
	})
}
