// Package bloom provides approximate paragraph-membership filters used for
// paragraph churn statistics.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/draftdiff/draftdiff"
)

// Ensure Filter implements draftdiff.ParagraphFilter at compile time.
var _ draftdiff.ParagraphFilter = (*Filter)(nil)

// Filter wraps a Bloom filter over paragraph text.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected paragraphs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a paragraph to the filter.
func (f *Filter) Add(p string) {
	f.f.AddString(p)
}

// Test returns true if the paragraph might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(p string) bool {
	return f.f.TestString(p)
}

// EstimatedCount returns the approximate number of paragraphs in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
