package draftdiff

import "github.com/agnivade/levenshtein"

// DefaultThreshold is the similarity ratio at or above which two heading
// strings are considered a rewording of the same heading.
const DefaultThreshold = 0.7

// HeadingMatch pairs an old-side heading string with its new-side
// counterpart.
type HeadingMatch struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// HeadingAlignment buckets every heading from both versions. Every old-side
// heading lands in exactly one of Unchanged, Modified, or Removed; every
// new-side heading in exactly one of Unchanged, Modified, or Added.
type HeadingAlignment struct {
	Unchanged []HeadingMatch `json:"unchanged"`
	Modified  []HeadingMatch `json:"modified"`
	Added     []string       `json:"added"`
	Removed   []string       `json:"removed"`
}

// Similarity returns a normalized edit-distance ratio in [0,1] between two
// strings. It is symmetric and returns 1 only for exact equality.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// AlignHeadings computes a greedy alignment of two heading sequences. Each
// new-side heading, in order, claims its best-scoring unused old-side
// heading: an exact match is Unchanged regardless of threshold, a score at
// or above threshold is Modified, and anything else leaves the heading in
// Added without consuming a candidate. Old-side headings left unclaimed end
// up in Removed. Ties keep the first-encountered maximum, and duplicates are
// matched one-to-one in processing order. The pairing is greedy rather than
// globally optimal: an earlier new-side heading can consume a later one's
// best partner.
func AlignHeadings(old, updated []Heading, threshold float64) HeadingAlignment {
	oldStrs := make([]string, len(old))
	for i, h := range old {
		oldStrs[i] = h.String()
	}
	used := make([]bool, len(old))

	var al HeadingAlignment
	for _, h := range updated {
		s := h.String()
		best, bestScore := -1, -1.0
		for i, o := range oldStrs {
			if used[i] {
				continue
			}
			if score := Similarity(s, o); score > bestScore {
				best, bestScore = i, score
			}
		}
		switch {
		case best >= 0 && bestScore == 1:
			used[best] = true
			al.Unchanged = append(al.Unchanged, HeadingMatch{Old: oldStrs[best], New: s})
		case best >= 0 && bestScore >= threshold:
			used[best] = true
			al.Modified = append(al.Modified, HeadingMatch{Old: oldStrs[best], New: s})
		default:
			al.Added = append(al.Added, s)
		}
	}

	for i, o := range oldStrs {
		if !used[i] {
			al.Removed = append(al.Removed, o)
		}
	}
	return al
}
