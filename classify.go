package draftdiff

import (
	"regexp"
	"strings"
)

// headingRe matches markup-style heading lines like "H2: Why it matters".
var headingRe = regexp.MustCompile(`(?i)^(H[1-6]):\s*(.*)`)

// LineKind classifies a single line of document text.
type LineKind int

const (
	LineParagraph LineKind = iota
	LineHeading
	LineMeta
)

// ClassifiedLine is the result of classifying one line.
type ClassifiedLine struct {
	Kind    LineKind
	Heading Heading // set when Kind is LineHeading
	Field   string  // set when Kind is LineMeta
	Value   string  // set when Kind is LineMeta
}

// ClassifyLine decides whether a trimmed line is a heading, an inline
// metadata assignment, or plain body text. The heading pattern takes
// priority over the trigger table, so "H1: About Us" is always a heading;
// the H1 metadata field is populated only through the standalone-label and
// table row-pair forms.
func ClassifyLine(line string) ClassifiedLine {
	if m := headingRe.FindStringSubmatch(line); m != nil {
		return ClassifiedLine{
			Kind:    LineHeading,
			Heading: Heading{Tag: strings.ToUpper(m[1]), Text: strings.TrimSpace(m[2])},
		}
	}
	if label, value, ok := strings.Cut(line, ":"); ok {
		if field, found := FieldForLabel(label); found {
			return ClassifiedLine{Kind: LineMeta, Field: field, Value: strings.TrimSpace(value)}
		}
	}
	return ClassifiedLine{Kind: LineParagraph}
}
