package draftdiff

import "strings"

// Extract runs the full extraction pass over one version's blocks and
// returns its structured content. Extraction is total: unrecognized content
// always lands in the paragraph sequence, never in an error. Body blocks are
// processed before tables, so a field set by both takes its table value.
func Extract(blocks *Blocks) *ParsedDocument {
	doc := &ParsedDocument{Meta: make(map[string]string, len(MetaFields))}
	for _, f := range MetaFields {
		doc.Meta[f] = ""
	}
	if blocks == nil {
		return doc
	}

	extractLines(doc, blocks.Paragraphs)
	for _, table := range blocks.Tables {
		for _, row := range table {
			extractRow(doc, row)
		}
	}
	return doc
}

// extractLines is the body pass: a single forward cursor with one line of
// lookahead for the label-on-its-own-line form. A line consumed as a field
// value is never reconsidered as a label, heading, or paragraph.
func extractLines(doc *ParsedDocument, lines []string) {
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		// Standalone label: the whole line is a trigger key and the next
		// line, if any, holds the value. A trigger key followed directly by
		// another trigger key keeps no value.
		if field, ok := fieldTriggers[NormalizeLabel(line)]; ok {
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if _, isLabel := fieldTriggers[NormalizeLabel(next)]; !isLabel {
					doc.Meta[field] = next
					i++
				}
			}
			continue
		}

		switch cl := ClassifyLine(line); cl.Kind {
		case LineMeta:
			doc.Meta[cl.Field] = cl.Value
		case LineHeading:
			doc.Headings = append(doc.Headings, cl.Heading)
		default:
			doc.Paragraphs = append(doc.Paragraphs, line)
		}
	}
}

// extractRow runs the two table passes over one row. The row-pair pass reads
// a label cell followed by its value cell; the per-line pass independently
// classifies every line of every cell. Both passes scan the same cells, so a
// cell consumed as a field value can also surface as a paragraph or heading.
// That duplication is kept deliberately for parity with how label/value and
// free-form tables are authored together.
func extractRow(doc *ParsedDocument, row []string) {
	for i := 0; i < len(row); {
		if field, ok := fieldTriggers[NormalizeLabel(row[i])]; ok && i+1 < len(row) {
			doc.Meta[field] = strings.TrimSpace(row[i+1])
			i += 2
			continue
		}
		i++
	}

	for _, cell := range row {
		for _, line := range strings.Split(cell, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			switch cl := ClassifyLine(line); cl.Kind {
			case LineMeta:
				doc.Meta[cl.Field] = cl.Value
			case LineHeading:
				doc.Headings = append(doc.Headings, cl.Heading)
			default:
				doc.Paragraphs = append(doc.Paragraphs, line)
			}
		}
	}
}
