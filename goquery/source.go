// Package goquery parses HTML into draftdiff text blocks.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/draftdiff/draftdiff"
)

// blockSelector matches the block-level elements treated as standalone text
// blocks. Table content is collected separately so rows keep their shape.
const blockSelector = "p, h1, h2, h3, h4, h5, h6, li"

// Parse reads HTML and returns its text blocks: block elements outside
// tables in document order, then tables as rows of cells.
func Parse(html string) (*draftdiff.Blocks, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, draftdiff.Errorf(draftdiff.EINVALID, "failed to parse HTML: %v", err)
	}

	blocks := &draftdiff.Blocks{}

	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		if sel.ParentsFiltered("table").Length() > 0 {
			return
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blocks.Paragraphs = append(blocks.Paragraphs, text)
		}
	})

	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		var rows [][]string
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			var row []string
			tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				row = append(row, cellText(cell))
			})
			if len(row) > 0 {
				rows = append(rows, row)
			}
		})
		if len(rows) > 0 {
			blocks.Tables = append(blocks.Tables, rows)
		}
	})

	return blocks, nil
}

// cellText extracts a table cell's text. Cells with inner block elements
// yield one line per element; plain cells yield their trimmed text.
func cellText(cell *goquery.Selection) string {
	inner := cell.Find(blockSelector)
	if inner.Length() == 0 {
		return strings.TrimSpace(cell.Text())
	}

	var lines []string
	inner.Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n")
}
