package draftdiff

// PageContent holds the main content of a fetched live page.
type PageContent struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// ContentExtractor strips boilerplate from fetched pages before block
// parsing.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*PageContent, error)
}
