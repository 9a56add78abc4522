package draftdiff

import "context"

// Fetcher retrieves raw HTML from a live URL so a published page can be
// stored as a version and compared against drafts.
type Fetcher interface {
	// Fetch returns the page's HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
