package draftdiff

// Converter converts HTML to Markdown. Fetched page versions store a
// markdown rendition alongside their blocks so they can be reviewed with
// the show command.
type Converter interface {
	// Convert transforms clean HTML (e.g. from a ContentExtractor) into
	// Markdown.
	Convert(html string) (string, error)
}
