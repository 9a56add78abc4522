package trafilatura_test

import (
	"testing"

	"github.com/draftdiff/draftdiff"
	"github.com/draftdiff/draftdiff/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements draftdiff.ContentExtractor at compile time.
var _ draftdiff.ContentExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Sliding Doors Guide</title></head>
<body>
<nav class="site-nav"><a href="/">Home</a><a href="/blog">Blog</a></nav>
<article>
<h1>Sliding Doors Guide</h1>
<p>Sliding doors are a space-saving option for modern homes.</p>
<p>They come in aluminium, timber, and composite frames.</p>
</article>
<footer><p>Copyright 2026 Example Corp</p></footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "space-saving option")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026 Example Corp")
	})

	t.Run("extracts title from metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Sliding Doors Guide - Example</title>
<meta property="og:title" content="Sliding Doors Guide">
</head>
<body>
<main>
<h1>Sliding Doors Guide</h1>
<p>Published page body text for comparison against drafts.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, draftdiff.EINVALID, draftdiff.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(`<html><body><p>Simple content</p></body></html>`)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
