package trafilatura_test

import (
	"testing"

	"kbingest"
	"kbingest/trafilatura"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements kbingest.HeuristicExtractor at compile time.
var _ kbingest.HeuristicExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Scaling Postgres - Engineering Blog</title>
<meta property="og:title" content="Scaling Postgres">
</head>
<body>
<nav><a href="/">Home</a><a href="/blog">Blog</a></nav>
<article>
<h1>Scaling Postgres</h1>
<p>Sharding a relational database is mostly a story about picking the
right partition key and living with the consequences for years.</p>
<p>This post walks through how we moved from a single primary to a
sharded fleet without downtime, and what we would do differently.</p>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.Title)
		assert.Contains(t, result.ContentHTML, "partition key")
	})

	t.Run("strips navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav"><ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
</ul></nav>
<main>
<h1>The Actual Article</h1>
<p>Prose content that the extractor should keep, long enough to look
like a real paragraph rather than a menu entry.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("returns nil for a page with no article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><head><title>Links</title></head><body></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		assert.Equal(t, kbingest.EINVALID, kbingest.ErrorCode(err))
	})
}
