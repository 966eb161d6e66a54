package readability_test

import (
	"testing"

	"kbingest"
	"kbingest/readability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements kbingest.HeuristicExtractor at compile time.
var _ kbingest.HeuristicExtractor = (*readability.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Why Interfaces Matter</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Why Interfaces Matter</h1>
<p>Small interfaces keep packages decoupled. A consumer that accepts an
interface can be tested with a ten-line fake instead of a real server.</p>
<p>This article covers how to find the right interface boundary and how
to avoid premature abstraction while you do it.</p>
</article>
</body>
</html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Contains(t, result.Title, "Interfaces")
		assert.Contains(t, result.ContentHTML, "decoupled")
	})

	t.Run("returns nil for an empty body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html><html><head><title>x</title></head><body></body></html>`

		ext := readability.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("fails on empty input", func(t *testing.T) {
		t.Parallel()

		ext := readability.NewExtractor()
		_, err := ext.Extract("")

		assert.Equal(t, kbingest.EINVALID, kbingest.ErrorCode(err))
	})
}
