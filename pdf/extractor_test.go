package pdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"kbingest"
	"kbingest/pdf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("missing file is an invalid-input error", func(t *testing.T) {
		t.Parallel()

		e := pdf.NewExtractor()
		_, err := e.ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))

		require.Error(t, err)
		assert.Equal(t, kbingest.EINVALID, kbingest.ErrorCode(err))
	})

	t.Run("non-PDF content is an invalid-input error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "not-a.pdf")
		require.NoError(t, os.WriteFile(path, []byte("plain text, not a PDF"), 0o644))

		e := pdf.NewExtractor()
		_, err := e.ExtractText(path)

		require.Error(t, err)
		assert.Equal(t, kbingest.EINVALID, kbingest.ErrorCode(err))
	})
}
