package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "kbingest/cmd/kbingest"
)

func TestCmdSites(t *testing.T) {
	t.Parallel()

	t.Run("lists the built-in rule table", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"sites"}, stdout, stderr)
		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "interviewing.io")
		assert.Contains(t, output, "nilmamano.com")
		assert.Contains(t, output, "substack.com")
	})

	t.Run("lists a YAML rule table", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
sites:
  - site: example.com
    rules:
      - name: blog_article
        url_pattern: https://example\.com/blog/.+
        strategy: single_article
        content_type: blog
`), 0o644))

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"sites", "--rules", path}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "example.com")
		assert.Contains(t, stdout.String(), "blog_article")
	})

	t.Run("fails on a broken rules file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`sites: [`), 0o644))

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"sites", "--rules", path}, stdout, stderr)
		require.Error(t, err)
	})
}

func TestCmdRun_Validation(t *testing.T) {
	t.Parallel()

	t.Run("rejects an invocation with nothing to ingest", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"run", "aline123"}, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nothing to ingest")
	})
}
