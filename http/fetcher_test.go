package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kbingest"
	kbhttp "kbingest/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Fetcher implements kbingest.Fetcher at compile time.
var _ kbingest.Fetcher = (*kbhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the response body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer srv.Close()

		f := kbhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "ok")
	})

	t.Run("sends a browser-identifying header set", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte("ok"))
		}))
		defer srv.Close()

		f := kbhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
		assert.Contains(t, gotAccept, "text/html")
	})

	t.Run("fails with EUNAVAILABLE on non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		f := kbhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, kbingest.EUNAVAILABLE, kbingest.ErrorCode(err))
	})

	t.Run("fails with EUNAVAILABLE on timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := kbhttp.NewFetcher(kbhttp.WithTimeout(20 * time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, kbingest.EUNAVAILABLE, kbingest.ErrorCode(err))
	})

	t.Run("fails with EUNAVAILABLE on connection error", func(t *testing.T) {
		t.Parallel()

		f := kbhttp.NewFetcher(kbhttp.WithTimeout(time.Second))
		defer f.Close()

		_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")

		require.Error(t, err)
		assert.Equal(t, kbingest.EUNAVAILABLE, kbingest.ErrorCode(err))
	})
}
