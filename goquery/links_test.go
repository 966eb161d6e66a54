package goquery_test

import (
	"testing"

	"kbingest"
	"kbingest/goquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure LinkDiscoverer implements kbingest.LinkDiscoverer at compile time.
var _ kbingest.LinkDiscoverer = (*goquery.LinkDiscoverer)(nil)

func TestLinkDiscoverer_DiscoverLinks(t *testing.T) {
	t.Parallel()

	origin := "https://example.com/blog"
	site := kbingest.CanonicalSite("example.com")

	t.Run("resolves relative hrefs against the origin", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/blog/first-post">First</a>
<a href="second-post">Second</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/blog/first-post",
			"https://example.com/second-post",
		}, links)
	})

	t.Run("never returns an off-site URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://example.com/blog/on-site">On</a>
<a href="https://other.com/blog/off-site">Off</a>
<a href="https://evil.example.org/post">Off</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/blog/on-site"}, links)
	})

	t.Run("www and bare hosts are the same site", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://www.example.com/blog/post">Post</a>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "")

		require.NoError(t, err)
		assert.Len(t, links, 1)
	})

	t.Run("rejects non-web schemes and fragments", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="mailto:hi@example.com">Mail</a>
<a href="javascript:void(0)">JS</a>
<a href="tel:+123">Tel</a>
<a href="#section">Anchor</a>
<a href="/blog/real-post">Real</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/blog/real-post"}, links)
	})

	t.Run("excludes non-article file extensions", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/files/book.pdf">PDF</a>
<a href="/img/photo.jpg">Image</a>
<a href="/dl/code.zip">Archive</a>
<a href="/media/ep1.mp3">Audio</a>
<a href="/blog/a-post">Post</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/blog/a-post"}, links)
	})

	t.Run("excludes navigational paths and the root index", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/category/go">Category</a>
<a href="/tag/testing">Tag</a>
<a href="/about">About</a>
<a href="/contact">Contact</a>
<a href="/">Home</a>
<a href="/blog/a-post">Post</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/blog/a-post"}, links)
	})

	t.Run("collapses duplicates within one page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/blog/a-post">Title</a>
<a href="/blog/a-post">Read more</a>
<a href="/blog/a-post#comments">Comments</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/blog/a-post"}, links)
	})

	t.Run("honors a rule-supplied link locator", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a class="blog-post-card-link" href="/blog/wanted">Wanted</a>
<a class="nav-link" href="/blog/unwanted">Unwanted</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, origin, site, "a.blog-post-card-link")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/blog/wanted"}, links)
	})

	t.Run("collapses platform subdomains for site scoping", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://alice.substack.com/p/post-a">A</a>
<a href="https://bob.substack.com/p/post-b">B</a>
<a href="https://other.com/p/post-c">C</a>
</body></html>`

		d := goquery.NewLinkDiscoverer()
		links, err := d.DiscoverLinks(html, "https://alice.substack.com/archive-x", "substack.com", "")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://alice.substack.com/p/post-a",
			"https://bob.substack.com/p/post-b",
		}, links)
	})

	t.Run("fails on an invalid origin URL", func(t *testing.T) {
		t.Parallel()

		d := goquery.NewLinkDiscoverer()
		_, err := d.DiscoverLinks("<a href='/x'>x</a>", "://bad", site, "")

		assert.Equal(t, kbingest.EINVALID, kbingest.ErrorCode(err))
	})
}
