package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/beevik/etree"

	"kbingest"
)

// Ensure FeedDiscoverer implements kbingest.FeedDiscoverer at compile time.
var _ kbingest.FeedDiscoverer = (*FeedDiscoverer)(nil)

// feedPaths are the conventional syndication feed locations probed in
// order. The first path that yields a parseable feed wins.
var feedPaths = []string{"/feed", "/rss.xml", "/atom.xml", "/index.xml", "/feed.xml"}

// FeedDiscoverer finds article URLs through a site's RSS or Atom feed.
// It is the discovery fallback for index pages whose markup defeats
// selector-based link extraction.
type FeedDiscoverer struct {
	client *http.Client
}

// NewFeedDiscoverer creates a FeedDiscoverer using the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedDiscoverer(client *http.Client) *FeedDiscoverer {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedDiscoverer{client: client}
}

// DiscoverURLs probes conventional feed paths on the origin's site root
// and returns the entry links of the first feed found. Returns an empty
// slice (not an error) when no feed exists.
func (d *FeedDiscoverer) DiscoverURLs(ctx context.Context, originURL string) ([]string, error) {
	origin, err := url.Parse(originURL)
	if err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "invalid origin URL: %v", err)
	}

	for _, p := range feedPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		feedURL := origin.ResolveReference(&url.URL{Path: p}).String()
		urls, ok := d.fetchFeed(ctx, feedURL)
		if ok {
			return urls, nil
		}
	}

	return []string{}, nil
}

// fetchFeed retrieves and parses one candidate feed URL. The bool result
// is false when the URL holds no parseable feed.
func (d *FeedDiscoverer) fetchFeed(ctx context.Context, feedURL string) ([]string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("User-Agent", browserHeaders["User-Agent"])

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, false
	}

	var urls []string
	seen := make(map[string]bool)
	add := func(link string) {
		if link != "" && !seen[link] {
			seen[link] = true
			urls = append(urls, link)
		}
	}

	// RSS: /rss/channel/item/link holds the entry URL as text.
	for _, item := range doc.FindElements("//item/link") {
		add(item.Text())
	}

	// Atom: /feed/entry/link carries the URL in an href attribute.
	for _, entry := range doc.FindElements("//entry/link") {
		rel := entry.SelectAttrValue("rel", "alternate")
		if rel == "alternate" {
			add(entry.SelectAttrValue("href", ""))
		}
	}

	if len(urls) == 0 {
		return nil, false
	}
	return urls, true
}
