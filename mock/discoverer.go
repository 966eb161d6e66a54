package mock

import (
	"context"

	"kbingest"
)

var _ kbingest.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of kbingest.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(html, originURL string, site kbingest.CanonicalSite, locator string) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(html, originURL string, site kbingest.CanonicalSite, locator string) ([]string, error) {
	return d.DiscoverLinksFn(html, originURL, site, locator)
}

var _ kbingest.FeedDiscoverer = (*FeedDiscoverer)(nil)

// FeedDiscoverer is a mock implementation of kbingest.FeedDiscoverer.
type FeedDiscoverer struct {
	DiscoverURLsFn func(ctx context.Context, originURL string) ([]string, error)
}

func (d *FeedDiscoverer) DiscoverURLs(ctx context.Context, originURL string) ([]string, error) {
	return d.DiscoverURLsFn(ctx, originURL)
}
