package kbingest

import "context"

// CrawlTarget is one URL queued for processing. Targets are created when a
// URL is seeded by the caller or discovered on an index page, consumed
// exactly once by the orchestrator, and never mutated.
type CrawlTarget struct {
	URL string

	// DiscoveredFrom is the URL of the page that linked here.
	// Empty for caller-seeded targets.
	DiscoveredFrom string
}

// LinkDiscoverer extracts same-site, article-shaped candidate URLs from an
// index-like page.
//
// Every anchor href is resolved against originURL to absolute form and
// retained only if its scheme is http/https, its canonical site equals
// site (the domain-scoping invariant that bounds a crawl to one site), its
// path does not end in a known non-article file extension, and its path is
// neither a navigational page nor a near-empty root index.
//
// locator narrows discovery to a rule-supplied CSS selector; empty means
// every anchor. The result is deduplicated within the page but not against
// prior work - run-level deduplication belongs to the orchestrator.
type LinkDiscoverer interface {
	DiscoverLinks(html, originURL string, site CanonicalSite, locator string) ([]string, error)
}

// FeedDiscoverer finds article URLs via a site's syndication feed.
// Used as a fallback when selector-based discovery on an index page comes
// up empty.
type FeedDiscoverer interface {
	// DiscoverURLs probes conventional feed locations relative to the
	// origin URL's site root and returns entry links, unfiltered.
	DiscoverURLs(ctx context.Context, originURL string) ([]string, error)
}

// RobotsPolicy answers whether a URL may be fetched at all.
type RobotsPolicy interface {
	// Allowed reports whether the site's robots.txt permits fetching
	// the URL. An unreachable or missing robots.txt is permissive.
	Allowed(ctx context.Context, url string) bool
}

// DomainLimiter provides per-site request throttling (politeness).
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the site.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, site CanonicalSite) error
}
