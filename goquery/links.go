package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kbingest"
)

// Ensure LinkDiscoverer implements kbingest.LinkDiscoverer at compile time.
var _ kbingest.LinkDiscoverer = (*LinkDiscoverer)(nil)

// nonArticleExtensions lists path suffixes that never lead to articles:
// images, archives, audio and video.
var nonArticleExtensions = map[string]bool{
	".pdf": true, ".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true,
	".zip": true, ".gz": true, ".tar": true, ".rar": true, ".7z": true,
	".mp3": true, ".wav": true, ".ogg": true, ".m4a": true,
	".mp4": true, ".avi": true, ".mov": true, ".webm": true, ".mkv": true,
	".css": true, ".js": true, ".xml": true, ".json": true,
}

// navigationalSegments lists path segments that mark category, archive and
// site-chrome pages rather than articles.
var navigationalSegments = map[string]bool{
	"category": true, "categories": true, "tag": true, "tags": true,
	"archive": true, "archives": true, "page": true,
	"about": true, "contact": true, "privacy": true, "privacy-policy": true,
	"terms": true, "login": true, "signup": true, "subscribe": true,
	"search": true, "feed": true, "rss": true,
}

// LinkDiscoverer extracts same-site article candidates from index pages.
type LinkDiscoverer struct{}

// NewLinkDiscoverer creates a new LinkDiscoverer.
func NewLinkDiscoverer() *LinkDiscoverer {
	return &LinkDiscoverer{}
}

// DiscoverLinks parses the page and returns absolute candidate URLs in
// document order, deduplicated within the page. locator narrows the anchor
// search; empty means every anchor on the page.
func (d *LinkDiscoverer) DiscoverLinks(html, originURL string, site kbingest.CanonicalSite, locator string) ([]string, error) {
	origin, err := url.Parse(originURL)
	if err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "invalid origin URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "failed to parse HTML: %v", err)
	}

	if locator == "" {
		locator = "a[href]"
	} else if !strings.Contains(locator, "[href]") {
		// Rule locators name the anchor element; only keep ones with hrefs.
		locator += "[href]"
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find(locator).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		resolved := resolveCandidate(origin, href, site)
		if resolved == "" {
			return
		}

		if !seen[resolved] {
			seen[resolved] = true
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveCandidate resolves href against the origin and applies every
// article-shape filter. It returns "" when the candidate is rejected.
func resolveCandidate(origin *url.URL, href string, site kbingest.CanonicalSite) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := origin.ResolveReference(ref)
	resolved.Fragment = ""

	// Only web schemes; javascript:, mailto:, tel: and friends are noise.
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}

	// Domain-scoping invariant: the crawl never leaves the target site.
	if kbingest.Normalize(resolved.String()) != site {
		return ""
	}

	p := resolved.Path

	// Root-level index pages are not articles.
	if p == "" || p == "/" {
		return ""
	}

	if nonArticleExtensions[strings.ToLower(path.Ext(p))] {
		return ""
	}

	for _, segment := range strings.Split(strings.Trim(p, "/"), "/") {
		if navigationalSegments[strings.ToLower(segment)] {
			return ""
		}
	}

	return resolved.String()
}
