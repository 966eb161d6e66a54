package kbingest

import (
	"net/url"
	"strings"
)

// CanonicalSite is a normalized host identity used to group a platform's
// subdomains under one rule table entry. It is always derived from a URL,
// never stored independently.
type CanonicalSite string

// platformSuffixes maps multi-tenant publishing platforms to their bare
// domain. Any host ending in a suffix collapses to the parent platform so
// that one rule entry covers every tenant subdomain.
var platformSuffixes = map[string]CanonicalSite{
	".substack.com":     "substack.com",
	".medium.com":       "medium.com",
	".gitconnected.com": "gitconnected.com",
}

// Normalize maps a URL to its canonical site identity. It strips a leading
// "www." and collapses known multi-tenant platform subdomains. Normalize is
// a pure function with no failure mode: a URL that cannot be parsed yields
// the input verbatim.
func Normalize(rawURL string) CanonicalSite {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return CanonicalSite(rawURL)
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	for suffix, platform := range platformSuffixes {
		if strings.HasSuffix(host, suffix) {
			return platform
		}
	}
	return CanonicalSite(host)
}
