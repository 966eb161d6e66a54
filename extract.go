package kbingest

// Extraction holds the fields recovered from one article page.
// ContentHTML is the raw content subtree; the orchestrator converts it to
// markdown before assembling an Item.
type Extraction struct {
	Title string

	// ContentHTML is the main content as an HTML fragment.
	// Empty when no content locator matched (a recoverable condition).
	ContentHTML string

	// Author may be empty; many guide pages carry no byline.
	Author string
}

// RuleExtractor extracts fields from HTML using a site rule's locator
// cascades. For each of title/content/author independently, locators are
// tried in order and the first non-empty match wins. Missing fields degrade
// to empty strings rather than failing the extraction.
type RuleExtractor interface {
	Extract(html string, rule *SiteRule) (*Extraction, error)
}

// HeuristicExtractor recovers a best-effort title/author/body from a page
// with no site-specific rule, using boilerplate-removal heuristics.
//
// A (nil, nil) return is a control signal, not an error: it means the page
// holds no extractable article-like content and the caller should try link
// discovery instead. A non-nil error means the page could not be analyzed
// at all and the URL should be abandoned. The two must stay distinguishable
// because the orchestrator reacts differently to each.
type HeuristicExtractor interface {
	Extract(html string) (*Extraction, error)
}
