package kbingest

import "regexp"

// Strategy tells the orchestrator how to handle a URL family.
type Strategy string

// Crawl strategies.
const (
	// StrategySingleArticle extracts one item from the page.
	StrategySingleArticle Strategy = "single_article"

	// StrategyIndexToArticles treats the page as a listing and follows
	// its links instead of extracting content.
	StrategyIndexToArticles Strategy = "index_to_articles"
)

// SiteRule is a declarative record describing how to classify and extract
// one family of URLs on one site. Rules are immutable after table load.
//
// Locator lists are ordered cascades: the first locator that yields a
// non-empty match wins, so a site redesign can be patched by prepending a
// new locator without breaking old pages.
type SiteRule struct {
	// Name identifies the rule in logs (e.g., "blog_article").
	Name string

	// URLPattern is matched against the full URL, anchored at the start.
	URLPattern *regexp.Regexp

	Strategy Strategy

	// LinkLocator selects article anchors on index pages.
	// Only meaningful for StrategyIndexToArticles; empty means generic
	// anchor discovery.
	LinkLocator string

	TitleLocators   []string
	ContentLocators []string
	AuthorLocators  []string

	ContentType ContentType
}

// MustPattern compiles a URL pattern anchored at the start of the URL,
// mirroring prefix-match semantics. It panics on an invalid pattern and is
// intended for rule table literals.
func MustPattern(pattern string) *regexp.Regexp {
	return regexp.MustCompile("^(?:" + pattern + ")")
}

// RuleTable maps canonical site identities to ordered rule lists.
// Within one site, rules are tried in declaration order and the first
// URLPattern match wins - ordering is significant.
type RuleTable struct {
	rules map[CanonicalSite][]*SiteRule
	sites []CanonicalSite // registration order, for listing
}

// NewRuleTable returns an empty RuleTable.
func NewRuleTable() *RuleTable {
	return &RuleTable{rules: make(map[CanonicalSite][]*SiteRule)}
}

// Add registers a rule under a canonical site, preserving declaration order.
func (t *RuleTable) Add(site CanonicalSite, rule *SiteRule) {
	if _, ok := t.rules[site]; !ok {
		t.sites = append(t.sites, site)
	}
	t.rules[site] = append(t.rules[site], rule)
}

// Match returns the first rule (in declaration order) registered under the
// URL's canonical site whose pattern matches the full URL. A nil result is
// not an error: it signals "use the generic heuristic strategy".
func (t *RuleTable) Match(rawURL string) *SiteRule {
	if t == nil {
		return nil
	}
	for _, rule := range t.rules[Normalize(rawURL)] {
		if rule.URLPattern.MatchString(rawURL) {
			return rule
		}
	}
	return nil
}

// Sites returns the registered canonical sites in registration order.
func (t *RuleTable) Sites() []CanonicalSite {
	out := make([]CanonicalSite, len(t.sites))
	copy(out, t.sites)
	return out
}

// Rules returns the ordered rule list for a site.
func (t *RuleTable) Rules(site CanonicalSite) []*SiteRule {
	return t.rules[site]
}
