// Package crawl provides the ingest orchestration: breadth-first traversal
// of seed URLs, rule-based classification, extraction of article-shaped
// pages and link discovery on index pages.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"kbingest"
)

// Frontier sizing. A single run never legitimately approaches the expected
// URL count; the Bloom filter is sized generously so false positive skips
// stay negligible.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01

	// DefaultMaxURLs bounds a run. Cyclic or very large link graphs would
	// otherwise crawl indefinitely.
	DefaultMaxURLs = 1000
)

// Crawler orchestrates one ingest run. All collaborators are injected;
// Feeds, Robots, Limiter and Logger are optional.
type Crawler struct {
	Rules         *kbingest.RuleTable
	Fetcher       kbingest.Fetcher
	RuleExtractor kbingest.RuleExtractor

	// Heuristics are tried in order for URLs no rule matches. An empty
	// slice disables generic extraction: unmatched URLs then yield zero
	// items (a configuration gap, not a crash).
	Heuristics []kbingest.HeuristicExtractor

	Discoverer kbingest.LinkDiscoverer
	Converter  kbingest.Converter
	Feeds      kbingest.FeedDiscoverer
	Robots     kbingest.RobotsPolicy
	Limiter    kbingest.DomainLimiter
	Logger     *slog.Logger

	// MaxURLs caps the number of URLs processed in one run.
	// Zero means DefaultMaxURLs.
	MaxURLs int

	RetryDelays []time.Duration
}

// Result holds the outcome of one run. Items appear in extraction
// completion order.
type Result struct {
	Items     []kbingest.Item
	Processed int
	Failed    int
	Skipped   int
}

// Run drives a breadth-first traversal from the seed URLs. Each dequeued
// URL is classified against the rule table and either extracted (article
// pages) or mined for further same-site links (index pages). Extracted
// items carry the supplied userID.
//
// No per-URL failure terminates the run; fetch and parse errors are
// recorded and the URL abandoned. Run returns early only when the context
// is canceled, and even then reports the partial result.
func (c *Crawler) Run(ctx context.Context, seeds []string, userID string) (*Result, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("run", uuid.NewString())

	maxURLs := c.MaxURLs
	if maxURLs <= 0 {
		maxURLs = DefaultMaxURLs
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, seed := range seeds {
		frontier.Push(kbingest.CrawlTarget{URL: seed})
	}

	result := &Result{}
	contentSeen := make(map[uint64]string)

	for {
		target, ok := frontier.Pop()
		if !ok {
			break
		}
		if result.Processed >= maxURLs {
			logger.Warn("crawl bound reached", "max_urls", maxURLs, "queued", frontier.Len())
			break
		}
		if ctx.Err() != nil {
			break
		}
		result.Processed++

		c.processTarget(ctx, logger, target, userID, frontier, contentSeen, result)
	}

	logger.Info("run finished",
		"items", len(result.Items),
		"processed", result.Processed,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
	return result, nil
}

// processTarget handles one dequeued URL end to end.
func (c *Crawler) processTarget(ctx context.Context, logger *slog.Logger, target kbingest.CrawlTarget, userID string, frontier *Frontier, contentSeen map[uint64]string, result *Result) {
	site := kbingest.Normalize(target.URL)

	if c.Robots != nil && !c.Robots.Allowed(ctx, target.URL) {
		logger.Info("disallowed by robots.txt", "url", target.URL)
		result.Skipped++
		return
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, site); err != nil {
			return // context canceled
		}
	}

	rule := c.Rules.Match(target.URL)

	html, err := FetchWithRetryDelays(ctx, target.URL, c.Fetcher.Fetch, c.retryDelays())
	if err != nil {
		logger.Warn("fetch failed", "url", target.URL, "err", err)
		result.Failed++
		return
	}

	switch {
	case rule != nil && rule.Strategy == kbingest.StrategySingleArticle:
		c.extractArticle(logger, target, html, rule, userID, contentSeen, result)

	case rule != nil && rule.Strategy == kbingest.StrategyIndexToArticles:
		c.discoverLinks(ctx, logger, target, html, site, rule.LinkLocator, frontier)

	default:
		c.extractGeneric(ctx, logger, target, html, site, userID, frontier, contentSeen, result)
	}
}

// extractArticle runs the selector-cascade extractor and appends an item.
// An article page is assumed not to also be an index page: no link
// discovery happens here.
func (c *Crawler) extractArticle(logger *slog.Logger, target kbingest.CrawlTarget, html string, rule *kbingest.SiteRule, userID string, contentSeen map[uint64]string, result *Result) {
	extraction, err := c.RuleExtractor.Extract(html, rule)
	if err != nil {
		logger.Warn("extraction failed", "url", target.URL, "rule", rule.Name, "err", err)
		result.Failed++
		return
	}

	c.appendItem(logger, target, extraction, rule.ContentType, userID, contentSeen, result)
}

// extractGeneric tries the heuristic extractors in order. A nil extraction
// from every heuristic means the page is not an article; the crawler falls
// back to link discovery. A heuristic error abandons the URL.
func (c *Crawler) extractGeneric(ctx context.Context, logger *slog.Logger, target kbingest.CrawlTarget, html string, site kbingest.CanonicalSite, userID string, frontier *Frontier, contentSeen map[uint64]string, result *Result) {
	if len(c.Heuristics) == 0 {
		logger.Warn("no rule matches and generic extraction is disabled", "url", target.URL)
		result.Skipped++
		return
	}

	for _, h := range c.Heuristics {
		extraction, err := h.Extract(html)
		if err != nil {
			logger.Warn("heuristic extraction failed", "url", target.URL, "err", err)
			result.Failed++
			return
		}
		if extraction != nil {
			c.appendItem(logger, target, extraction, kbingest.ContentTypeOther, userID, contentSeen, result)
			return
		}
	}

	// Not an article. Treat the page as an index and mine it for links.
	c.discoverLinks(ctx, logger, target, html, site, "", frontier)
}

// discoverLinks extracts same-site candidates and enqueues the unseen
// ones. When selector discovery finds nothing, a syndication feed probe
// serves as a fallback.
func (c *Crawler) discoverLinks(ctx context.Context, logger *slog.Logger, target kbingest.CrawlTarget, html string, site kbingest.CanonicalSite, locator string, frontier *Frontier) {
	links, err := c.Discoverer.DiscoverLinks(html, target.URL, site, locator)
	if err != nil {
		logger.Warn("link discovery failed", "url", target.URL, "err", err)
		return
	}

	if len(links) == 0 && c.Feeds != nil {
		feedLinks, err := c.Feeds.DiscoverURLs(ctx, target.URL)
		if err == nil {
			for _, link := range feedLinks {
				if kbingest.Normalize(link) == site {
					links = append(links, link)
				}
			}
			if len(links) > 0 {
				logger.Info("links recovered from feed", "url", target.URL, "count", len(links))
			}
		}
	}

	enqueued := 0
	for _, link := range links {
		if frontier.Push(kbingest.CrawlTarget{URL: link, DiscoveredFrom: target.URL}) {
			enqueued++
		}
	}
	logger.Info("index page processed", "url", target.URL, "discovered", len(links), "enqueued", enqueued)
}

// appendItem converts the extraction to markdown, applies the title
// fallback, deduplicates by content hash and appends to the result.
func (c *Crawler) appendItem(logger *slog.Logger, target kbingest.CrawlTarget, extraction *kbingest.Extraction, contentType kbingest.ContentType, userID string, contentSeen map[uint64]string, result *Result) {
	var markdown string
	if strings.TrimSpace(extraction.ContentHTML) == "" {
		logger.Warn("no content extracted", "url", target.URL)
	} else {
		var err error
		markdown, err = c.Converter.Convert(extraction.ContentHTML)
		if err != nil {
			logger.Warn("markdown conversion failed", "url", target.URL, "err", err)
			markdown = ""
		}
	}

	title := extraction.Title
	if title == "" {
		title = TitleFromURL(target.URL)
		logger.Warn("no title extracted, derived from URL", "url", target.URL, "title", title)
	}

	if markdown != "" {
		hash := xxhash.Sum64String(markdown)
		if prev, ok := contentSeen[hash]; ok {
			logger.Info("duplicate content skipped", "url", target.URL, "first_seen", prev)
			return
		}
		contentSeen[hash] = target.URL
	}

	result.Items = append(result.Items, kbingest.Item{
		Title:       title,
		Content:     markdown,
		ContentType: contentType,
		SourceURL:   target.URL,
		Author:      extraction.Author,
		UserID:      userID,
	})
}

func (c *Crawler) retryDelays() []time.Duration {
	if c.RetryDelays == nil {
		return DefaultRetryDelays()
	}
	return c.RetryDelays
}

// TitleFromURL derives a title from the last non-empty path segment of a
// URL, falling back to the URL itself.
func TitleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segments[len(segments)-1]
	if last == "" {
		return rawURL
	}
	return last
}
