// Package goquery provides CSS-selector based extraction and link
// discovery over parsed HTML documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kbingest"
)

// Ensure Extractor implements kbingest.RuleExtractor at compile time.
var _ kbingest.RuleExtractor = (*Extractor)(nil)

// Extractor applies a site rule's locator cascades to a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract evaluates each field's locator cascade against the document.
// Earlier locators represent the preferred/specific match and win even if a
// later locator also matches; evaluation stops at the first success.
// A field whose cascade never matches is empty in the result - missing
// fields are a degraded extraction, not a failure.
func (e *Extractor) Extract(html string, rule *kbingest.SiteRule) (*kbingest.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "failed to parse HTML: %v", err)
	}

	return &kbingest.Extraction{
		Title:       firstText(doc, rule.TitleLocators),
		ContentHTML: firstHTML(doc, rule.ContentLocators),
		Author:      firstText(doc, rule.AuthorLocators),
	}, nil
}

// firstText returns the flattened, trimmed text of the first locator in the
// cascade that selects a node with non-empty text.
func firstText(doc *goquery.Document, locators []string) string {
	for _, locator := range locators {
		sel := doc.Find(locator).First()
		if sel.Length() == 0 {
			continue
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			return text
		}
	}
	return ""
}

// firstHTML returns the outer HTML of the first locator in the cascade that
// selects a node.
func firstHTML(doc *goquery.Document, locators []string) string {
	for _, locator := range locators {
		sel := doc.Find(locator).First()
		if sel.Length() == 0 {
			continue
		}
		html := outerHTML(sel)
		if strings.TrimSpace(html) != "" {
			return html
		}
	}
	return ""
}

// outerHTML renders a selection including its own tags, so the markdown
// converter sees the full content subtree.
func outerHTML(sel *goquery.Selection) string {
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return html
}
