// Package readability provides a heuristic article extractor backed by
// go-readability. It serves as a second opinion when trafilatura finds
// nothing.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"

	"kbingest"
)

// Ensure Extractor implements kbingest.HeuristicExtractor at compile time.
var _ kbingest.HeuristicExtractor = (*Extractor)(nil)

// Extractor wraps go-readability's boilerplate-removal pass.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page's article content, or (nil, nil) when
// readability judges the page to hold no coherent document body.
func (e *Extractor) Extract(rawHTML string) (*kbingest.Extraction, error) {
	if rawHTML == "" {
		return nil, kbingest.Errorf(kbingest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		// Readability errors mean "nothing readable here", which is the
		// not-an-article signal rather than a hard failure.
		return nil, nil
	}

	if strings.TrimSpace(article.TextContent) == "" {
		return nil, nil
	}

	return &kbingest.Extraction{
		Title:       article.Title,
		ContentHTML: article.Content,
		Author:      article.Byline,
	}, nil
}
