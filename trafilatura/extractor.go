// Package trafilatura provides a heuristic article extractor backed by
// go-trafilatura's content-density analysis.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"kbingest"
)

// Ensure Extractor implements kbingest.HeuristicExtractor at compile time.
var _ kbingest.HeuristicExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to recover the main prose block of a page,
// stripping navigation, ads and comments.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract analyzes the page and returns its article content, title (from
// document metadata or the dominant heading) and author (from metadata).
//
// A page that parses but contains no article-like content returns
// (nil, nil): that is the caller's signal to fall back to link discovery.
// Unparseable input returns an error instead; the two outcomes are handled
// differently upstream and must not be conflated.
func (e *Extractor) Extract(rawHTML string) (*kbingest.Extraction, error) {
	if rawHTML == "" {
		return nil, kbingest.Errorf(kbingest.EINVALID, "empty HTML input")
	}

	// html.Parse never fails on string input, but a document with no
	// element nodes at all means we were handed something other than HTML.
	if _, err := html.Parse(strings.NewReader(rawHTML)); err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "failed to parse HTML: %v", err)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Trafilatura reports "no content found" as an error; for us it
		// is the not-an-article signal, not a failure.
		return nil, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(result.ContentText) == "" && strings.TrimSpace(contentHTML) == "" {
		return nil, nil
	}

	return &kbingest.Extraction{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		Author:      result.Metadata.Author,
	}, nil
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
