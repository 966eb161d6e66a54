// Package pdf implements kbingest.DocumentExtractor using
// github.com/ledongthuc/pdf.
package pdf

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"kbingest"
)

// Ensure Extractor implements kbingest.DocumentExtractor at compile time.
var _ kbingest.DocumentExtractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF documents page by page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText reads the document and returns the concatenated text of all
// pages. A page that fails to decode is skipped; real-world PDFs routinely
// contain a few malformed pages and losing them is better than losing the
// book. An unreadable file is an error.
func (e *Extractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", kbingest.Errorf(kbingest.EINVALID, "failed to open PDF %q: %v", path, err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := extractPageText(page)
		if err != nil || strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	if len(pages) == 0 {
		return "", kbingest.Errorf(kbingest.EINVALID, "no extractable text in PDF %q", path)
	}
	return strings.Join(pages, "\n\n"), nil
}

// extractPageText isolates the library call; the decoder panics on some
// malformed content streams and a panic on one page must not abort the
// document.
func extractPageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = kbingest.Errorf(kbingest.EINTERNAL, "page decode panic: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}
