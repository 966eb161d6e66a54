package kbingest

import (
	"path/filepath"
	"strings"
)

// DocumentExtractor pulls plain text out of a local document (a PDF book).
// It is a black box to the crawl engine: the orchestration boundary wraps
// its output into a single Item tagged ContentTypeBook.
type DocumentExtractor interface {
	ExtractText(path string) (string, error)
}

// BookTitle derives a display title from a document file name:
// "system_design_primer.pdf" becomes "System Design Primer".
func BookTitle(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")

	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
