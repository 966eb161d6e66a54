// Package htmltomarkdown converts extracted HTML fragments into clean,
// normalized markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"kbingest"
)

// Ensure Converter implements kbingest.Converter at compile time.
var _ kbingest.Converter = (*Converter)(nil)

// blankRuns matches two or more consecutive blank (or whitespace-only)
// lines. Collapsing with this pattern is idempotent: applying it to
// already-collapsed text changes nothing.
var blankRuns = regexp.MustCompile(`\n[ \t]*\n(?:[ \t]*\n)+`)

// Converter wraps html-to-markdown and post-processes its output.
// Hyperlinks and images survive conversion; lines are never hard-wrapped.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into markdown, collapses runs of blank
// lines to a single blank line and trims surrounding whitespace.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", kbingest.Errorf(kbingest.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return CollapseBlankLines(result), nil
}

// CollapseBlankLines reduces any run of two or more blank lines to exactly
// one blank line and trims leading/trailing whitespace. Applying it twice
// gives the same result as applying it once.
func CollapseBlankLines(s string) string {
	return strings.TrimSpace(blankRuns.ReplaceAllString(s, "\n\n"))
}
