package kbingest

// Converter converts an extracted HTML fragment into clean markdown.
// Conversions are deterministic: hyperlinks and images are preserved, lines
// are not hard-wrapped, and runs of blank lines collapse to a single blank
// line. Re-running the blank-line collapse on already-collapsed text is a
// no-op.
type Converter interface {
	Convert(html string) (string, error)
}
