package mock

import "kbingest"

var _ kbingest.RuleExtractor = (*RuleExtractor)(nil)

// RuleExtractor is a mock implementation of kbingest.RuleExtractor.
type RuleExtractor struct {
	ExtractFn func(html string, rule *kbingest.SiteRule) (*kbingest.Extraction, error)
}

func (e *RuleExtractor) Extract(html string, rule *kbingest.SiteRule) (*kbingest.Extraction, error) {
	return e.ExtractFn(html, rule)
}

var _ kbingest.HeuristicExtractor = (*HeuristicExtractor)(nil)

// HeuristicExtractor is a mock implementation of kbingest.HeuristicExtractor.
type HeuristicExtractor struct {
	ExtractFn func(html string) (*kbingest.Extraction, error)
}

func (e *HeuristicExtractor) Extract(html string) (*kbingest.Extraction, error) {
	return e.ExtractFn(html)
}
