// Package yaml loads site rule tables from YAML files, so new sites can be
// onboarded without a rebuild.
package yaml

import (
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"kbingest"
)

// ruleFile is the on-disk shape: a list of site blocks, each carrying an
// ordered rule list. A list (not a map) keeps rule order stable; within a
// site the first matching pattern wins.
type ruleFile struct {
	Sites []siteBlock `yaml:"sites"`
}

type siteBlock struct {
	Site  string      `yaml:"site"`
	Rules []ruleBlock `yaml:"rules"`
}

type ruleBlock struct {
	Name            string   `yaml:"name"`
	URLPattern      string   `yaml:"url_pattern"`
	Strategy        string   `yaml:"strategy"`
	LinkLocator     string   `yaml:"link_locator"`
	TitleLocators   []string `yaml:"title_locators"`
	ContentLocators []string `yaml:"content_locators"`
	AuthorLocators  []string `yaml:"author_locators"`
	ContentType     string   `yaml:"content_type"`
}

// LoadRules reads a rule table from a YAML file. Rules are added to the
// table in file order.
func LoadRules(path string) (*kbingest.RuleTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "failed to read rules file %q: %v", path, err)
	}
	return ParseRules(data)
}

// ParseRules builds a rule table from YAML bytes.
func ParseRules(data []byte) (*kbingest.RuleTable, error) {
	var file ruleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "failed to parse rules file: %v", err)
	}

	table := kbingest.NewRuleTable()
	for _, block := range file.Sites {
		if block.Site == "" {
			return nil, kbingest.Errorf(kbingest.EINVALID, "site block missing site identity")
		}
		for _, rb := range block.Rules {
			rule, err := rb.toRule(block.Site)
			if err != nil {
				return nil, err
			}
			table.Add(kbingest.CanonicalSite(block.Site), rule)
		}
	}
	return table, nil
}

func (rb ruleBlock) toRule(site string) (*kbingest.SiteRule, error) {
	if rb.Name == "" {
		return nil, kbingest.Errorf(kbingest.EINVALID, "site %q: rule missing name", site)
	}
	if rb.URLPattern == "" {
		return nil, kbingest.Errorf(kbingest.EINVALID, "rule %q: url_pattern required", rb.Name)
	}
	pattern, err := regexp.Compile("^(?:" + rb.URLPattern + ")")
	if err != nil {
		return nil, kbingest.Errorf(kbingest.EINVALID, "rule %q: invalid url_pattern: %v", rb.Name, err)
	}

	strategy, err := parseStrategy(rb.Name, rb.Strategy)
	if err != nil {
		return nil, err
	}
	contentType, err := parseContentType(rb.Name, rb.ContentType)
	if err != nil {
		return nil, err
	}

	return &kbingest.SiteRule{
		Name:            rb.Name,
		URLPattern:      pattern,
		Strategy:        strategy,
		LinkLocator:     rb.LinkLocator,
		TitleLocators:   rb.TitleLocators,
		ContentLocators: rb.ContentLocators,
		AuthorLocators:  rb.AuthorLocators,
		ContentType:     contentType,
	}, nil
}

func parseStrategy(ruleName, s string) (kbingest.Strategy, error) {
	switch kbingest.Strategy(s) {
	case kbingest.StrategySingleArticle, kbingest.StrategyIndexToArticles:
		return kbingest.Strategy(s), nil
	default:
		return "", kbingest.Errorf(kbingest.EINVALID, "rule %q: unknown strategy %q", ruleName, s)
	}
}

func parseContentType(ruleName, s string) (kbingest.ContentType, error) {
	switch kbingest.ContentType(s) {
	case kbingest.ContentTypeBlog, kbingest.ContentTypePodcast,
		kbingest.ContentTypeBook, kbingest.ContentTypeOther:
		return kbingest.ContentType(s), nil
	case "":
		// Index rules never emit items; a content type is noise there.
		return kbingest.ContentTypeOther, nil
	default:
		return "", kbingest.Errorf(kbingest.EINVALID, "rule %q: unknown content_type %q", ruleName, s)
	}
}
