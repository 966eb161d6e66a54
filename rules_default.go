package kbingest

// DefaultRuleTable returns the built-in site configuration. Adding support
// for a new site means adding entries here (or shipping a YAML rule file);
// the engine itself never changes.
func DefaultRuleTable() *RuleTable {
	t := NewRuleTable()

	t.Add("interviewing.io", &SiteRule{
		Name:        "blog_index",
		URLPattern:  MustPattern(`https://interviewing\.io/blog/?$`),
		Strategy:    StrategyIndexToArticles,
		LinkLocator: "a.blog-post-card-link",
		ContentType: ContentTypeBlog,
	})
	t.Add("interviewing.io", &SiteRule{
		Name:            "blog_article",
		URLPattern:      MustPattern(`https://interviewing\.io/blog/[^/]+/?$`),
		Strategy:        StrategySingleArticle,
		TitleLocators:   []string{"h1"},
		ContentLocators: []string{".blog-post-content", "div.html-content", "div.markdown-content"},
		AuthorLocators:  []string{".author-name"},
		ContentType:     ContentTypeBlog,
	})
	t.Add("interviewing.io", &SiteRule{
		Name:        "topics_index",
		URLPattern:  MustPattern(`https://interviewing\.io/topics/?$`),
		Strategy:    StrategyIndexToArticles,
		LinkLocator: "#companies a.resource-card",
		ContentType: ContentTypeOther,
	})
	t.Add("interviewing.io", &SiteRule{
		Name:        "learn_index",
		URLPattern:  MustPattern(`https://interviewing\.io/learn/?$`),
		Strategy:    StrategyIndexToArticles,
		LinkLocator: "#interview-guides a.resource-card",
		ContentType: ContentTypeOther,
	})
	t.Add("interviewing.io", &SiteRule{
		Name:            "guide_article",
		URLPattern:      MustPattern(`https://interviewing\.io/(?:topics|learn)/[^/]+/?$`),
		Strategy:        StrategySingleArticle,
		TitleLocators:   []string{"h1"},
		ContentLocators: []string{"div.html-content", "div.markdown-content"},
		ContentType:     ContentTypeOther,
	})

	t.Add("nilmamano.com", &SiteRule{
		Name:        "dsa_blog_index",
		URLPattern:  MustPattern(`https://nilmamano\.com/blog/category/dsa/?$`),
		Strategy:    StrategyIndexToArticles,
		LinkLocator: "article h2.entry-title a",
		ContentType: ContentTypeBlog,
	})
	t.Add("nilmamano.com", &SiteRule{
		Name:            "dsa_blog_article",
		URLPattern:      MustPattern(`https://nilmamano\.com/blog/[^/]+/[^/]+/?$`),
		Strategy:        StrategySingleArticle,
		TitleLocators:   []string{"h1.entry-title"},
		ContentLocators: []string{".entry-content"},
		AuthorLocators:  []string{".author"},
		ContentType:     ContentTypeBlog,
	})

	t.Add("substack.com", &SiteRule{
		Name:            "generic_post",
		URLPattern:      MustPattern(`https://[a-zA-Z0-9-]+\.substack\.com/p/[^/]+/?$`),
		Strategy:        StrategySingleArticle,
		TitleLocators:   []string{"h1.post-title"},
		ContentLocators: []string{"div.html-content"},
		AuthorLocators:  []string{".byline-text"},
		ContentType:     ContentTypeBlog,
	})

	t.Add("medium.com", &SiteRule{
		Name:            "article",
		URLPattern:      MustPattern(`https://medium\.com/(@[\w\d-]+)?/[^/]+-[\w\d]+/?$`),
		Strategy:        StrategySingleArticle,
		TitleLocators:   []string{"h1"},
		ContentLocators: []string{"div[data-testid='post-content']", "article", "div.pw-post-body-paragraph"},
		AuthorLocators:  []string{"a[data-testid='authorName']"},
		ContentType:     ContentTypeBlog,
	})

	t.Add("freecodecamp.org", &SiteRule{
		Name:            "news_article",
		URLPattern:      MustPattern(`https://www\.freecodecamp\.org/news/[^/]+/?$`),
		Strategy:        StrategySingleArticle,
		TitleLocators:   []string{"h1.post-full-title"},
		ContentLocators: []string{"section.post-content"},
		AuthorLocators:  []string{"a.author-card-name"},
		ContentType:     ContentTypeBlog,
	})

	t.Add("gitconnected.com", &SiteRule{
		Name:            "levelup_article",
		URLPattern:      MustPattern(`https://levelup\.gitconnected\.com/[^/]+-[a-f0-9]+/?$`),
		Strategy:        StrategySingleArticle,
		TitleLocators:   []string{"h1.entry-title"},
		ContentLocators: []string{"div.entry-content"},
		AuthorLocators:  []string{".author-name a"},
		ContentType:     ContentTypeBlog,
	})

	return t
}
