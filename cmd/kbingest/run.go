package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"kbingest"
	"kbingest/crawl"
	"kbingest/fs"
	"kbingest/goquery"
	"kbingest/htmltomarkdown"
	kbhttp "kbingest/http"
	"kbingest/pdf"
	"kbingest/readability"
	kbslog "kbingest/slog"
	"kbingest/trafilatura"
	kbyaml "kbingest/yaml"
)

// Run executes the run command: crawl the web seeds and ingest the local
// PDF concurrently, then emit one collection.
func (c *RunCmd) Run(deps *Dependencies) error {
	if len(c.Seeds) == 0 && c.PDF == "" {
		return kbingest.Errorf(kbingest.EINVALID, "nothing to ingest: provide seed URLs, --pdf, or both")
	}

	logger := slog.New(slog.DiscardHandler)
	if c.Verbose {
		logger = slog.New(slog.NewTextHandler(deps.Stderr, nil))
	}

	rules, err := loadRules(c.Rules)
	if err != nil {
		return err
	}

	fetcher := kbslog.NewLoggingFetcher(kbhttp.NewFetcher(), logger)
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Rules:         rules,
		Fetcher:       fetcher,
		RuleExtractor: goquery.NewExtractor(),
		Heuristics: []kbingest.HeuristicExtractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Discoverer: goquery.NewLinkDiscoverer(),
		Converter:  htmltomarkdown.NewConverter(),
		Feeds:      kbhttp.NewFeedDiscoverer(nil),
		Limiter:    crawl.NewSiteLimiter(c.RPS),
		Logger:     logger,
		MaxURLs:    c.MaxURLs,
	}
	if !c.NoRobots {
		crawler.Robots = kbhttp.NewRobotsPolicy(nil)
	}

	// The web crawl and the PDF ingest are independent; run both legs
	// concurrently and merge. A failing PDF aborts the run (it names a
	// specific local file, so failure means the invocation is wrong); the
	// crawl degrades per URL instead.
	var (
		mu    sync.Mutex
		items []kbingest.Item
	)
	g, ctx := errgroup.WithContext(deps.Ctx)

	if len(c.Seeds) > 0 {
		g.Go(func() error {
			result, err := crawler.Run(ctx, c.Seeds, c.UserID)
			if err != nil {
				return err
			}
			mu.Lock()
			items = append(items, result.Items...)
			mu.Unlock()
			return nil
		})
	}

	if c.PDF != "" {
		g.Go(func() error {
			text, err := pdf.NewExtractor().ExtractText(c.PDF)
			if err != nil {
				return err
			}
			title := kbingest.BookTitle(c.PDF)
			// The artifact's source field is a descriptive label for local
			// documents, never the filesystem path.
			source := c.PDFSource
			if source == "" {
				source = title
			}
			mu.Lock()
			items = append(items, kbingest.Item{
				Title:       title,
				Content:     text,
				ContentType: kbingest.ContentTypeBook,
				SourceURL:   source,
				Author:      c.PDFAuthor,
				UserID:      c.UserID,
			})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	collection := &kbingest.Collection{TeamID: c.TeamID, Items: items}

	if c.Output != "" {
		if err := fs.NewWriter(c.Output).WriteCollection(collection); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %d items to %s\n", len(collection.Items), c.Output)
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if collection.Items == nil {
		collection.Items = []kbingest.Item{}
	}
	return enc.Encode(collection)
}

// loadRules returns the rule table: the YAML file when given, otherwise the
// built-in table.
func loadRules(path string) (*kbingest.RuleTable, error) {
	if path == "" {
		return kbingest.DefaultRuleTable(), nil
	}
	return kbyaml.LoadRules(path)
}
