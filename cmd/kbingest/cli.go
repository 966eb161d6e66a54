package main

import (
	"context"
	"io"
)

// Dependencies holds configuration and writers for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run   RunCmd   `cmd:"" help:"Crawl the configured sources and write the collection artifact"`
	Sites SitesCmd `cmd:"" help:"List the sites with extraction rules"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	TeamID string   `arg:"" help:"Team identity stamped on the output collection"`
	Seeds  []string `arg:"" optional:"" help:"Seed URLs to crawl"`

	UserID     string  `short:"u" help:"User identity stamped on each item"`
	PDF        string  `help:"Path to a local PDF book to ingest"`
	PDFSource  string  `help:"Source label stamped on the PDF item; defaults to a title derived from the file name"`
	PDFAuthor  string  `help:"Author credited on the PDF item"`
	Rules      string  `short:"r" help:"YAML rules file; omit to use the built-in rule table"`
	Output     string  `short:"o" help:"Output file path; omit to write JSON to stdout"`
	MaxURLs    int     `default:"1000" help:"Bound on URLs processed in one run"`
	RPS        float64 `default:"1.0" help:"Per-site request rate limit"`
	Verbose    bool    `short:"v" help:"Log progress to stderr"`
	NoRobots   bool    `help:"Skip robots.txt checks"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct {
	Rules string `short:"r" help:"YAML rules file; omit to use the built-in rule table"`
}
