package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/newsdigest"
)

// DefaultURLs are summarized when no URLs or sitemap are given.
var DefaultURLs = []string{
	"https://www.prothomalo.com/bangladesh/nyv4t76ydg",
	"https://bangla.thedailystar.net/international/news-700181",
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Processor newsdigest.ArticleProcessor
	Sitemaps  newsdigest.SitemapService
	Writer    newsdigest.ResultWriter

	// Results is nil when no history database is configured.
	Results newsdigest.ResultService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URLs        []string      `arg:"" optional:"" name:"url" help:"Article URLs to summarize (default: built-in Bangla news list)"`
	Output      string        `short:"o" default:"summaries.csv" env:"NEWSDIGEST_OUTPUT" help:"CSV output path"`
	Sentences   int           `short:"s" default:"2" help:"Sentences per summary"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetch limit"`
	Rate        float64       `short:"r" default:"1" help:"Requests per second per domain (0 disables limiting)"`
	Browser     bool          `short:"b" help:"Render pages in headless Chrome"`
	DB          string        `name:"db" env:"NEWSDIGEST_DB" help:"SQLite database for result history (disabled when empty)"`
	Sitemap     string        `help:"Sitemap or site URL to discover article URLs from"`
	Limit       int           `short:"n" default:"10" help:"Maximum URLs taken from the sitemap (0 = all)"`
	History     int           `help:"Print the N most recent results from --db and exit"`
	Verbose     bool          `short:"v" help:"Log fetch, extract and summarize details to stderr"`
}

// SummarizeCmd runs one scrape-and-summarize batch.
type SummarizeCmd struct {
	URLs    []string
	Sitemap string
	Limit   int
	Output  string
}

// HistoryCmd lists recently recorded results.
type HistoryCmd struct {
	Limit int
}
