package main

import (
	"fmt"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/crawl"
)

// reportSamples is how many results the console report details.
const reportSamples = 2

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	urls, err := c.collectURLs(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Starting News Scraper and Summarizer...")
	fmt.Fprintf(deps.Stdout, "Processing %d news articles...\n", len(urls))

	progress := func(p newsdigest.ProcessProgress) {
		fmt.Fprintf(deps.Stdout, "Processing %d/%d: %s\n", p.Completed, p.Total, p.URL)
		if p.Error != nil {
			fmt.Fprintf(deps.Stdout, "  Failed to process: %s (%s)\n", crawl.DisplayURL(p.URL, 80), errorText(p.Error))
			return
		}
		fmt.Fprintf(deps.Stdout, "  Successfully processed: %s...\n", truncate(p.Result.Title, 50))
	}

	results, err := deps.Processor.ProcessAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles could be processed. Check your internet connection.")
		return newsdigest.Errorf(newsdigest.ENOTFOUND, "no articles could be processed")
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprint(deps.Stdout, newsdigest.FormatReport(results, reportSamples))

	path, err := deps.Writer.WriteResults(deps.Ctx, results)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	if c.Output != "" && path != c.Output {
		fmt.Fprintf(deps.Stdout, "\n%s could not be written; used %s instead\n", c.Output, path)
	}
	fmt.Fprintf(deps.Stdout, "\nResults saved to %s\n", path)
	fmt.Fprintf(deps.Stdout, "Total articles processed: %d\n", len(results))

	c.recordHistory(deps, results)
	return nil
}

// collectURLs merges explicit URLs with sitemap discoveries, falling back
// to DefaultURLs when both are empty.
func (c *SummarizeCmd) collectURLs(deps *Dependencies) ([]string, error) {
	urls := append([]string(nil), c.URLs...)

	if c.Sitemap != "" {
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, c.Limit)
		if err != nil {
			return nil, err
		}
		if len(discovered) == 0 {
			return nil, newsdigest.Errorf(newsdigest.ENOTFOUND, "no URLs found in sitemap %s", c.Sitemap)
		}
		fmt.Fprintf(deps.Stdout, "Found %d URLs in %s\n", len(discovered), c.Sitemap)
		urls = append(urls, discovered...)
	}

	if len(urls) == 0 {
		urls = append(urls, DefaultURLs...)
	}
	return urls, nil
}

// recordHistory stores results in the history database. Failures are
// reported but do not fail the run since the CSV is already written.
func (c *SummarizeCmd) recordHistory(deps *Dependencies, results []*newsdigest.Result) {
	if deps.Results == nil {
		return
	}

	stored := 0
	for _, r := range results {
		if err := deps.Results.CreateResult(deps.Ctx, r); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: history not recorded for %s: %s\n", r.URL, errorText(err))
			continue
		}
		stored++
	}
	fmt.Fprintf(deps.Stdout, "Recorded %d results in history\n", stored)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// errorText returns the message of application errors and the full text of
// any other error.
func errorText(err error) string {
	if newsdigest.ErrorCode(err) == newsdigest.EINTERNAL {
		return err.Error()
	}
	return newsdigest.ErrorMessage(err)
}
