// Package crawl turns article URLs into summarized results. It coordinates
// rate limiting, fetching with retries, extraction and summarization.
package crawl

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/bloom"
	"golang.org/x/sync/errgroup"
)

var _ newsdigest.ArticleProcessor = (*Processor)(nil)

// Processor implements newsdigest.ArticleProcessor.
//
// Fetcher, Extractor and Summarizer are required. A nil RateLimiter
// disables rate limiting. Concurrency below 2 processes URLs one at a time.
type Processor struct {
	Fetcher     newsdigest.Fetcher
	Extractor   newsdigest.Extractor
	Summarizer  newsdigest.Summarizer
	RateLimiter newsdigest.DomainLimiter
	Concurrency int

	// RetryDelays defaults to DefaultRetryDelays when nil.
	RetryDelays []time.Duration

	// Now defaults to time.Now.
	Now func() time.Time

	// Logf, if set, receives retry notices.
	Logf LogFunc
}

// outcome holds the result of processing a single URL.
type outcome struct {
	position int
	url      string
	result   *newsdigest.Result
	err      error
}

// ProcessAll processes urls and returns the successful results in input
// order. Duplicate URLs are processed once. Each URL's outcome is reported
// to progress, if provided, from the calling goroutine. A failing URL is
// skipped; the only error returned is the context's.
func (p *Processor) ProcessAll(ctx context.Context, urls []string, progress newsdigest.ProcessProgressFunc) ([]*newsdigest.Result, error) {
	urls = dedupe(urls)

	outcomes := make(chan outcome, len(urls))

	var g errgroup.Group
	g.SetLimit(max(1, p.Concurrency))

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				result, err := p.processURL(ctx, u)
				outcomes <- outcome{position: i, url: u, result: result, err: err}
				return nil
			})
		}
		_ = g.Wait()
		close(outcomes)
	}()

	ordered := make([]*newsdigest.Result, len(urls))
	completed := 0
	for o := range outcomes {
		completed++
		ordered[o.position] = o.result
		if progress != nil {
			progress(newsdigest.ProcessProgress{
				URL:       o.url,
				Completed: completed,
				Total:     len(urls),
				Result:    o.result,
				Error:     o.err,
			})
		}
	}

	results := make([]*newsdigest.Result, 0, len(urls))
	for _, r := range ordered {
		if r != nil {
			results = append(results, r)
		}
	}

	return results, ctx.Err()
}

// processURL fetches, extracts and summarizes a single article.
func (p *Processor) processURL(ctx context.Context, rawURL string) (*newsdigest.Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "invalid URL: %q", rawURL)
	}

	if p.RateLimiter != nil {
		if err := p.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, p.Fetcher.Fetch, p.Logf, delays)
	if err != nil {
		return nil, err
	}

	article, err := p.Extractor.Extract(html, rawURL)
	if err != nil {
		return nil, err
	}
	if article == nil || newsdigest.TrimSpace(article.Content) == "" {
		return nil, newsdigest.Errorf(newsdigest.ENOTFOUND, "no article content found at %s", rawURL)
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}

	result := newsdigest.NewResult(article, p.Summarizer.Summarize(article.Content), now())
	result.ContentHash = ComputeHash(article.Content)
	return result, nil
}

// dedupe drops repeated URLs, keeping first occurrences in order.
func dedupe(urls []string) []string {
	seen := bloom.NewFilter(uint(len(urls)), bloom.DefaultFalsePositiveRate)
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !seen.Seen(u) {
			out = append(out, u)
		}
	}
	return out
}
