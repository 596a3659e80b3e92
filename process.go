package newsdigest

import "context"

// ProcessProgress reports the outcome of one URL during a batch.
type ProcessProgress struct {
	URL       string
	Completed int
	Total     int

	// Result is set when the URL was processed successfully.
	Result *Result

	// Error is set when the URL was skipped.
	Error error
}

// ProcessProgressFunc is called as URLs are processed.
type ProcessProgressFunc func(ProcessProgress)

// ArticleProcessor turns a list of article URLs into summarized results.
// Implementations hide fetching, retries, extraction and summarization.
// A URL that fails is reported through progress and skipped; it never
// aborts the batch.
type ArticleProcessor interface {
	ProcessAll(ctx context.Context, urls []string, progress ProcessProgressFunc) ([]*Result, error)
}
