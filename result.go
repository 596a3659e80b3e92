package newsdigest

import (
	"context"
	"time"
)

// Result is one processed article: its metadata, summary and size metrics.
// Lengths are counted in runes.
type Result struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	URL            string    `json:"url"`
	Source         string    `json:"source"`
	Summary        string    `json:"summary"`
	OriginalLength int       `json:"originalLength"`
	SummaryLength  int       `json:"summaryLength"`
	ContentHash    string    `json:"contentHash"`
	Timestamp      time.Time `json:"timestamp"`
}

// NewResult assembles a Result for article and its summary.
func NewResult(article *Article, summary string, now time.Time) *Result {
	return &Result{
		Title:          article.Title,
		URL:            article.URL,
		Source:         article.Source,
		Summary:        summary,
		OriginalLength: runeLen(article.Content),
		SummaryLength:  runeLen(summary),
		Timestamp:      now,
	}
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	if r.Summary == "" {
		return Errorf(EINVALID, "result summary required")
	}
	return nil
}

// Compression returns how much shorter the summary is than the original,
// as a percentage. Returns 0 when the original length is unknown.
func (r *Result) Compression() float64 {
	if r.OriginalLength == 0 {
		return 0
	}
	return 100 - float64(r.SummaryLength)/float64(r.OriginalLength)*100
}

// ResultWriter persists a batch of results.
type ResultWriter interface {
	// WriteResults writes results and returns where they were written.
	// Returns EINVALID if results is empty.
	WriteResults(ctx context.Context, results []*Result) (string, error)
}

// ResultService represents a service for managing the result history.
type ResultService interface {
	// CreateResult stores a new result and assigns its ID.
	CreateResult(ctx context.Context, result *Result) error

	// FindResultByID retrieves a result by ID.
	// Returns ENOTFOUND if the result does not exist.
	FindResultByID(ctx context.Context, id string) (*Result, error)

	// FindResults retrieves results matching the filter, newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*Result, error)
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	Source *string `json:"source"`
	URL    *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
