// Package rod implements newsdigest.Fetcher with a headless Chrome browser
// for news pages that render their articles with JavaScript.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/newsdigest"
)

// DefaultFetchTimeout bounds a single page load, matching the HTTP fetcher.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements newsdigest.Fetcher at compile time.
var _ newsdigest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	session      *Session
	timeout      time.Duration
	recycleAfter int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page load timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRecycleAfter sets how many pages the browser serves before it is
// replaced with a fresh one. Defaults to DefaultRecycleAfter.
func WithRecycleAfter(pages int64) Option {
	return func(f *Fetcher) {
		f.recycleAfter = pages
	}
}

// NewFetcher launches a headless Chrome browser and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:      DefaultFetchTimeout,
		recycleAfter: DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	session, err := NewSession(f.recycleAfter)
	if err != nil {
		return nil, err
	}
	f.session = session

	return f, nil
}

// Fetch navigates to url and returns the HTML after the load event.
// Returns EINVALID once the fetcher is closed.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.session.Page()
	if err != nil {
		return "", err
	}
	defer page.Close()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	return page.HTML()
}

// LauncherPID returns the process ID of the browser launcher, or 0 once
// closed.
func (f *Fetcher) LauncherPID() int {
	return f.session.LauncherPID()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.session.Close()
}
