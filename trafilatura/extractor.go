// Package trafilatura implements newsdigest.Extractor on top of
// go-trafilatura. It serves as a site-agnostic fallback when the CSS
// selector extractors find too little text.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/newsdigest"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements newsdigest.Extractor at compile time.
var _ newsdigest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the article body as plain text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract implements newsdigest.Extractor.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*newsdigest.Article, error) {
	if rawHTML == "" {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &newsdigest.Article{
		Title:   newsdigest.TrimSpace(result.Metadata.Title),
		Content: newsdigest.CollapseSpace(result.ContentText),
		URL:     pageURL,
		Source:  newsdigest.SourceLabel(pageURL),
	}, nil
}
