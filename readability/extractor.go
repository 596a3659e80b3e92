// Package readability implements newsdigest.Extractor on top of
// go-readability, the last fallback in the extraction chain.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/newsdigest"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements newsdigest.Extractor at compile time.
var _ newsdigest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article body as plain text.
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

	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "invalid page URL: %v", err)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}

	return &newsdigest.Article{
		Title:   newsdigest.TrimSpace(article.Title),
		Content: newsdigest.CollapseSpace(article.TextContent),
		URL:     pageURL,
		Source:  newsdigest.SourceLabel(pageURL),
	}, nil
}
