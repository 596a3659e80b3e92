package mock

import "github.com/fwojciec/newsdigest"

var _ newsdigest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of newsdigest.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*newsdigest.Article, error)
}

func (e *Extractor) Extract(html, pageURL string) (*newsdigest.Article, error) {
	return e.ExtractFn(html, pageURL)
}
