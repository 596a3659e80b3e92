package mock

import (
	"context"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.ArticleProcessor = (*ArticleProcessor)(nil)

// ArticleProcessor is a mock implementation of newsdigest.ArticleProcessor.
type ArticleProcessor struct {
	ProcessAllFn func(ctx context.Context, urls []string, progress newsdigest.ProcessProgressFunc) ([]*newsdigest.Result, error)
}

func (p *ArticleProcessor) ProcessAll(ctx context.Context, urls []string, progress newsdigest.ProcessProgressFunc) ([]*newsdigest.Result, error) {
	return p.ProcessAllFn(ctx, urls, progress)
}
