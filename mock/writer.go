package mock

import (
	"context"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of newsdigest.ResultWriter.
type ResultWriter struct {
	WriteResultsFn func(ctx context.Context, results []*newsdigest.Result) (string, error)
}

func (w *ResultWriter) WriteResults(ctx context.Context, results []*newsdigest.Result) (string, error) {
	return w.WriteResultsFn(ctx, results)
}
