package mock

import (
	"context"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of newsdigest.ResultService.
type ResultService struct {
	CreateResultFn   func(ctx context.Context, result *newsdigest.Result) error
	FindResultByIDFn func(ctx context.Context, id string) (*newsdigest.Result, error)
	FindResultsFn    func(ctx context.Context, filter newsdigest.ResultFilter) ([]*newsdigest.Result, error)
}

func (s *ResultService) CreateResult(ctx context.Context, result *newsdigest.Result) error {
	return s.CreateResultFn(ctx, result)
}

func (s *ResultService) FindResultByID(ctx context.Context, id string) (*newsdigest.Result, error) {
	return s.FindResultByIDFn(ctx, id)
}

func (s *ResultService) FindResults(ctx context.Context, filter newsdigest.ResultFilter) ([]*newsdigest.Result, error) {
	return s.FindResultsFn(ctx, filter)
}
