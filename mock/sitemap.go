package mock

import (
	"context"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of newsdigest.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, sitemapURL string, limit int) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string, limit int) ([]string, error) {
	return s.DiscoverURLsFn(ctx, sitemapURL, limit)
}
