package newsdigest

import "context"

// SitemapService discovers article URLs from a news site's sitemap.
type SitemapService interface {
	// DiscoverURLs reads the sitemap (or sitemap index) at sitemapURL and
	// returns page URLs in document order. Child sitemaps of an index are
	// resolved recursively. A limit of 0 returns every URL.
	DiscoverURLs(ctx context.Context, sitemapURL string, limit int) ([]string, error)
}
