package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/newsdigest"
	ndhttp "github.com/fwojciec/newsdigest/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads a urlset sitemap directly", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/news-sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/bangladesh/a1</loc></url>
  <url><loc> {{BASE}}/bangladesh/a2 </loc></url>
  <url><loc>{{BASE}}/bangladesh/a1</loc></url>
  <url></url>
</urlset>`,
		})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/news-sitemap.xml", 0)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/bangladesh/a1", srv.URL + "/bangladesh/a2"}, urls)
	})

	t.Run("follows sitemap indexes", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap-index.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/day1.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/day2.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/day1.xml</loc></sitemap>
</sitemapindex>`,
			"/day1.xml": `<urlset><url><loc>{{BASE}}/a</loc></url></urlset>`,
			"/day2.xml": `<urlset><url><loc>{{BASE}}/b</loc></url><url><loc>{{BASE}}/a</loc></url></urlset>`,
		})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/sitemap-index.xml", 0)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/a", srv.URL + "/b"}, urls)
	})

	t.Run("stops at the limit", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": `<urlset>
  <url><loc>{{BASE}}/1</loc></url>
  <url><loc>{{BASE}}/2</loc></url>
  <url><loc>{{BASE}}/3</loc></url>
</urlset>`,
		})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/sitemap.xml", 2)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/1", srv.URL + "/2"}, urls)
	})

	t.Run("locates sitemaps through robots.txt for a site root", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/robots.txt": "User-agent: *\nDisallow: /search\nSitemap: {{BASE}}/news.xml\n",
			"/news.xml":   `<urlset><url><loc>{{BASE}}/story</loc></url></urlset>`,
		})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, 0)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/story"}, urls)
	})

	t.Run("falls back to /sitemap.xml without robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": `<urlset><url><loc>{{BASE}}/page1</loc></url></urlset>`,
		})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/", 0)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1"}, urls)
	})

	t.Run("returns empty slice when no sitemap exists", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL, 0)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("returns error for missing sitemap file", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		_, err := svc.DiscoverURLs(context.Background(), srv.URL+"/missing.xml", 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("returns error when the document has no root element", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": "this is not a sitemap",
		})
		defer srv.Close()

		svc := ndhttp.NewSitemapService(srv.Client())
		_, err := svc.DiscoverURLs(context.Background(), srv.URL+"/sitemap.xml", 0)

		require.Error(t, err)
	})

	t.Run("rejects URLs without a host", func(t *testing.T) {
		t.Parallel()

		svc := ndhttp.NewSitemapService(nil)
		_, err := svc.DiscoverURLs(context.Background(), "not a url", 0)

		assert.Equal(t, newsdigest.EINVALID, newsdigest.ErrorCode(err))
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		svc := ndhttp.NewSitemapService(nil)
		_, err := svc.DiscoverURLs(ctx, "https://example.com/sitemap.xml", 0)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func newTestServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		body = strings.ReplaceAll(body, "{{BASE}}", srv.URL)

		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(body))
	}))

	return srv
}
