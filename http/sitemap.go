package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/newsdigest"
)

// Ensure SitemapService implements newsdigest.SitemapService.
var _ newsdigest.SitemapService = (*SitemapService)(nil)

// SitemapService discovers article URLs from news sitemaps via HTTP.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, userAgent: DefaultUserAgent}
}

// DiscoverURLs returns page URLs listed in the sitemap at sitemapURL,
// following sitemap indexes. URLs are deduplicated and keep document order.
// A limit above zero caps the number of URLs returned.
//
// When sitemapURL is a bare site root, the sitemaps are located through
// robots.txt, falling back to /sitemap.xml. Returns an empty slice (not
// nil) if no sitemap is found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, sitemapURL string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(sitemapURL)
	if err != nil || base.Host == "" {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "invalid sitemap URL: %q", sitemapURL)
	}

	sitemapURLs := []string{sitemapURL}
	if base.Path == "" || base.Path == "/" {
		root := *base
		root.Path = ""
		sitemapURLs, err = s.findSitemapURLs(ctx, &root)
		if err != nil {
			return nil, err
		}
	}

	w := &sitemapWalk{
		service:  s,
		limit:    limit,
		sitemaps: make(map[string]bool),
		urls:     make(map[string]bool),
		found:    []string{},
	}
	for _, u := range sitemapURLs {
		if w.full() {
			break
		}
		if err := w.process(ctx, u); err != nil {
			return nil, err
		}
	}

	return w.found, nil
}

// sitemapWalk collects page URLs across one DiscoverURLs call.
type sitemapWalk struct {
	service  *SitemapService
	limit    int
	sitemaps map[string]bool
	urls     map[string]bool
	found    []string
}

func (w *sitemapWalk) full() bool {
	return w.limit > 0 && len(w.found) >= w.limit
}

// process fetches and parses a sitemap, handling both urlset and sitemapindex.
func (w *sitemapWalk) process(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Avoid processing the same sitemap twice
	if w.sitemaps[sitemapURL] {
		return nil
	}
	w.sitemaps[sitemapURL] = true

	body, err := w.service.fetchURL(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return fmt.Errorf("parsing sitemap XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return fmt.Errorf("empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		for _, child := range locs(root, "sitemap") {
			if w.full() {
				return nil
			}
			if err := w.process(ctx, child); err != nil {
				return err
			}
		}
		return nil
	}

	for _, u := range locs(root, "url") {
		if w.full() {
			return nil
		}
		if !w.urls[u] {
			w.urls[u] = true
			w.found = append(w.found, u)
		}
	}
	return nil
}

// locs returns the non-empty <loc> values of root's children named tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to /sitemap.xml.
func (s *SitemapService) findSitemapURLs(ctx context.Context, base *url.URL) ([]string, error) {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	sitemaps, err := s.parseSitemapsFromRobots(ctx, robotsURL.String())
	if err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	exists, err := s.urlExists(ctx, sitemapURL.String())
	if err != nil {
		// Propagate context errors, treat other errors as "not found"
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if exists {
		return []string{sitemapURL.String()}, nil
	}

	return nil, nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapService) parseSitemapsFromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			if u := strings.TrimSpace(line[len("sitemap:"):]); u != "" {
				sitemaps = append(sitemaps, u)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}

	return sitemaps, nil
}

func (s *SitemapService) newRequest(ctx context.Context, method, target string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	return req, nil
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapService) fetchURL(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := s.newRequest(ctx, http.MethodGet, target)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK.
func (s *SitemapService) urlExists(ctx context.Context, target string) (bool, error) {
	req, err := s.newRequest(ctx, http.MethodHead, target)
	if err != nil {
		return false, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
