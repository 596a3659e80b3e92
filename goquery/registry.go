package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/newsdigest"
)

// Ensure Registry implements newsdigest.Extractor at compile time.
var _ newsdigest.Extractor = (*Registry)(nil)

// Registry routes pages to site-specific extractors by host. Hosts are
// matched by substring, in registration order, and unmatched pages go to
// the fallback extractor.
type Registry struct {
	fallback newsdigest.Extractor
	entries  []registryEntry
}

type registryEntry struct {
	host      string
	extractor newsdigest.Extractor
}

// NewRegistry creates a Registry that uses fallback for unknown hosts.
func NewRegistry(fallback newsdigest.Extractor) *Registry {
	return &Registry{fallback: fallback}
}

// NewDefaultRegistry returns a Registry with the Prothom Alo and Daily Star
// extractors registered and the generic extractor as fallback.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewSiteExtractor(Generic))
	r.Register("prothomalo", NewSiteExtractor(ProthomAlo))
	r.Register("thedailystar", NewSiteExtractor(DailyStar))
	return r
}

// Register routes hosts containing host to extractor.
// If host is already registered, its extractor is replaced.
func (r *Registry) Register(host string, extractor newsdigest.Extractor) {
	host = strings.ToLower(host)
	for i, e := range r.entries {
		if e.host == host {
			r.entries[i].extractor = extractor
			return
		}
	}
	r.entries = append(r.entries, registryEntry{host: host, extractor: extractor})
}

// ForURL returns the extractor responsible for pageURL.
func (r *Registry) ForURL(pageURL string) newsdigest.Extractor {
	u, err := url.Parse(pageURL)
	if err != nil {
		return r.fallback
	}
	host := strings.ToLower(u.Host)
	for _, e := range r.entries {
		if strings.Contains(host, e.host) {
			return e.extractor
		}
	}
	return r.fallback
}

// Extract implements newsdigest.Extractor.
func (r *Registry) Extract(html string, pageURL string) (*newsdigest.Article, error) {
	return r.ForURL(pageURL).Extract(html, pageURL)
}
