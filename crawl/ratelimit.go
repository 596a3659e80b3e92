package crawl

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/newsdigest"
	"golang.org/x/time/rate"
)

var _ newsdigest.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each news site with a token bucket
// per site. Hosts are compared case-insensitively with any port and "www."
// prefix dropped, so www.prothomalo.com and prothomalo.com share a bucket.
type DomainLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter allows rps requests per second to each site, without
// bursts. An rps of zero or less disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to domain is allowed.
// Returns the context's error if it is done first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.bucket(siteKey(domain)).Wait(ctx)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.buckets[key] = b
	}
	return b
}

func siteKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
