// Package bloom provides article URL deduplication using Bloom filters.
package bloom

import (
	"net/url"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate keeps the chance of wrongly skipping a distinct
// article negligible for batch-sized inputs.
const DefaultFalsePositiveRate = 1e-6

// Filter wraps a Bloom filter for URL deduplication. URLs are keyed
// without surrounding whitespace or fragment, so links to different
// anchors of one article count once.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(max(n, 1), fpRate),
	}
}

// Add adds a URL to the filter.
func (f *Filter) Add(rawURL string) {
	f.f.AddString(key(rawURL))
}

// Test returns true if the URL might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(rawURL string) bool {
	return f.f.TestString(key(rawURL))
}

// Seen adds the URL and reports whether it was possibly added before.
func (f *Filter) Seen(rawURL string) bool {
	return f.f.TestAndAddString(key(rawURL))
}

func key(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String()
}
