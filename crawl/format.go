package crawl

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsdigest"
)

// ComputeHash fingerprints an article body as 16 lowercase hex digits of
// its xxhash. Whitespace runs are collapsed first, so a story republished
// with different markup keeps its hash.
func ComputeHash(content string) string {
	sum := xxhash.Sum64String(newsdigest.CollapseSpace(content))
	s := strconv.FormatUint(sum, 16)
	return strings.Repeat("0", 16-len(s)) + s
}

// DisplayURL shortens rawURL for console output. The scheme and a "www."
// prefix are dropped; if the rest is still longer than maxRunes, its
// middle is replaced with "...", keeping the host and the article slug.
func DisplayURL(rawURL string, maxRunes int) string {
	s := strings.TrimPrefix(rawURL, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")

	r := []rune(s)
	if len(r) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(r[:max(maxRunes, 0)])
	}

	keep := maxRunes - 3
	head := (keep + 1) / 2
	tail := keep - head
	return string(r[:head]) + "..." + string(r[len(r)-tail:])
}
