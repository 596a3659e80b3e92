package newsdigest

import (
	"net/url"
	"strings"
	"unicode"
)

// Source labels for sites with dedicated extractors.
const (
	SourceProthomAlo = "Prothom Alo"
	SourceDailyStar  = "Daily Star"
)

// SourceLabel derives a human-readable source name from an article URL.
// Known outlets get their proper name; any other host is stripped of
// "www.", ".com" and ".bd" and title-cased, so www.jugantor.com becomes
// "Jugantor". Returns an empty string if rawURL cannot be parsed.
func SourceLabel(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	host := strings.ToLower(u.Host)
	switch {
	case strings.Contains(host, "prothomalo"):
		return SourceProthomAlo
	case strings.Contains(host, "thedailystar"):
		return SourceDailyStar
	}

	name := strings.ReplaceAll(u.Host, "www.", "")
	name = strings.ReplaceAll(name, ".com", "")
	name = strings.ReplaceAll(name, ".bd", "")
	return titleCase(name)
}

// titleCase upper-cases the first cased letter of every word and lower-cases
// the rest, where any uncased character (digit, dot, Bangla letter) starts a
// new word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevCased := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				r = unicode.ToLower(r)
			}
			prevCased = true
		case unicode.IsLower(r):
			if !prevCased {
				r = unicode.ToTitle(r)
			}
			prevCased = true
		default:
			prevCased = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
