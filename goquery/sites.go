package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/newsdigest"
)

// ProthomAlo is the config for prothomalo.com article pages.
var ProthomAlo = SiteConfig{
	Name:           "prothomalo",
	Source:         newsdigest.SourceProthomAlo,
	TitleSelectors: []string{"h1", "title"},
	ContentSelectors: []string{
		".story-element-text",
		".story-content",
		".article-content",
		"article p",
		".content p",
		"p",
	},
	MaxParagraphs:    10,
	MinContentLength: 100,
}

// DailyStar is the config for bangla.thedailystar.net article pages.
var DailyStar = SiteConfig{
	Name:           "dailystar",
	Source:         newsdigest.SourceDailyStar,
	TitleSelectors: []string{"h1", "title"},
	ContentSelectors: []string{
		".article-content p",
		".story-content p",
		".content-body p",
		"article p",
		"p",
	},
	MaxParagraphs:    10,
	MinContentLength: 100,
}

// Generic is the config for any other news site. It filters out short
// paragraphs and navigation or read-more boilerplate.
var Generic = SiteConfig{
	Name:           "generic",
	TitleSelectors: []string{"h1", ".title", ".headline", "title"},
	ContentSelectors: []string{
		"article p",
		".article-content p",
		".story-content p",
		".content p",
		".post-content p",
		".entry-content p",
		".news-content p",
		"p",
	},
	MaxParagraphs:    15,
	MinContentLength: 200,
	Filter:           IsArticleParagraph,
	CollapseSpace:    true,
}

var clockTimeRe = regexp.MustCompile(`\p{Nd}{1,2}:\p{Nd}{2}`)

// IsArticleParagraph reports whether text looks like article body rather
// than a caption, timestamp, breadcrumb or read-more link.
func IsArticleParagraph(text string) bool {
	if runeLen(text) <= 30 {
		return false
	}
	for _, phrase := range []string{"আরও পড়ুন", "বিস্তারিত", "সম্পূর্ণ খবর"} {
		if strings.Contains(text, phrase) {
			return false
		}
	}
	if clockTimeRe.MatchString(text) {
		return false
	}
	if strings.Contains(lastRunes(text, 10), "পড়ুন") {
		return false
	}
	head := firstRunes(text, 10)
	return !strings.Contains(head, "হোম") && !strings.Contains(head, "প্রচ্ছদ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	return string(r[:min(n, len(r))])
}

func lastRunes(s string, n int) string {
	r := []rune(s)
	return string(r[max(0, len(r)-n):])
}
