// Package goquery implements newsdigest.Extractor with CSS selectors tuned
// for Bangla news sites.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsdigest"
)

// TitleNotFound is the title used when no title selector matches.
const TitleNotFound = "Title not found"

// SiteConfig describes where a news site keeps its headline and body.
type SiteConfig struct {
	// Name identifies the config in logs.
	Name string

	// Source labels articles. When empty the label is derived from the
	// page URL with newsdigest.SourceLabel.
	Source string

	// TitleSelectors are tried in order; the first match wins.
	TitleSelectors []string

	// ContentSelectors are tried in order. Each selector's first
	// MaxParagraphs matches are joined with spaces; the first selector
	// whose content exceeds MinContentLength runes stops the search.
	ContentSelectors []string
	MaxParagraphs    int
	MinContentLength int

	// Filter, when set, drops paragraphs it returns false for.
	Filter func(text string) bool

	// CollapseSpace collapses whitespace runs in the final content.
	CollapseSpace bool
}

// Ensure SiteExtractor implements newsdigest.Extractor at compile time.
var _ newsdigest.Extractor = (*SiteExtractor)(nil)

// SiteExtractor extracts articles using a SiteConfig.
type SiteExtractor struct {
	config SiteConfig
}

// NewSiteExtractor creates a SiteExtractor for config.
func NewSiteExtractor(config SiteConfig) *SiteExtractor {
	return &SiteExtractor{config: config}
}

// Name returns the config name.
func (e *SiteExtractor) Name() string {
	return e.config.Name
}

// Extract implements newsdigest.Extractor.
func (e *SiteExtractor) Extract(html string, pageURL string) (*newsdigest.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsdigest.Errorf(newsdigest.EINVALID, "failed to parse HTML: %v", err)
	}

	source := e.config.Source
	if source == "" {
		source = newsdigest.SourceLabel(pageURL)
	}

	return &newsdigest.Article{
		Title:   e.title(doc),
		Content: e.content(doc),
		URL:     pageURL,
		Source:  source,
	}, nil
}

func (e *SiteExtractor) title(doc *goquery.Document) string {
	for _, selector := range e.config.TitleSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return newsdigest.TrimSpace(sel.Text())
		}
	}
	return TitleNotFound
}

func (e *SiteExtractor) content(doc *goquery.Document) string {
	var content string
	for _, selector := range e.config.ContentSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}

		var paragraphs []string
		sel.Slice(0, min(sel.Length(), e.config.MaxParagraphs)).Each(func(_ int, p *goquery.Selection) {
			text := newsdigest.TrimSpace(p.Text())
			if e.config.Filter != nil && !e.config.Filter(text) {
				return
			}
			paragraphs = append(paragraphs, text)
		})

		content = strings.Join(paragraphs, " ")
		if runeLen(content) > e.config.MinContentLength {
			break
		}
	}

	if e.config.CollapseSpace {
		content = newsdigest.CollapseSpace(content)
	}
	return content
}
