package newsdigest

// Article is the title and body text extracted from a news page.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// Validate returns an error if the article contains invalid fields.
// Empty content is valid; callers decide whether to skip such articles.
func (a *Article) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	return nil
}

// Extractor extracts an article from the HTML of a news page.
type Extractor interface {
	// Extract parses html fetched from pageURL and returns its article.
	// The page URL is used to label the source.
	Extract(html string, pageURL string) (*Article, error)
}

// Ensure ExtractorChain implements Extractor at compile time.
var _ Extractor = (*ExtractorChain)(nil)

// ExtractorChain tries extractors in order and returns the first article
// whose content is longer than MinContentLength runes. When none is, the
// article with the longest content wins. Errors from individual extractors
// are only returned when every extractor fails.
type ExtractorChain struct {
	extractors []Extractor
}

// NewExtractorChain creates a chain over the given extractors.
func NewExtractorChain(extractors ...Extractor) *ExtractorChain {
	return &ExtractorChain{extractors: extractors}
}

// Extract implements Extractor.
func (c *ExtractorChain) Extract(html string, pageURL string) (*Article, error) {
	var best *Article
	var lastErr error

	for _, e := range c.extractors {
		article, err := e.Extract(html, pageURL)
		if err != nil {
			lastErr = err
			continue
		}
		if runeLen(article.Content) > MinContentLength {
			return article, nil
		}
		if best == nil || runeLen(article.Content) > runeLen(best.Content) {
			best = article
		}
	}

	if best != nil {
		return best, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, Errorf(EINVALID, "no extractors configured")
}
