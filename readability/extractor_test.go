package readability_test

import (
	"testing"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements newsdigest.Extractor at compile time.
var _ newsdigest.Extractor = (*readability.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("", "https://example.com/a")

	require.Error(t, err)
	assert.Equal(t, newsdigest.EINVALID, newsdigest.ErrorCode(err))
}

func TestExtractor_RejectsInvalidURL(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("<p>x</p>", "://bad")

	assert.Equal(t, newsdigest.EINVALID, newsdigest.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(html, "https://www.samakal.com/a")

	require.NoError(t, err)
	assert.Equal(t, "Page Title", article.Title)
	assert.Equal(t, "Samakal", article.Source)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(html, "https://example.com/a")

	require.NoError(t, err)
	assert.Contains(t, article.Content, "main article content")
	assert.NotContains(t, article.Content, "Home Nav Link")
	assert.NotContains(t, article.Content, "About Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article><p>This is the main article content that should be preserved in the output.</p></article>
<footer><p>Footer copyright text 2024</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(html, "https://example.com/a")

	require.NoError(t, err)
	assert.NotContains(t, article.Content, "Footer copyright text")
}
