package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   newsdigest.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsdigest.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what it found.
func (e *LoggingExtractor) Extract(html string, pageURL string) (article *newsdigest.Article, err error) {
	defer func(begin time.Time) {
		var title string
		var length int
		if article != nil {
			title = article.Title
			length = utf8.RuneCountInString(article.Content)
		}
		e.logger.Info("extract",
			"url", pageURL,
			"title", title,
			"length", length,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
