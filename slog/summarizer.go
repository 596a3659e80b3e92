package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/newsdigest"
)

var _ newsdigest.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with debug logging.
type LoggingSummarizer struct {
	next   newsdigest.Summarizer
	logger *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next newsdigest.Summarizer, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs input and output
// lengths in runes.
func (s *LoggingSummarizer) Summarize(content string) (summary string) {
	defer func(begin time.Time) {
		s.logger.Info("summarize",
			"length", utf8.RuneCountInString(content),
			"summaryLength", utf8.RuneCountInString(summary),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Summarize(content)
}
