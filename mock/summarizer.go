package mock

import "github.com/fwojciec/newsdigest"

var _ newsdigest.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of newsdigest.Summarizer.
type Summarizer struct {
	SummarizeFn func(content string) string
}

func (s *Summarizer) Summarize(content string) string {
	return s.SummarizeFn(content)
}
