package newsdigest

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Summarizer turns article body text into a short summary.
// Implementations must always return a usable string: summarization is
// best-effort and never aborts a batch.
type Summarizer interface {
	Summarize(content string) string
}

// Defaults for ExtractiveSummarizer.
const (
	DefaultTargetSentences     = 2
	DefaultSimilarityThreshold = 0.6
	DefaultMaxSummaryLength    = 400
	DefaultLookahead           = 5
)

// Fixed limits, in runes.
const (
	// MinContentLength is the shortest content worth summarizing.
	MinContentLength = 100

	// MinSentenceLength is the length a trimmed sentence must exceed to be
	// considered for the summary.
	MinSentenceLength = 20

	snippetLength  = 150
	fallbackLength = 200
)

// Placeholders returned instead of a summary.
const (
	// InsufficientPlaceholder is returned for missing or very short content.
	InsufficientPlaceholder = "পর্যাপ্ত তথ্য পাওয়া যায়নি।"

	// EmptyPlaceholder is returned when summarization produces nothing.
	EmptyPlaceholder = "সংক্ষিপ্ত বিবরণ তৈরি করা সম্ভব হয়নি।"
)

var sentenceBreakRe = regexp.MustCompile(`[।.!?]+`)

// Ensure ExtractiveSummarizer implements Summarizer at compile time.
var _ Summarizer = (*ExtractiveSummarizer)(nil)

// ExtractiveSummarizer builds summaries by keeping the lede and adding the
// longest of the following sentences that do not repeat what has already
// been selected.
//
// An ExtractiveSummarizer is immutable and safe for concurrent use.
type ExtractiveSummarizer struct {
	targetSentences int
	threshold       float64
	maxLength       int
	lookahead       int
}

// SummarizerOption configures an ExtractiveSummarizer.
type SummarizerOption func(*ExtractiveSummarizer)

// WithTargetSentences sets how many sentences a summary holds, lede included.
// Defaults to DefaultTargetSentences. Values below 1 are ignored.
func WithTargetSentences(n int) SummarizerOption {
	return func(s *ExtractiveSummarizer) {
		if n > 0 {
			s.targetSentences = n
		}
	}
}

// WithSimilarityThreshold sets the overlap coefficient above which two
// sentences count as duplicates. Defaults to DefaultSimilarityThreshold.
func WithSimilarityThreshold(threshold float64) SummarizerOption {
	return func(s *ExtractiveSummarizer) {
		s.threshold = threshold
	}
}

// WithMaxSummaryLength caps the summary length in runes. The effective cap is
// also bounded by a third of the content length. Defaults to
// DefaultMaxSummaryLength. Values below 1 are ignored.
func WithMaxSummaryLength(n int) SummarizerOption {
	return func(s *ExtractiveSummarizer) {
		if n > 0 {
			s.maxLength = n
		}
	}
}

// WithLookahead sets how many sentences after the lede are candidates.
// Defaults to DefaultLookahead. Negative values are ignored.
func WithLookahead(n int) SummarizerOption {
	return func(s *ExtractiveSummarizer) {
		if n >= 0 {
			s.lookahead = n
		}
	}
}

// NewExtractiveSummarizer creates an ExtractiveSummarizer.
func NewExtractiveSummarizer(opts ...SummarizerOption) *ExtractiveSummarizer {
	s := &ExtractiveSummarizer{
		targetSentences: DefaultTargetSentences,
		threshold:       DefaultSimilarityThreshold,
		maxLength:       DefaultMaxSummaryLength,
		lookahead:       DefaultLookahead,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns a summary of content. It never fails: short content
// yields InsufficientPlaceholder, content with fewer than two usable
// sentences yields a snippet, and any fault while summarizing yields
// Fallback(content).
func (s *ExtractiveSummarizer) Summarize(content string) string {
	if content == "" || runeLen(content) < MinContentLength {
		return InsufficientPlaceholder
	}

	summary, err := s.summarize(content)
	if err != nil {
		return Fallback(content)
	}
	return summary
}

func (s *ExtractiveSummarizer) summarize(content string) (summary string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = Errorf(EINTERNAL, "summarize: %v", r)
		}
	}()

	if !utf8.ValidString(content) {
		return "", Errorf(EINVALID, "content is not valid UTF-8")
	}

	cleaned := Clean(content)
	sentences := Segment(cleaned)
	if len(sentences) < 2 {
		return truncateRunes(cleaned, snippetLength) + "...", nil
	}

	summary = formatSummary(s.selectSentences(sentences))

	maxLength := min(runeLen(content)/3, s.maxLength)
	if runeLen(summary) > maxLength {
		summary = truncateAtDanda(summary, maxLength)
	}

	summary = trimSpace(summary)
	if summary == "" {
		return EmptyPlaceholder, nil
	}
	return summary, nil
}

// selectSentences seeds the selection with the lede, then walks the
// lookahead window longest first and keeps candidates that are not similar
// to anything already selected.
func (s *ExtractiveSummarizer) selectSentences(sentences []string) []string {
	selected := []string{sentences[0]}

	end := min(len(sentences), 1+s.lookahead)
	candidates := slices.Clone(sentences[1:end])
	slices.SortStableFunc(candidates, func(a, b string) int {
		return cmp.Compare(runeLen(b), runeLen(a))
	})

	for _, candidate := range candidates {
		if len(selected) >= s.targetSentences {
			break
		}
		repeated := slices.ContainsFunc(selected, func(existing string) bool {
			return s.Similar(candidate, existing)
		})
		if !repeated {
			selected = append(selected, candidate)
		}
	}
	return selected
}

// Similar reports whether a and b overlap above the summarizer's threshold.
func (s *ExtractiveSummarizer) Similar(a, b string) bool {
	return overlapExceeds(a, b, s.threshold)
}

// Similar reports whether the word overlap coefficient of a and b exceeds
// DefaultSimilarityThreshold. Words are lower-cased and compared as sets.
// Either side being empty makes the pair dissimilar.
func Similar(a, b string) bool {
	return overlapExceeds(a, b, DefaultSimilarityThreshold)
}

func overlapExceeds(a, b string, threshold float64) bool {
	wordsA := wordSet(a)
	wordsB := wordSet(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return false
	}

	overlap := 0
	for w := range wordsA {
		if _, ok := wordsB[w]; ok {
			overlap++
		}
	}
	return float64(overlap)/float64(min(len(wordsA), len(wordsB))) > threshold
}

func wordSet(s string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(s), isSpace)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Segment splits cleaned text into sentences on runs of ।, ., ! and ?.
// Fragments are trimmed and kept only if longer than MinSentenceLength
// runes. Order is preserved.
func Segment(cleaned string) []string {
	var sentences []string
	for _, fragment := range sentenceBreakRe.Split(cleaned, -1) {
		fragment = trimSpace(fragment)
		if runeLen(fragment) > MinSentenceLength {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}

// formatSummary joins sentences with single spaces, terminating each with a
// danda unless it already ends in one or a period.
func formatSummary(sentences []string) string {
	var b strings.Builder
	for i, sentence := range sentences {
		sentence = trimSpace(sentence)
		if sentence == "" {
			continue
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sentence)
		if !endsWithTerminator(sentence) {
			b.WriteString(Danda)
		}
	}

	summary := spaceRunRe.ReplaceAllLiteralString(b.String(), " ")
	return dandaRunRe.ReplaceAllLiteralString(summary, Danda)
}

// truncateAtDanda rebuilds summary sentence by sentence, stopping before the
// first sentence that would push it past maxLength runes.
func truncateAtDanda(summary string, maxLength int) string {
	var b strings.Builder
	n := 0
	for _, piece := range strings.Split(summary, Danda) {
		l := runeLen(piece) + 1
		if n+l > maxLength {
			break
		}
		b.WriteString(piece)
		b.WriteString(Danda)
		n += l
	}
	return b.String()
}

// Fallback computes the summary used when summarization faults. It works on
// the original content: the first two danda-terminated pieces, cleaned, or
// the first 200 runes followed by "..." when there is no danda.
func Fallback(content string) string {
	pieces := strings.Split(content, Danda)
	if len(pieces) >= 2 {
		return Clean(pieces[0] + Danda + pieces[1] + Danda)
	}
	return truncateRunes(content, fallbackLength) + "..."
}
