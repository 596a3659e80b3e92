package newsdigest

import (
	"fmt"
	"strings"
)

// FormatReport formats a run summary for the console: the number of
// processed articles followed by details of the first n results.
// Returns an empty string when there are no results.
func FormatReport(results []*Result, n int) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Summary Report:\n")
	fmt.Fprintf(&b, "Successfully processed: %d articles\n", len(results))

	n = min(n, len(results))
	if n <= 0 {
		return b.String()
	}

	b.WriteString("\nSample Results:\n")
	for i, r := range results[:n] {
		fmt.Fprintf(&b, "\n%d. %s...\n", i+1, truncateRunes(r.Title, 60))
		fmt.Fprintf(&b, "   Source: %s\n", r.Source)
		fmt.Fprintf(&b, "   Original Length: %d characters\n", r.OriginalLength)
		fmt.Fprintf(&b, "   Summary Length: %d characters\n", r.SummaryLength)
		fmt.Fprintf(&b, "   Compression: %.1f%%\n", r.Compression())
		fmt.Fprintf(&b, "   Summary: %s...\n", truncateRunes(r.Summary, 150))
	}

	return b.String()
}
