package main

import (
	"fmt"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/csv"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if deps.Results == nil {
		err := newsdigest.Errorf(newsdigest.EINVALID, "--history needs a database; set --db or NEWSDIGEST_DB")
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	results, err := deps.Results.FindResults(deps.Ctx, newsdigest.ResultFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results recorded yet. Run with --db to record some.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n",
			r.Timestamp.Local().Format(csv.TimestampFormat), r.Source, r.URL, truncate(r.Title, 60))
	}
	return nil
}
