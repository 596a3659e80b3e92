package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/crawl"
	"github.com/fwojciec/newsdigest/csv"
	"github.com/fwojciec/newsdigest/goquery"
	ndhttp "github.com/fwojciec/newsdigest/http"
	"github.com/fwojciec/newsdigest/readability"
	"github.com/fwojciec/newsdigest/rod"
	ndslog "github.com/fwojciec/newsdigest/slog"
	"github.com/fwojciec/newsdigest/sqlite"
	"github.com/fwojciec/newsdigest/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used for result history, if enabled.
	DB *sqlite.DB

	// RetryDelays overrides the fetch backoff. Set before calling Run().
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsdigest"),
		kong.Description("Scrape Bangla news articles and save extractive summaries to CSV"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}
	if err := validate(cli); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set NEWSDIGEST_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Results = sqlite.NewResultService(m.DB)
	}

	if cli.History > 0 {
		return (&HistoryCmd{Limit: cli.History}).Run(deps)
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	var fetcher newsdigest.Fetcher = ndhttp.NewFetcher(ndhttp.WithTimeout(cli.Timeout))
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	}
	fetcher = ndslog.NewLoggingFetcher(fetcher, logger)
	defer fetcher.Close()

	extractor := newsdigest.NewExtractorChain(
		goquery.NewDefaultRegistry(),
		trafilatura.NewExtractor(),
		readability.NewExtractor(),
	)

	summarizer := newsdigest.NewExtractiveSummarizer(
		newsdigest.WithTargetSentences(cli.Sentences),
	)

	processor := &crawl.Processor{
		Fetcher:     fetcher,
		Extractor:   ndslog.NewLoggingExtractor(extractor, logger),
		Summarizer:  ndslog.NewLoggingSummarizer(summarizer, logger),
		Concurrency: cli.Concurrency,
		RateLimiter: crawl.NewDomainLimiter(cli.Rate),
		RetryDelays: m.RetryDelays,
	}
	if cli.Verbose {
		processor.Logf = func(format string, args ...any) {
			fmt.Fprintf(stderr, format+"\n", args...)
		}
	}
	deps.Processor = processor

	deps.Sitemaps = ndslog.NewLoggingSitemapService(ndhttp.NewSitemapService(nil), logger)
	deps.Writer = ndslog.NewLoggingResultWriter(csv.NewWriter(cli.Output), logger)

	cmd := &SummarizeCmd{
		URLs:    cli.URLs,
		Sitemap: cli.Sitemap,
		Limit:   cli.Limit,
		Output:  cli.Output,
	}

	return cmd.Run(deps)
}

func validate(cli *CLI) error {
	switch {
	case cli.Sentences < 1:
		return fmt.Errorf("--sentences must be at least 1")
	case cli.Concurrency < 1:
		return fmt.Errorf("--concurrency must be at least 1")
	case cli.Rate < 0:
		return fmt.Errorf("--rate must not be negative")
	case cli.Limit < 0:
		return fmt.Errorf("--limit must not be negative")
	case cli.History < 0:
		return fmt.Errorf("--history must not be negative")
	case cli.Timeout <= 0:
		return fmt.Errorf("--timeout must be positive")
	}
	return nil
}
