// Package csv implements newsdigest.ResultWriter as a spreadsheet-friendly
// CSV file.
package csv

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fwojciec/newsdigest"
)

// DefaultPath is the file results are written to unless configured.
const DefaultPath = "summaries.csv"

// TimestampFormat is the layout of the Timestamp column.
const TimestampFormat = "2006-01-02 15:04:05"

// maxAttempts bounds writes when the target file is locked by another program.
const maxAttempts = 3

// utf8BOM lets spreadsheet programs detect the encoding of Bangla text.
const utf8BOM = "\ufeff"

// Header is the CSV header row.
var Header = []string{"Title", "URL", "Source", "Summary", "Original_Length", "Summary_Length", "Timestamp"}

// OpenFunc creates or truncates the named file for writing.
type OpenFunc func(name string) (io.WriteCloser, error)

// Ensure Writer implements newsdigest.ResultWriter at compile time.
var _ newsdigest.ResultWriter = (*Writer)(nil)

// Writer writes results to a CSV file. When the file cannot be opened
// because of a permission error, typically because a spreadsheet program
// holds it open, it falls back to a timestamped file in the same directory.
type Writer struct {
	path string
	open OpenFunc
	now  func() time.Time
}

// Option configures a Writer.
type Option func(*Writer)

// WithOpenFunc replaces the function used to create files.
func WithOpenFunc(open OpenFunc) Option {
	return func(w *Writer) {
		w.open = open
	}
}

// WithClock sets the clock used to name fallback files.
func WithClock(now func() time.Time) Option {
	return func(w *Writer) {
		w.now = now
	}
}

// NewWriter creates a Writer targeting path. An empty path means DefaultPath.
func NewWriter(path string, opts ...Option) *Writer {
	if path == "" {
		path = DefaultPath
	}
	w := &Writer{
		path: path,
		open: func(name string) (io.WriteCloser, error) { return os.Create(name) },
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteResults writes results and returns the path actually written.
// Returns EINVALID for an empty batch and ECONFLICT when every attempt
// hit a permission error.
func (w *Writer) WriteResults(ctx context.Context, results []*newsdigest.Result) (string, error) {
	if len(results) == 0 {
		return "", newsdigest.Errorf(newsdigest.EINVALID, "no results to save")
	}

	name := w.path
	for range maxAttempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		err := w.write(name, results)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("saving results to %s: %w", name, err)
		}
		name = w.fallbackPath()
	}

	return "", newsdigest.Errorf(newsdigest.ECONFLICT, "cannot save CSV file %s; close any open CSV files and try again", w.path)
}

func (w *Writer) fallbackPath() string {
	return filepath.Join(filepath.Dir(w.path), "summaries_"+w.now().Format("20060102_150405")+".csv")
}

func (w *Writer) write(name string, results []*newsdigest.Result) (err error) {
	f, err := w.open(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := io.WriteString(f, utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(r *newsdigest.Result) []string {
	return []string{
		r.Title,
		r.URL,
		r.Source,
		r.Summary,
		strconv.Itoa(r.OriginalLength),
		strconv.Itoa(r.SummaryLength),
		r.Timestamp.Format(TimestampFormat),
	}
}
