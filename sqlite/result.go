package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/newsdigest"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsdigest.ResultService = (*ResultService)(nil)

// ResultService implements newsdigest.ResultService using SQLite.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

const resultColumns = "id, title, url, source, summary, original_length, summary_length, content_hash, created_at"

// CreateResult stores result and assigns its ID. A zero timestamp is set to
// the current time. Timestamps are stored in UTC with second precision.
func (s *ResultService) CreateResult(ctx context.Context, result *newsdigest.Result) error {
	if err := result.Validate(); err != nil {
		return err
	}

	result.ID = uuid.New().String()
	if result.Timestamp.IsZero() {
		result.Timestamp = time.Now()
	}
	result.Timestamp = result.Timestamp.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (`+resultColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, result.Title, result.URL, result.Source, result.Summary,
		result.OriginalLength, result.SummaryLength, result.ContentHash,
		result.Timestamp.Format(time.RFC3339))

	return err
}

// FindResultByID retrieves a result by ID.
func (s *ResultService) FindResultByID(ctx context.Context, id string) (*newsdigest.Result, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+resultColumns+" FROM results WHERE id = ?", id)

	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newsdigest.Errorf(newsdigest.ENOTFOUND, "result not found")
	}
	return result, err
}

// FindResults retrieves results matching the filter, newest first.
func (s *ResultService) FindResults(ctx context.Context, filter newsdigest.ResultFilter) ([]*newsdigest.Result, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + resultColumns + " FROM results WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*newsdigest.Result{}
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, rows.Err()
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (*newsdigest.Result, error) {
	var r newsdigest.Result
	var createdAt string

	if err := sc.Scan(&r.ID, &r.Title, &r.URL, &r.Source, &r.Summary,
		&r.OriginalLength, &r.SummaryLength, &r.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	var err error
	r.Timestamp, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &r, nil
}
