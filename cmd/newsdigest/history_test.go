package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/newsdigest"
	main "github.com/fwojciec/newsdigest/cmd/newsdigest"
	"github.com/fwojciec/newsdigest/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists recorded results newest first", func(t *testing.T) {
		t.Parallel()

		var gotFilter newsdigest.ResultFilter
		results := &mock.ResultService{
			FindResultsFn: func(_ context.Context, filter newsdigest.ResultFilter) ([]*newsdigest.Result, error) {
				gotFilter = filter
				return []*newsdigest.Result{
					sampleResult("https://www.prothomalo.com/bangladesh/b"),
					sampleResult("https://www.prothomalo.com/bangladesh/a"),
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Results: results,
		}

		cmd := &main.HistoryCmd{Limit: 5}
		require.NoError(t, cmd.Run(deps))

		assert.Equal(t, 5, gotFilter.Limit)
		out := stdout.String()
		assert.Contains(t, out, "Prothom Alo  https://www.prothomalo.com/bangladesh/b  রাজধানীতে ভারী বৃষ্টি")
		assert.Less(t, bytes.Index(stdout.Bytes(), []byte("/bangladesh/b")), bytes.Index(stdout.Bytes(), []byte("/bangladesh/a")))
	})

	t.Run("says so when nothing is recorded", func(t *testing.T) {
		t.Parallel()

		results := &mock.ResultService{
			FindResultsFn: func(_ context.Context, _ newsdigest.ResultFilter) ([]*newsdigest.Result, error) {
				return []*newsdigest.Result{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Results: results,
		}

		require.NoError(t, (&main.HistoryCmd{Limit: 5}).Run(deps))
		assert.Contains(t, stdout.String(), "No results recorded yet.")
	})

	t.Run("requires a database", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.HistoryCmd{Limit: 5}).Run(deps)

		assert.Equal(t, newsdigest.EINVALID, newsdigest.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--history needs a database")
	})

	t.Run("returns lookup errors", func(t *testing.T) {
		t.Parallel()

		results := &mock.ResultService{
			FindResultsFn: func(_ context.Context, _ newsdigest.ResultFilter) ([]*newsdigest.Result, error) {
				return nil, errors.New("database is locked")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Results: results,
		}

		err := (&main.HistoryCmd{Limit: 5}).Run(deps)

		require.EqualError(t, err, "database is locked")
		assert.Contains(t, stderr.String(), "error: database is locked")
	})
}
