package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/newsdigest"
	"github.com/fwojciec/newsdigest/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC)

func newResult(url, source string, at time.Time) *newsdigest.Result {
	return &newsdigest.Result{
		Title:          "শিরোনাম",
		URL:            url,
		Source:         source,
		Summary:        "ঢাকায় আজ বৃষ্টি হয়েছে।",
		OriginalLength: 300,
		SummaryLength:  23,
		ContentHash:    "abc123",
		Timestamp:      at,
	}
}

func TestResultService_CreateResult(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID and round trips fields", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewResultService(openTestDB(t))

		r := newResult("https://www.prothomalo.com/a", "Prothom Alo", baseTime.Add(500*time.Millisecond))
		require.NoError(t, svc.CreateResult(ctx, r))
		require.NotEmpty(t, r.ID)

		found, err := svc.FindResultByID(ctx, r.ID)
		require.NoError(t, err)
		assert.Equal(t, r, found)
		assert.Equal(t, baseTime, found.Timestamp)
	})

	t.Run("sets a timestamp when missing", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewResultService(openTestDB(t))

		r := newResult("https://example.com/a", "Example", time.Time{})
		require.NoError(t, svc.CreateResult(context.Background(), r))

		assert.False(t, r.Timestamp.IsZero())
	})

	t.Run("rejects invalid results", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewResultService(openTestDB(t))

		err := svc.CreateResult(context.Background(), &newsdigest.Result{URL: "https://example.com/a"})

		assert.Equal(t, newsdigest.EINVALID, newsdigest.ErrorCode(err))
	})
}

func TestResultService_FindResultByID(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewResultService(openTestDB(t))

	_, err := svc.FindResultByID(context.Background(), "missing")

	assert.Equal(t, newsdigest.ENOTFOUND, newsdigest.ErrorCode(err))
}

func TestResultService_FindResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := sqlite.NewResultService(openTestDB(t))

	seed := []*newsdigest.Result{
		newResult("https://www.prothomalo.com/a", "Prothom Alo", baseTime),
		newResult("https://bangla.thedailystar.net/b", "Daily Star", baseTime.Add(time.Minute)),
		newResult("https://www.prothomalo.com/c", "Prothom Alo", baseTime.Add(2*time.Minute)),
		newResult("https://www.prothomalo.com/a", "Prothom Alo", baseTime.Add(3*time.Minute)),
	}
	for _, r := range seed {
		require.NoError(t, svc.CreateResult(ctx, r))
	}

	urls := func(results []*newsdigest.Result) []string {
		out := make([]string, len(results))
		for i, r := range results {
			out[i] = r.URL
		}
		return out
	}

	t.Run("returns all results newest first", func(t *testing.T) {
		t.Parallel()

		results, err := svc.FindResults(ctx, newsdigest.ResultFilter{})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://www.prothomalo.com/a",
			"https://www.prothomalo.com/c",
			"https://bangla.thedailystar.net/b",
			"https://www.prothomalo.com/a",
		}, urls(results))
	})

	t.Run("filters by source", func(t *testing.T) {
		t.Parallel()

		source := "Daily Star"
		results, err := svc.FindResults(ctx, newsdigest.ResultFilter{Source: &source})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://bangla.thedailystar.net/b"}, urls(results))
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		url := "https://www.prothomalo.com/a"
		results, err := svc.FindResults(ctx, newsdigest.ResultFilter{URL: &url})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.True(t, results[0].Timestamp.After(results[1].Timestamp))
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		results, err := svc.FindResults(ctx, newsdigest.ResultFilter{Limit: 2, Offset: 1})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://www.prothomalo.com/c",
			"https://bangla.thedailystar.net/b",
		}, urls(results))
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		results, err := svc.FindResults(ctx, newsdigest.ResultFilter{Offset: 3})

		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		source := "Jugantor"
		results, err := svc.FindResults(ctx, newsdigest.ResultFilter{Source: &source})

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}
