package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/newsdigest"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// LogFunc receives progress notices such as retries.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff between fetch attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry is FetchWithRetryDelays with DefaultRetryDelays.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logf LogFunc) (string, error) {
	return FetchWithRetryDelays(ctx, url, fetch, logf, DefaultRetryDelays())
}

// FetchWithRetryDelays calls fetch and, while it fails, waits out the next
// delay and tries again; one retry per delay. Errors coded EINVALID end
// the attempts at once. The last fetch error is returned, or the context's
// error if it ends a wait.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logf LogFunc, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	for i, delay := range delays {
		if err == nil || newsdigest.ErrorCode(err) == newsdigest.EINVALID {
			break
		}
		if logf != nil {
			logf("  retry %s (attempt %d): %v", url, i+2, err)
		}
		if werr := sleep(ctx, delay); werr != nil {
			return "", werr
		}
		html, err = fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
