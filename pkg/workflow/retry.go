package workflow

import (
	"context"
	"time"

	"github.com/anish877/Realta-Wealth-sub002/pkg/backend"
)

// Sleeper waits out a backoff delay. Tests inject a recorder; production
// uses time.Sleep.
type Sleeper func(d time.Duration)

const (
	defaultAttempts       = 3
	defaultInitialBackoff = 300 * time.Millisecond
)

// withRetry runs op up to attempts times, sleeping initial<<n between
// attempts (300ms, 600ms, ... by default). Only transient persistence
// failures are retried; permanent failures and context cancellation return
// immediately. The last error is returned after the budget is exhausted.
func withRetry(ctx context.Context, attempts int, initial time.Duration, sleep Sleeper, op func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	if sleep == nil {
		sleep = time.Sleep
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !backend.IsTransient(lastErr) {
			return lastErr
		}
		if attempt < attempts-1 {
			sleep(initial << attempt)
		}
	}
	return lastErr
}
