package aiquiz

import (
	"context"
	"math/rand"
	"time"
)

const (
	MaxRetries  = 3
	baseBackoff = 300 * time.Millisecond
	maxBackoff  = 4 * time.Second
	maxJitter   = 200 * time.Millisecond
)

// Backoff returns the delay before retry number attempt+1, excluding jitter:
// min(4s, 300ms * 2^attempt).
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := baseBackoff
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

func randomJitter() time.Duration {
	return time.Duration(rand.Int63n(int64(maxJitter)))
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
