package mongodb

import (
	"context"
	"errors"
	"log"
	"time"

	"megacart/internal/domain"
)

const (
	maxAttempts  = 3
	initialDelay = time.Second
)

// withRetry runs op up to maxAttempts times with exponential backoff
// between attempts. Terminal errors such as domain.ErrConflict are
// returned immediately; retrying a duplicate insert cannot succeed. The
// final error is returned unwrapped so callers can still match driver
// errors.
func withRetry(ctx context.Context, op func() error) error {
	delay := initialDelay
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrConflict) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		log.Printf("store operation failed (attempt %d/%d), retrying in %s: %v", attempt, maxAttempts, delay, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
