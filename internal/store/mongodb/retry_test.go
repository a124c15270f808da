package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"megacart/internal/domain"
)

func TestWithRetry(t *testing.T) {
	t.Run("SucceedsOnLastAttempt", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			if calls < maxAttempts {
				return errors.New("server selection timeout")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, maxAttempts, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		opErr := errors.New("server selection timeout")
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return opErr
		})
		assert.Equal(t, opErr, err)
		assert.Equal(t, maxAttempts, calls)
	})

	t.Run("NoBackoffOnSuccess", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("ConflictIsTerminal", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), func() error {
			calls++
			return domain.ErrConflict
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledContextStopsRetrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := withRetry(ctx, func() error {
			calls++
			return errors.New("server selection timeout")
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
