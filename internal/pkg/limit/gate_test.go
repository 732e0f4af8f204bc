//go:build unit

package limit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate_Acquire(t *testing.T) {
	t.Run("NilGateAdmitsEverything", func(t *testing.T) {
		var g *Gate
		release, err := g.Acquire(context.Background())
		require.NoError(t, err)
		release()
	})

	t.Run("Unlimited", func(t *testing.T) {
		g := NewGate(0, 0)
		for i := 0; i < 100; i++ {
			release, err := g.Acquire(context.Background())
			require.NoError(t, err)
			defer release()
		}
	})

	t.Run("RateLimited", func(t *testing.T) {
		g := NewGate(0, 2)

		for i := 0; i < 2; i++ {
			release, err := g.Acquire(context.Background())
			require.NoError(t, err)
			release()
		}

		_, err := g.Acquire(context.Background())
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("ConcurrencyQueuesUntilRelease", func(t *testing.T) {
		g := NewGate(1, 0)

		release, err := g.Acquire(context.Background())
		require.NoError(t, err)

		acquired := make(chan func(), 1)
		go func() {
			next, err := g.Acquire(context.Background())
			if err == nil {
				acquired <- next
			}
		}()

		select {
		case <-acquired:
			t.Fatal("second request admitted while the slot was taken")
		case <-time.After(50 * time.Millisecond):
		}

		release()

		select {
		case next := <-acquired:
			next()
		case <-time.After(2 * time.Second):
			t.Fatal("second request not admitted after release")
		}
	})

	t.Run("QueuedRequestGivesUpWithContext", func(t *testing.T) {
		g := NewGate(1, 0)

		release, err := g.Acquire(context.Background())
		require.NoError(t, err)
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err = g.Acquire(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "failed to wait for a free benchmark slot")
	})
}
