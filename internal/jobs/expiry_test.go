package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpirer struct {
	expired int64
	err     error

	gotReason string
	calls     int
}

func (f *fakeExpirer) ExpirePending(ctx context.Context, reason string) (int64, error) {
	f.calls++
	f.gotReason = reason
	return f.expired, f.err
}

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the fixed reason through", func(t *testing.T) {
		expirer := &fakeExpirer{expired: 3}
		sweeper := NewExpirySweeper(expirer, "@every 10m")

		require.NoError(t, sweeper.Sweep(ctx))
		assert.Equal(t, 1, expirer.calls)
		assert.Equal(t, ExpiryReason, expirer.gotReason)
	})

	t.Run("nothing to expire is not an error", func(t *testing.T) {
		sweeper := NewExpirySweeper(&fakeExpirer{expired: 0}, "@every 10m")
		assert.NoError(t, sweeper.Sweep(ctx))
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		boom := errors.New("db down")
		sweeper := NewExpirySweeper(&fakeExpirer{err: boom}, "@every 10m")
		assert.ErrorIs(t, sweeper.Sweep(ctx), boom)
	})
}

func TestStartRejectsBadSpec(t *testing.T) {
	sweeper := NewExpirySweeper(&fakeExpirer{}, "not a cron spec")
	assert.Error(t, sweeper.Start())
}
