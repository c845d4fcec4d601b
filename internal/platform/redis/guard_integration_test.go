//go:build integration

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"punsj/pkg/testutil/containers"
)

func TestIdempotencyGuard(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	client := &Client{Client: rc.Client}

	t.Run("first observation passes, redelivery is stopped", func(t *testing.T) {
		guard := NewIdempotencyGuard(client, time.Minute)

		forste, err := guard.FirstSeen(ctx, "fordel:466")
		require.NoError(t, err)
		require.True(t, forste)

		andre, err := guard.FirstSeen(ctx, "fordel:466")
		require.NoError(t, err)
		require.False(t, andre)
	})

	t.Run("keys are independent", func(t *testing.T) {
		guard := NewIdempotencyGuard(client, time.Minute)

		forste, err := guard.FirstSeen(ctx, "fordel:467")
		require.NoError(t, err)
		require.True(t, forste)
	})

	t.Run("expired keys pass again", func(t *testing.T) {
		guard := NewIdempotencyGuard(client, 100*time.Millisecond)

		forste, err := guard.FirstSeen(ctx, "fordel:468")
		require.NoError(t, err)
		require.True(t, forste)

		time.Sleep(200 * time.Millisecond)

		igjen, err := guard.FirstSeen(ctx, "fordel:468")
		require.NoError(t, err)
		require.True(t, igjen)
	})
}
