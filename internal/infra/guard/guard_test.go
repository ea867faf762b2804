package guard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisGuard(t *testing.T) {
	mr, client := setupTestRedis(t)
	g := NewRedisGuard(client, 30*time.Second, nil)
	ctx := context.Background()
	key := "2025-06-01|6:00 PM - 7:00 PM"

	release, ok, err := g.Acquire(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists(keyPrefix+key))

	_, ok, err = g.Acquire(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok, "second submission must wait for the first")

	_, ok, err = g.Acquire(ctx, "2025-06-01|7:00 PM - 8:00 PM")
	require.NoError(t, err)
	assert.True(t, ok, "other slots are independent")

	release()
	assert.False(t, mr.Exists(keyPrefix+key))

	_, ok, err = g.Acquire(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisGuard_ExpiredLockNotReleasedByOldHolder(t *testing.T) {
	mr, client := setupTestRedis(t)
	g := NewRedisGuard(client, time.Second, nil)
	ctx := context.Background()

	staleRelease, ok, err := g.Acquire(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = g.Acquire(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	staleRelease()
	assert.True(t, mr.Exists(keyPrefix+"k"), "stale holder must not free the new lock")
}

func TestRedisGuard_Unreachable(t *testing.T) {
	mr, client := setupTestRedis(t)
	mr.Close()

	_, ok, err := NewRedisGuard(client, time.Second, nil).Acquire(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLocalGuard(t *testing.T) {
	var g domain.Guard = NewLocalGuard()
	ctx := context.Background()

	release, ok, err := g.Acquire(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = g.Acquire(ctx, "k")
	assert.False(t, ok)

	release()
	release()

	_, ok, _ = g.Acquire(ctx, "k")
	assert.True(t, ok)
}
