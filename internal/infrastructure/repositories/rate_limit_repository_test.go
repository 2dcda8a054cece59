package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

func newRateLimitRepo(t *testing.T) (*RateLimitRedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimitRedisRepository(client), mr
}

func TestRateLimitRedisRepository_IncrementWindow(t *testing.T) {
	repo, _ := newRateLimitRepo(t)
	ctx := context.Background()

	count, start, err := repo.IncrementWindow(ctx, "ratelimit:auth:ip:10.0.0.1", time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.False(t, start.After(time.Now()))

	count, _, err = repo.IncrementWindow(ctx, "ratelimit:auth:ip:10.0.0.1", time.Hour)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, _, err = repo.IncrementWindow(ctx, "ratelimit:auth:user:dicoding", time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestRateLimitRedisRepository_NewWindowStartsOver(t *testing.T) {
	repo, mr := newRateLimitRepo(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 10, 0, 30, 0, time.UTC)
	repo.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_, _, err := repo.IncrementWindow(ctx, "ratelimit:auth:ip:10.0.0.1", time.Minute)
		require.NoError(t, err)
	}

	key := windowKey("ratelimit:auth:ip:10.0.0.1", now.Truncate(time.Minute))
	require.True(t, mr.Exists(key))
	require.Equal(t, 2*time.Minute, mr.TTL(key))

	now = now.Add(time.Minute)
	count, start, err := repo.IncrementWindow(ctx, "ratelimit:auth:ip:10.0.0.1", time.Minute)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, time.Date(2024, 1, 1, 10, 1, 0, 0, time.UTC), start.UTC())
}
