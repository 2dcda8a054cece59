package memcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetMiss(t *testing.T) {
	c := NewMemoryCache(time.Minute, 100)

	v, found, err := c.Get(context.Background(), "nonexistent")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, 100)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "album_likes:album-1", "3", 0))

	v, found, err := c.Get(ctx, "album_likes:album-1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "3", v)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	c := NewMemoryCache(time.Minute, 100)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "1", 0))
	require.NoError(t, c.Set(ctx, "k", "2", 0))

	v, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "2", v)
}

func TestMemoryCache_DeleteRemovesAndIgnoresAbsent(t *testing.T) {
	c := NewMemoryCache(time.Minute, 100)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "1", 0))
	require.NoError(t, c.Delete(ctx, "k"))

	_, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, c.Delete(ctx, "missing"))
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, 100)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "1", 50*time.Millisecond))
	require.NoError(t, c.Set(ctx, "long", "2", 0))

	assert.Eventually(t, func() bool {
		_, found, _ := c.Get(ctx, "short")
		return !found
	}, 2*time.Second, 20*time.Millisecond)

	_, found, err := c.Get(ctx, "long")
	require.NoError(t, err)
	require.True(t, found)
}
