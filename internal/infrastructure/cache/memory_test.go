package cache

import (
	"context"
	"testing"
	"time"

	"github.com/cartfinder/backend/internal/domain"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	err := c.Set(ctx, "geocode:bergamo", orb.Point{9.677, 45.698}, time.Minute)
	require.NoError(t, err)

	value, err := c.Get(ctx, "geocode:bergamo")
	require.NoError(t, err)

	point, ok := value.(orb.Point)
	require.True(t, ok)
	assert.Equal(t, 45.698, point.Lat())
	assert.Equal(t, 9.677, point.Lon())
}

func TestMemoryCache_MissOnUnknownKey(t *testing.T) {
	c := NewMemoryCache()

	_, err := c.Get(context.Background(), "geocode:nowhere")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_MissAfterExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))

	time.Sleep(25 * time.Millisecond)

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	exists, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Exists(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	exists, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	exists, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, time.Minute))
	require.NoError(t, c.Set(ctx, "b", 2, time.Minute))
	assert.Equal(t, 2, c.Size())

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = c.Set(ctx, "shared", n, time.Minute)
				_, _ = c.Get(ctx, "shared")
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, 1, c.Size())
}
