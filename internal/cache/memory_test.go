package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()

	_, err := c.Get(ctx, "page:closed")
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "page:closed", []byte("<html>"), 0))
	got, err := c.Get(ctx, "page:closed")
	require.NoError(t, err)
	assert.Equal(t, []byte("<html>"), got)

	require.NoError(t, c.Delete(ctx, "page:closed"))
	_, err = c.Get(ctx, "page:closed")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	now = now.Add(30 * time.Second)
	_, err := c.Get(ctx, "k")
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheStoresCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	value := []byte("abc")
	require.NoError(t, c.Set(ctx, "k", value, 0))
	value[0] = 'z'

	got, _ := c.Get(ctx, "k")
	got[1] = 'z'

	again, _ := c.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}
