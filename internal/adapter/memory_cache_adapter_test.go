package adapter

import (
	"context"
	"quiz-assign/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMemoryCache(now *time.Time) *MemoryCacheAdapter {
	m := NewMemoryCacheAdapter()
	m.now = func() time.Time { return *now }
	return m
}

func TestMemoryCacheAdapter_GetSetDelete(t *testing.T) {
	now := time.Now()
	m := newTestMemoryCache(&now)
	ctx := context.Background()

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "k", "v", time.Minute))
	val, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)

	now = now.Add(time.Minute)
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "forever", "v", 0))
	now = now.Add(24 * time.Hour)
	_, err = m.Get(ctx, "forever")
	assert.NoError(t, err)

	require.NoError(t, m.Delete(ctx, "forever"))
	require.NoError(t, m.Delete(ctx, "forever"))
	_, err = m.Get(ctx, "forever")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.NoError(t, m.Ping(ctx))
}

func TestMemoryCacheAdapter_SetNX(t *testing.T) {
	now := time.Now()
	m := newTestMemoryCache(&now)
	ctx := context.Background()

	ok, err := m.SetNX(ctx, "lock", "1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.SetNX(ctx, "lock", "1", time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(2 * time.Second)
	ok, err = m.SetNX(ctx, "lock", "1", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryCacheAdapter_List(t *testing.T) {
	now := time.Now()
	m := newTestMemoryCache(&now)
	ctx := context.Background()

	vals, err := m.LRange(ctx, "feed", 0, -1)
	require.NoError(t, err)
	assert.Empty(t, vals)

	require.NoError(t, m.LPush(ctx, "feed", "a"))
	require.NoError(t, m.LPush(ctx, "feed", "b", "c"))

	vals, err = m.LRange(ctx, "feed", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, vals)

	require.NoError(t, m.LTrim(ctx, "feed", 0, 1))
	vals, _ = m.LRange(ctx, "feed", 0, -1)
	assert.Equal(t, []string{"c", "b"}, vals)

	vals, _ = m.LRange(ctx, "feed", 5, 10)
	assert.Empty(t, vals)

	require.NoError(t, m.Expire(ctx, "feed", time.Minute))
	now = now.Add(time.Minute)
	vals, _ = m.LRange(ctx, "feed", 0, -1)
	assert.Empty(t, vals)

	require.NoError(t, m.LPush(ctx, "feed", "x"))
	require.NoError(t, m.Expire(ctx, "feed", 0))
	vals, _ = m.LRange(ctx, "feed", 0, -1)
	assert.Empty(t, vals)
}
