package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

// newTestCache поднимает miniredis и кэш поверх него.
func newTestCache(t *testing.T, prefix string) (RevocationCache, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), "redis://"+mini.Addr()+"/0", prefix)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mini
}

func TestRedisCache_MarkAndCheck(t *testing.T) {
	t.Parallel()

	c, mini := newTestCache(t, "")
	ctx := context.Background()

	revoked, err := c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, c.MarkRevoked(ctx, "jti-1", time.Minute))

	revoked, err = c.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	require.True(t, mini.Exists(DefaultPrefix+"jti-1"))
	require.Equal(t, time.Minute, mini.TTL(DefaultPrefix+"jti-1"))
}

func TestRedisCache_EntryExpires(t *testing.T) {
	t.Parallel()

	c, mini := newTestCache(t, "test:")
	ctx := context.Background()

	require.NoError(t, c.MarkRevoked(ctx, "jti-2", 10*time.Second))
	require.True(t, mini.Exists("test:jti-2"))

	mini.FastForward(11 * time.Second)

	revoked, err := c.IsRevoked(ctx, "jti-2")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestRedisCache_NonPositiveTTL_Skipped(t *testing.T) {
	t.Parallel()

	c, mini := newTestCache(t, "")

	require.NoError(t, c.MarkRevoked(context.Background(), "old", 0))
	require.False(t, mini.Exists(DefaultPrefix+"old"))
}

func TestRedisCache_ServerDown_ReturnsError(t *testing.T) {
	t.Parallel()

	c, mini := newTestCache(t, "")
	mini.Close()

	_, err := c.IsRevoked(context.Background(), "jti")
	require.Error(t, err)
}

func TestNewRedisCache_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "not-a-url://", "")
	require.Error(t, err)
}
