package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter, err := NewFixedWindowLimiter(client, "test:ratelimit", limit, time.Minute)
	require.NoError(t, err)
	return limiter, mr
}

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "1.2.3.4"))
	assert.True(t, limiter.Allow(ctx, "1.2.3.4"))
	assert.False(t, limiter.Allow(ctx, "1.2.3.4"))
}

func TestFixedWindowKeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1)
	ctx := context.Background()

	assert.True(t, limiter.Allow(ctx, "1.2.3.4"))
	assert.True(t, limiter.Allow(ctx, "5.6.7.8"))
	assert.False(t, limiter.Allow(ctx, "1.2.3.4"))
}

func TestFixedWindowFailsClosedOnRedisError(t *testing.T) {
	limiter, mr := newTestLimiter(t, 10)
	mr.Close()

	assert.False(t, limiter.Allow(context.Background(), "1.2.3.4"))
}

func TestFixedWindowRejectsBadConfig(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})

	_, err := NewFixedWindowLimiter(client, "", 0, time.Minute)
	assert.Error(t, err)

	_, err = NewFixedWindowLimiter(nil, "", 1, time.Minute)
	assert.Error(t, err)
}
