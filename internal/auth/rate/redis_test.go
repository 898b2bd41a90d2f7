package rate

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLimiter(client), srv
}

func TestRedisLimiter_OTPBudget(t *testing.T) {
	l, _ := newRedisLimiter(t)
	ctx := context.Background()

	for i := range OTPRequestLimit {
		ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, ok, "request %d should pass", i+1)
	}

	ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = l.AllowOTPRequest(ctx, "bob@example.com")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisLimiter_WindowExpiry(t *testing.T) {
	l, srv := newRedisLimiter(t)
	ctx := context.Background()

	for range OTPRequestLimit {
		ok, _ := l.AllowOTPRequest(ctx, "alice@example.com")
		require.True(t, ok)
	}
	ok, _ := l.AllowOTPRequest(ctx, "alice@example.com")
	require.False(t, ok)

	// Advance the redis clock past the window TTL
	srv.FastForward(Window + time.Minute)

	ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisLimiter_RejectionsDoNotConsume(t *testing.T) {
	l, srv := newRedisLimiter(t)
	ctx := context.Background()

	for range OTPRequestLimit {
		ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, ok)
	}
	for range 3 {
		ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
		require.NoError(t, err)
		require.False(t, ok)
	}

	// Rejected requests must not grow the counter past the budget.
	got, err := srv.Get("ratelimit:otp:alice@example.com")
	require.NoError(t, err)
	require.Equal(t, strconv.Itoa(OTPRequestLimit), got)
}

func TestRedisLimiter_ReArmsMissingTTL(t *testing.T) {
	l, srv := newRedisLimiter(t)
	ctx := context.Background()

	// A counter key without a TTL must get one on the next consume.
	require.NoError(t, srv.Set("ratelimit:otp:alice@example.com", "3"))

	ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	require.Greater(t, srv.TTL("ratelimit:otp:alice@example.com"), time.Duration(0))
}

func TestRedisLimiter_Reverify(t *testing.T) {
	l, _ := newRedisLimiter(t)
	ctx := context.Background()

	// Peek does not consume
	for range 10 {
		ok, err := l.AllowReverify(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, ok)
	}

	for range ReverifyLimit {
		require.NoError(t, l.RecordReverify(ctx, "alice@example.com"))
	}

	ok, err := l.AllowReverify(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, ok)
}
