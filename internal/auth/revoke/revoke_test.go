package revoke

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryList(t *testing.T) {
	l := NewMemoryList()
	ctx := context.Background()

	revoked, err := l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, l.Revoke(ctx, "token-a", time.Hour))

	revoked, err = l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.True(t, revoked)

	// Other tokens are unaffected
	revoked, err = l.IsRevoked(ctx, "token-b")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestMemoryList_EntriesAgeOut(t *testing.T) {
	l := NewMemoryList()
	ctx := context.Background()

	now := time.Now().UTC()
	l.SetNow(func() time.Time { return now })

	require.NoError(t, l.Revoke(ctx, "token-a", time.Hour))

	revoked, _ := l.IsRevoked(ctx, "token-a")
	require.True(t, revoked)

	// Past the token's own expiry the entry no longer matters
	now = now.Add(2 * time.Hour)
	revoked, err := l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestMemoryList_RevokeIsIdempotent(t *testing.T) {
	l := NewMemoryList()
	ctx := context.Background()

	require.NoError(t, l.Revoke(ctx, "token-a", time.Hour))
	require.NoError(t, l.Revoke(ctx, "token-a", time.Hour))

	revoked, err := l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestRedisList(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisList(client)
	ctx := context.Background()

	revoked, err := l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, l.Revoke(ctx, "token-a", time.Hour))

	revoked, err = l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.True(t, revoked)

	// Entry drops off with its TTL
	srv.FastForward(2 * time.Hour)
	revoked, err = l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestRedisList_ZeroTTLIsNoop(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisList(client)
	ctx := context.Background()

	require.NoError(t, l.Revoke(ctx, "token-a", 0))

	revoked, err := l.IsRevoked(ctx, "token-a")
	require.NoError(t, err)
	require.False(t, revoked)
}
