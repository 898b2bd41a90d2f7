package rate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_OTPBudget(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	// First five requests pass
	for i := range OTPRequestLimit {
		ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, ok, "request %d should pass", i+1)
	}

	// Sixth is rejected
	ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, ok)

	// A different address is unaffected
	ok, err = l.AllowOTPRequest(ctx, "bob@example.com")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryLimiter_NormalizesEmail(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	for range OTPRequestLimit {
		ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, ok)
	}

	// Case variants share the same counter
	ok, err := l.AllowOTPRequest(ctx, "  ALICE@Example.com ")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryLimiter_WindowExpiry(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	now := time.Now().UTC()
	l.SetNow(func() time.Time { return now })

	for range OTPRequestLimit {
		ok, _ := l.AllowOTPRequest(ctx, "alice@example.com")
		require.True(t, ok)
	}
	ok, _ := l.AllowOTPRequest(ctx, "alice@example.com")
	require.False(t, ok)

	// Advance past the window; budget resets
	now = now.Add(Window + time.Minute)
	ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryLimiter_Reverify(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	// Peek does not consume
	for range 10 {
		ok, err := l.AllowReverify(ctx, "alice@example.com")
		require.NoError(t, err)
		require.True(t, ok)
	}

	// Consume the budget
	for range ReverifyLimit {
		require.NoError(t, l.RecordReverify(ctx, "alice@example.com"))
	}

	ok, err := l.AllowReverify(ctx, "alice@example.com")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryLimiter_ConcurrentConsume(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	// Many goroutines racing on one address must admit exactly the budget.
	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.AllowOTPRequest(ctx, "alice@example.com")
			require.NoError(t, err)
			if ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, OTPRequestLimit, allowed)
}
