package rate

import (
	"context"
	"sync"
	"time"

	"github.com/wesports/auth/internal/auth/domain"
)

// Abuse budgets per normalized email, counted over a fixed rolling-hour
// window.
const (
	// OTPRequestLimit caps how many codes one address can request per window.
	OTPRequestLimit = 5

	// ReverifyLimit caps how many times a verified address can restart the
	// verify step per window.
	ReverifyLimit = 3

	// Window is the counting window for both budgets.
	Window = time.Hour
)

// Limiter tracks per-email abuse counters. Implementations must be safe for
// concurrent use.
type Limiter interface {
	// AllowOTPRequest consumes one unit of the OTP budget for the email.
	// It returns false once the budget is spent for the current window.
	AllowOTPRequest(ctx context.Context, email string) (bool, error)

	// AllowReverify reports whether the reverify budget still has room,
	// without consuming it.
	AllowReverify(ctx context.Context, email string) (bool, error)

	// RecordReverify consumes one unit of the reverify budget.
	RecordReverify(ctx context.Context, email string) error
}

type counter struct {
	mu          sync.Mutex
	count       int
	windowStart time.Time
}

// MemoryLimiter is the in-process Limiter. Counters reset when their window
// ages out and stale entries are pruned lazily, so memory stays bounded by
// the set of addresses seen in the last hour. State does not survive a
// restart and is not shared across replicas.
type MemoryLimiter struct {
	otp      sync.Map // email -> *counter
	reverify sync.Map // email -> *counter

	lastPrune pruneState

	now func() time.Time
}

type pruneState struct {
	mu sync.Mutex
	t  time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{now: func() time.Time { return time.Now().UTC() }}
}

// SetNow overrides the clock, for tests.
func (l *MemoryLimiter) SetNow(now func() time.Time) { l.now = now }

func (l *MemoryLimiter) AllowOTPRequest(ctx context.Context, email string) (bool, error) {
	return l.consume(&l.otp, email, OTPRequestLimit), nil
}

func (l *MemoryLimiter) AllowReverify(ctx context.Context, email string) (bool, error) {
	return l.peek(&l.reverify, email, ReverifyLimit), nil
}

func (l *MemoryLimiter) RecordReverify(ctx context.Context, email string) error {
	l.consume(&l.reverify, email, ReverifyLimit)
	return nil
}

// consume atomically checks the budget and increments on success.
func (l *MemoryLimiter) consume(m *sync.Map, email string, limit int) bool {
	l.maybePrune()

	c := l.get(m, email)
	now := l.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.windowStart) >= Window {
		c.count = 0
		c.windowStart = now
	}
	if c.count >= limit {
		return false
	}
	c.count++
	return true
}

// peek checks the budget without consuming.
func (l *MemoryLimiter) peek(m *sync.Map, email string, limit int) bool {
	c := l.get(m, email)
	now := l.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if now.Sub(c.windowStart) >= Window {
		return true
	}
	return c.count < limit
}

func (l *MemoryLimiter) get(m *sync.Map, email string) *counter {
	key := domain.NormalizeEmail(email)
	if v, ok := m.Load(key); ok {
		return v.(*counter)
	}
	v, _ := m.LoadOrStore(key, &counter{windowStart: l.now()})
	return v.(*counter)
}

// maybePrune drops entries whose window has fully elapsed. Runs at most once
// per window so the scan cost stays negligible.
func (l *MemoryLimiter) maybePrune() {
	l.lastPrune.mu.Lock()
	if l.now().Sub(l.lastPrune.t) < Window {
		l.lastPrune.mu.Unlock()
		return
	}
	l.lastPrune.t = l.now()
	l.lastPrune.mu.Unlock()

	cutoff := l.now().Add(-Window)
	for _, m := range []*sync.Map{&l.otp, &l.reverify} {
		m.Range(func(key, value any) bool {
			c := value.(*counter)
			c.mu.Lock()
			stale := c.windowStart.Before(cutoff)
			c.mu.Unlock()
			if stale {
				m.Delete(key)
			}
			return true
		})
	}
}
