package revoke

import (
	"context"
	"sync"
	"time"

	"github.com/wesports/auth/pkg/cryptox"
)

// List tracks refresh tokens that must no longer be accepted, keyed by
// SHA-256 fingerprint so raw tokens are never stored. Implementations must
// be safe for concurrent use.
type List interface {
	// Revoke marks a raw refresh token as dead until it would have expired
	// anyway.
	Revoke(ctx context.Context, rawToken string, ttl time.Duration) error

	// IsRevoked reports whether the raw token has been revoked.
	IsRevoked(ctx context.Context, rawToken string) (bool, error)
}

type entry struct {
	expiresAt time.Time
}

// MemoryList is the in-process List. Entries age out with the token's own
// TTL so the set stays bounded. State does not survive a restart and is not
// shared across replicas.
type MemoryList struct {
	entries sync.Map // fingerprint -> entry

	pruneMu   sync.Mutex
	lastPrune time.Time

	now func() time.Time
}

func NewMemoryList() *MemoryList {
	return &MemoryList{now: func() time.Time { return time.Now().UTC() }}
}

// SetNow overrides the clock, for tests.
func (l *MemoryList) SetNow(now func() time.Time) { l.now = now }

func (l *MemoryList) Revoke(ctx context.Context, rawToken string, ttl time.Duration) error {
	l.maybePrune()
	fp := cryptox.FingerprintToken(rawToken)
	l.entries.Store(fp, entry{expiresAt: l.now().Add(ttl)})
	return nil
}

func (l *MemoryList) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	fp := cryptox.FingerprintToken(rawToken)
	v, ok := l.entries.Load(fp)
	if !ok {
		return false, nil
	}
	if l.now().After(v.(entry).expiresAt) {
		l.entries.Delete(fp)
		return false, nil
	}
	return true, nil
}

// maybePrune sweeps aged-out entries at most once per hour.
func (l *MemoryList) maybePrune() {
	l.pruneMu.Lock()
	if l.now().Sub(l.lastPrune) < time.Hour {
		l.pruneMu.Unlock()
		return
	}
	l.lastPrune = l.now()
	l.pruneMu.Unlock()

	now := l.now()
	l.entries.Range(func(key, value any) bool {
		if now.After(value.(entry).expiresAt) {
			l.entries.Delete(key)
		}
		return true
	})
}
