package revoke

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wesports/auth/pkg/cryptox"
)

// RedisList keeps revocations in redis so logout and rotation hold across
// restarts and replicas. Each fingerprint is stored with the remaining token
// TTL, after which redis drops it for free.
type RedisList struct {
	client *redis.Client
}

func NewRedisList(client *redis.Client) *RedisList {
	return &RedisList{client: client}
}

func (l *RedisList) Revoke(ctx context.Context, rawToken string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to track
	}
	key := l.key(rawToken)
	if err := l.client.Set(ctx, key, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke: store fingerprint: %w", err)
	}
	return nil
}

func (l *RedisList) IsRevoked(ctx context.Context, rawToken string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(rawToken)).Result()
	if err != nil {
		return false, fmt.Errorf("revoke: check fingerprint: %w", err)
	}
	return n > 0, nil
}

func (l *RedisList) key(rawToken string) string {
	return "revoked:" + cryptox.FingerprintToken(rawToken)
}
