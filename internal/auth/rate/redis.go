package rate

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/wesports/auth/internal/auth/domain"
)

// RedisLimiter keeps the counters in redis so budgets hold across restarts
// and replicas. Keys carry a window-sized TTL armed on first increment, and
// rejected requests do not touch the counter, matching MemoryLimiter.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) AllowOTPRequest(ctx context.Context, email string) (bool, error) {
	return l.consume(ctx, l.key("otp", email), OTPRequestLimit)
}

func (l *RedisLimiter) AllowReverify(ctx context.Context, email string) (bool, error) {
	count, err := l.client.Get(ctx, l.key("reverify", email)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("rate: read reverify counter: %w", err)
	}
	return count < ReverifyLimit, nil
}

func (l *RedisLimiter) RecordReverify(ctx context.Context, email string) error {
	_, err := l.consume(ctx, l.key("reverify", email), ReverifyLimit)
	return err
}

// consumeScript checks the budget and increments only when under it, the
// same consume-on-success semantics as the in-process limiter. Running as a
// script keeps check, increment and TTL arming atomic, and a counter that
// somehow lost its TTL gets re-armed rather than living forever.
var consumeScript = redis.NewScript(`
local count = tonumber(redis.call("GET", KEYS[1]) or "0")
if count >= tonumber(ARGV[1]) then
	return 0
end
count = redis.call("INCR", KEYS[1])
if redis.call("TTL", KEYS[1]) < 0 then
	redis.call("EXPIRE", KEYS[1], ARGV[2])
end
return count
`)

// consume reports whether the budget had room, taking one unit if so.
func (l *RedisLimiter) consume(ctx context.Context, key string, limit int) (bool, error) {
	count, err := consumeScript.Run(ctx, l.client, []string{key}, limit, int(Window.Seconds())).Int64()
	if err != nil {
		return false, fmt.Errorf("rate: consume budget: %w", err)
	}
	return count > 0, nil
}

func (l *RedisLimiter) key(kind, email string) string {
	return "ratelimit:" + kind + ":" + domain.NormalizeEmail(email)
}
