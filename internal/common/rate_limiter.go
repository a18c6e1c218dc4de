package common

import (
	"context"
	"fmt"
	"time"

	"flightdesk/scheduler/internal/constants"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// RateLimiter decides whether the client identified by key may proceed
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// MemoryRateLimiter keeps one token bucket per client. Idle buckets expire
// from the cache so the map does not grow without bound.
type MemoryRateLimiter struct {
	buckets *cache.Cache
	limit   rate.Limit
	burst   int
}

func NewMemoryRateLimiter(perSecond float64, burst int, idle time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		buckets: cache.New(idle, 2*idle),
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	if v, found := l.buckets.Get(key); found {
		limiter := v.(*rate.Limiter)
		l.buckets.SetDefault(key, limiter) // refresh idle expiry
		return limiter.Allow(), nil
	}

	limiter := rate.NewLimiter(l.limit, l.burst)
	if err := l.buckets.Add(key, limiter, cache.DefaultExpiration); err != nil {
		// lost a race with another request for the same key
		if v, found := l.buckets.Get(key); found {
			limiter = v.(*rate.Limiter)
		}
	}
	return limiter.Allow(), nil
}

// redisCounter is the part of *redis.Client the limiter uses
type redisCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisRateLimiter is a fixed-window counter shared by every replica
type RedisRateLimiter struct {
	client redisCounter
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisRateLimiter allows limit requests per window per key
func NewRedisRateLimiter(client redisCounter, limit int64, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) windowKey(key string) string {
	slot := l.now().UnixNano() / int64(l.window)
	return fmt.Sprintf("%s%s:%d", constants.RateLimitKeyPrefix, key, slot)
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.windowKey(key)

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, k, 2*l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return count <= l.limit, nil
}
