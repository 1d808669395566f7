package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emberworks/gameledger/internal/logger"
)

// ErrCacheMiss indicates the key was not present.
var ErrCacheMiss = errors.New("cache miss")

// RetryPolicy bounds retries for a single cache call. It carries no state
// between calls; each operation gets its own attempt counter. Delay doubles
// after every failed attempt.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultPolicy retries once with a half-second base delay.
var DefaultPolicy = RetryPolicy{MaxAttempts: 2, BaseDelay: 500 * time.Millisecond}

// Cache defines the interface for the read-through cache
type Cache interface {
	Get(ctx context.Context, key string, policy RetryPolicy) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, policy RetryPolicy) error
	Delete(ctx context.Context, key string, policy RetryPolicy) error
	Close() error
}

type redisCache struct {
	client *redis.Client
	prefix string
}

// New creates a Redis-backed cache. Keys are namespaced with prefix.
func New(addr, password, prefix string) Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &redisCache{client: client, prefix: prefix}
}

func (c *redisCache) key(key string) string {
	return c.prefix + ":" + key
}

func (c *redisCache) Get(ctx context.Context, key string, policy RetryPolicy) ([]byte, error) {
	var data []byte
	err := withRetry(ctx, policy, func() error {
		val, err := c.client.Get(ctx, c.key(key)).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		if err != nil {
			return err
		}
		data = val
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration, policy RetryPolicy) error {
	return withRetry(ctx, policy, func() error {
		return c.client.Set(ctx, c.key(key), value, ttl).Err()
	})
}

func (c *redisCache) Delete(ctx context.Context, key string, policy RetryPolicy) error {
	return withRetry(ctx, policy, func() error {
		return c.client.Del(ctx, c.key(key)).Err()
	})
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

// withRetry runs op up to policy.MaxAttempts times with doubling delay.
// A cache miss is a result, not a failure; it returns immediately.
func withRetry(ctx context.Context, policy RetryPolicy, op func() error) error {
	attempts := policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	delay := policy.BaseDelay
	for i := 0; i < attempts; i++ {
		lastErr = op()
		if lastErr == nil || errors.Is(lastErr, ErrCacheMiss) {
			return lastErr
		}
		if i == attempts-1 {
			break
		}
		logger.FromContext(ctx).Warn("cache operation failed, retrying",
			"attempt", i+1, "error", lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return fmt.Errorf("cache operation failed after %d attempt(s): %w", attempts, lastErr)
}
