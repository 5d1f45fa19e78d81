package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lendly/sharing-system/internal/api/metrics"
	"github.com/lendly/sharing-system/internal/core/domain"
)

const defaultCacheTTL = 10 * time.Minute

// UserCache is a read-through cache for user lookups backed by Redis.
// Key format: user:<id>, value is the JSON-encoded user.
type UserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache creates a UserCache wrapping the given Redis client.
// If ttl <= 0, defaultCacheTTL is used.
func NewUserCache(client *redis.Client, ttl time.Duration) *UserCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &UserCache{client: client, ttl: ttl}
}

// Get returns the cached user, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, id string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.UserCacheTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		metrics.UserCacheTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("user cache get: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		// A corrupt entry behaves like a miss after invalidation.
		_ = c.client.Del(ctx, c.key(id)).Err()
		metrics.UserCacheTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("user cache decode: %w", err)
	}

	metrics.UserCacheTotal.WithLabelValues("hit").Inc()
	return &u, nil
}

// Set stores the user (expires after the configured TTL).
func (c *UserCache) Set(ctx context.Context, u *domain.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("user cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(u.ID), raw, c.ttl).Err()
}

// Invalidate drops the cached entry after an update or delete.
func (c *UserCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *UserCache) key(id string) string {
	return "user:" + id
}
