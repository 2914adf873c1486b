package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cargo-tracker/internal/core/cache"
	"cargo-tracker/internal/features/orders/domain"
)

const (
	trackingKeyPrefix = "order:ref:"
	fenceKeyPrefix    = "order:fence:"

	// invalidationFence is how long Set refuses a reference after Invalidate, so a
	// reader that loaded the order before a write cannot cache its stale copy.
	invalidationFence = 5 * time.Second
)

// RedisTrackingCache implements ports.TrackingCache on top of the cache port.
type RedisTrackingCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisTrackingCache creates a new RedisTrackingCache.
func NewRedisTrackingCache(c cache.Cache, ttl time.Duration) *RedisTrackingCache {
	return &RedisTrackingCache{cache: c, ttl: ttl}
}

// Get returns the cached order for ref, or (nil, nil) on a miss.
func (c *RedisTrackingCache) Get(ctx context.Context, ref string) (*domain.Order, error) {
	data, err := c.cache.Get(ctx, trackingKeyPrefix+ref)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tracked order %s: %w", ref, err)
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracked order %s: %w", ref, err)
	}
	return &order, nil
}

// Set caches order under ref. It is a no-op while ref is fenced by a recent Invalidate.
func (c *RedisTrackingCache) Set(ctx context.Context, ref string, order *domain.Order) error {
	_, err := c.cache.Get(ctx, fenceKeyPrefix+ref)
	if err == nil {
		return nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		return fmt.Errorf("failed to check invalidation fence for %s: %w", ref, err)
	}

	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal tracked order: %w", err)
	}
	if err := c.cache.Set(ctx, trackingKeyPrefix+ref, data, c.ttl); err != nil {
		return fmt.Errorf("failed to cache tracked order %s: %w", ref, err)
	}
	return nil
}

// Invalidate fences and then drops every given reference. Empty refs are ignored.
func (c *RedisTrackingCache) Invalidate(ctx context.Context, refs ...string) error {
	keys := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		keys = append(keys, trackingKeyPrefix+ref)
	}
	if len(keys) == 0 {
		return nil
	}

	for ref := range seen {
		if err := c.cache.Set(ctx, fenceKeyPrefix+ref, []byte("1"), invalidationFence); err != nil {
			return fmt.Errorf("failed to fence tracked order %s: %w", ref, err)
		}
	}
	if err := c.cache.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to invalidate tracked orders: %w", err)
	}
	return nil
}
