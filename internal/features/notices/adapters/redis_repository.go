package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"cargo-tracker/internal/core/cache"
	"cargo-tracker/internal/features/notices/domain"
)

const noticeKeyPrefix = "notice:"

// RedisNoticeRepository implements ports.NoticeRepository on top of the cache port.
// Expiry is delegated to the key TTL.
type RedisNoticeRepository struct {
	cache cache.Cache
}

// NewRedisNoticeRepository creates a new RedisNoticeRepository.
func NewRedisNoticeRepository(c cache.Cache) *RedisNoticeRepository {
	return &RedisNoticeRepository{cache: c}
}

// Save stores the notice.
func (r *RedisNoticeRepository) Save(ctx context.Context, notice *domain.Notice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal notice: %w", err)
	}

	if err := r.cache.Set(ctx, noticeKeyPrefix+notice.ID, data, notice.TTL()); err != nil {
		return fmt.Errorf("failed to save notice to cache: %w", err)
	}

	return nil
}

// List returns live notices, newest first.
func (r *RedisNoticeRepository) List(ctx context.Context) ([]domain.Notice, error) {
	keys, err := r.cache.Keys(ctx, noticeKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	notices := make([]domain.Notice, 0, len(keys))
	for _, key := range keys {
		data, err := r.cache.Get(ctx, key)
		if errors.Is(err, cache.ErrCacheMiss) {
			// expired between SCAN and GET
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get notice %s: %w", key, err)
		}

		var n domain.Notice
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notice %s: %w", key, err)
		}
		notices = append(notices, n)
	}

	sort.Slice(notices, func(i, j int) bool {
		return notices[i].CreatedAt.After(notices[j].CreatedAt)
	})

	return notices, nil
}

// Delete removes the notice.
func (r *RedisNoticeRepository) Delete(ctx context.Context, id string) (bool, error) {
	key := noticeKeyPrefix + id

	if _, err := r.cache.Get(ctx, key); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get notice %s: %w", id, err)
	}

	if err := r.cache.Delete(ctx, key); err != nil {
		return false, fmt.Errorf("failed to delete notice from cache: %w", err)
	}
	return true, nil
}
