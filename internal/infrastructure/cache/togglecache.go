package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tavolo/internal/domain/access"
	"tavolo/internal/shared/logger"
)

const (
	toggleKeyPrefix  = "tenant:toggles:"
	toggleNullMarker = "_null" // tenant confirmed to have no stored document
)

// RedisToggleStore is a read-through cache in front of the toggle document
// store. Cache failures degrade to the underlying store, never to a denial.
type RedisToggleStore struct {
	client *redis.Client
	store  access.ToggleStore
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisToggleStore creates a read-through toggle document cache
func NewRedisToggleStore(client *redis.Client, store access.ToggleStore, ttl time.Duration, logger logger.Interface) *RedisToggleStore {
	return &RedisToggleStore{
		client: client,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisToggleStore) key(tenantID uint) string {
	return fmt.Sprintf("%s%d", toggleKeyPrefix, tenantID)
}

// LoadToggleDocument returns the cached document when present, otherwise
// loads from the underlying store and caches the result. A tenant without a
// stored document is cached with a null marker to avoid repeated lookups.
func (c *RedisToggleStore) LoadToggleDocument(ctx context.Context, tenantID uint) ([]byte, error) {
	key := c.key(tenantID)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == toggleNullMarker {
			return nil, nil
		}
		return []byte(cached), nil
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("toggle cache read failed, falling through to store", "tenant_id", tenantID, "error", err)
	}

	doc, err := c.store.LoadToggleDocument(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	value := toggleNullMarker
	if doc != nil {
		value = string(doc)
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warnw("toggle cache write failed", "tenant_id", tenantID, "error", err)
	}

	return doc, nil
}

// Invalidate drops the cached document after a settings write
func (c *RedisToggleStore) Invalidate(ctx context.Context, tenantID uint) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		c.logger.Warnw("toggle cache invalidation failed", "tenant_id", tenantID, "error", err)
		return fmt.Errorf("failed to invalidate toggle cache: %w", err)
	}
	return nil
}
