package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tavolo/internal/domain/access"
	"tavolo/internal/domain/subscription"
	"tavolo/internal/shared/logger"
)

const (
	subscriptionKeyPrefix  = "tenant:subscription:"
	subscriptionNullMarker = "_null" // tenant confirmed to have no subscription record
)

type cachedSubscription struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurant_id"`
	PlanType     string    `json:"plan_type"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RedisSubscriptionStore is a read-through cache in front of the subscription
// store. Absence of a record is cached with a null marker so new tenants do
// not hammer the database on every request.
type RedisSubscriptionStore struct {
	client *redis.Client
	store  access.SubscriptionStore
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisSubscriptionStore creates a read-through subscription cache
func NewRedisSubscriptionStore(client *redis.Client, store access.SubscriptionStore, ttl time.Duration, logger logger.Interface) *RedisSubscriptionStore {
	return &RedisSubscriptionStore{
		client: client,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisSubscriptionStore) key(tenantID uint) string {
	return fmt.Sprintf("%s%d", subscriptionKeyPrefix, tenantID)
}

// LoadSubscription returns the cached record when present, otherwise loads
// from the underlying store and caches the result.
func (c *RedisSubscriptionStore) LoadSubscription(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	key := c.key(tenantID)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		if cached == subscriptionNullMarker {
			return nil, nil
		}
		entity, decodeErr := decodeSubscription([]byte(cached))
		if decodeErr == nil {
			return entity, nil
		}
		c.logger.Warnw("corrupt cached subscription, falling through to store", "tenant_id", tenantID, "error", decodeErr)
	case !errors.Is(err, redis.Nil):
		c.logger.Warnw("subscription cache read failed, falling through to store", "tenant_id", tenantID, "error", err)
	}

	entity, err := c.store.LoadSubscription(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	value := subscriptionNullMarker
	if entity != nil {
		encoded, encodeErr := json.Marshal(cachedSubscription{
			ID:           entity.ID(),
			RestaurantID: entity.RestaurantID(),
			PlanType:     string(entity.PlanType()),
			Status:       string(entity.Status()),
			CreatedAt:    entity.CreatedAt(),
			UpdatedAt:    entity.UpdatedAt(),
		})
		if encodeErr != nil {
			return entity, nil
		}
		value = string(encoded)
	}
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.Warnw("subscription cache write failed", "tenant_id", tenantID, "error", err)
	}

	return entity, nil
}

// Invalidate drops the cached record after a billing sync write
func (c *RedisSubscriptionStore) Invalidate(ctx context.Context, tenantID uint) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		c.logger.Warnw("subscription cache invalidation failed", "tenant_id", tenantID, "error", err)
		return fmt.Errorf("failed to invalidate subscription cache: %w", err)
	}
	return nil
}

func decodeSubscription(raw []byte) (*subscription.Subscription, error) {
	var record cachedSubscription
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to decode cached subscription: %w", err)
	}

	return subscription.ReconstructSubscription(
		record.ID,
		record.RestaurantID,
		subscription.PlanType(record.PlanType),
		subscription.Status(record.Status),
		record.CreatedAt,
		record.UpdatedAt,
	)
}
