// Package subscription implements the billing sync surface: reading and
// replacing the single subscription record a tenant holds.
package subscription

import (
	"context"
	"fmt"
	"time"

	"tavolo/internal/domain/subscription"
	apperrors "tavolo/internal/shared/errors"
	"tavolo/internal/shared/logger"
)

// SubscriptionDTO is the outward-facing subscription representation
type SubscriptionDTO struct {
	RestaurantID uint      `json:"restaurantId"`
	Plan         string    `json:"plan"`
	PlanName     string    `json:"planName"`
	Status       string    `json:"status"`
	Active       bool      `json:"active"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SetSubscriptionCommand carries the billing sync input
type SetSubscriptionCommand struct {
	Plan   string `json:"plan" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// CacheInvalidator drops a tenant's cached subscription after a billing
// write. Nil when caching is disabled.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, tenantID uint) error
}

// Service handles subscription read and billing sync use cases
type Service struct {
	subscriptions subscription.Repository
	invalidator   CacheInvalidator
	logger        logger.Interface
}

// NewService creates a new subscription service
func NewService(subscriptions subscription.Repository, invalidator CacheInvalidator, logger logger.Interface) *Service {
	return &Service{
		subscriptions: subscriptions,
		invalidator:   invalidator,
		logger:        logger,
	}
}

// Get returns the tenant's subscription, not found when no record exists
func (s *Service) Get(ctx context.Context, restaurantID uint) (*SubscriptionDTO, error) {
	entity, err := s.subscriptions.GetByRestaurantID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("no subscription", fmt.Sprintf("restaurant_id=%d", restaurantID))
	}
	return toSubscriptionDTO(entity), nil
}

// Set replaces the tenant's subscription record from the billing collaborator
func (s *Service) Set(ctx context.Context, restaurantID uint, cmd SetSubscriptionCommand) (*SubscriptionDTO, error) {
	entity, err := subscription.NewSubscription(
		restaurantID,
		subscription.PlanType(cmd.Plan),
		subscription.Status(cmd.Status),
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.subscriptions.Upsert(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to store subscription: %w", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, restaurantID); err != nil {
			s.logger.Warnw("subscription stored but cache invalidation failed", "restaurant_id", restaurantID, "error", err)
		}
	}

	s.logger.Infow("subscription set", "restaurant_id", restaurantID, "plan", cmd.Plan, "status", cmd.Status)
	return toSubscriptionDTO(entity), nil
}

func toSubscriptionDTO(entity *subscription.Subscription) *SubscriptionDTO {
	return &SubscriptionDTO{
		RestaurantID: entity.RestaurantID(),
		Plan:         string(entity.PlanType()),
		PlanName:     entity.PlanType().DisplayName(),
		Status:       string(entity.Status()),
		Active:       entity.IsUsable(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
