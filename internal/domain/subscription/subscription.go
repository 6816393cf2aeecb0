package subscription

import (
	"fmt"
	"time"
)

// Subscription represents the one subscription record a tenant holds. It is
// created and mutated by the external billing collaborator; this core only
// reads it. Absence of a record is a distinct valid state (new or
// unconfigured tenant), not an error.
type Subscription struct {
	id           uint
	restaurantID uint
	planType     PlanType
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewSubscription creates a subscription for a tenant
func NewSubscription(restaurantID uint, planType PlanType, status Status) (*Subscription, error) {
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if !planType.IsValid() {
		return nil, fmt.Errorf("invalid plan type: %s", planType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	now := time.Now()
	return &Subscription{
		restaurantID: restaurantID,
		planType:     planType,
		status:       status,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, restaurantID uint,
	planType PlanType,
	status Status,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if !planType.IsValid() {
		return nil, fmt.Errorf("invalid plan type: %s", planType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:           id,
		restaurantID: restaurantID,
		planType:     planType,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the subscription ID
func (s *Subscription) ID() uint {
	return s.id
}

// SetID sets the subscription ID (only for persistence layer use)
func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

// RestaurantID returns the owning tenant id
func (s *Subscription) RestaurantID() uint {
	return s.restaurantID
}

// PlanType returns the subscribed plan tier
func (s *Subscription) PlanType() PlanType {
	return s.planType
}

// Status returns the subscription status
func (s *Subscription) Status() Status {
	return s.status
}

// CreatedAt returns when the subscription was created
func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when the subscription was last updated
func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsUsable reports whether the subscription grants entitlements
func (s *Subscription) IsUsable() bool {
	return s.status.CanUseService()
}
