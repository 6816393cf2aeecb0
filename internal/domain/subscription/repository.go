package subscription

import "context"

// Repository defines the interface for subscription data operations. The
// billing collaborator writes; this core mostly reads.
type Repository interface {
	// GetByRestaurantID retrieves a tenant's subscription. A nil result with
	// nil error means no record exists, which is a valid state.
	GetByRestaurantID(ctx context.Context, restaurantID uint) (*Subscription, error)

	// Upsert creates or replaces a tenant's subscription record
	Upsert(ctx context.Context, subscription *Subscription) error
}
