package access

import (
	"context"

	"tavolo/internal/domain/subscription"
)

// ToggleStore loads the stored per-tenant feature toggle document.
// A nil document with nil error is the valid "never configured" state.
type ToggleStore interface {
	LoadToggleDocument(ctx context.Context, tenantID uint) ([]byte, error)
}

// SubscriptionStore loads the tenant's subscription record.
// A nil subscription with nil error means no record exists, which is a
// distinct valid state for a new or unconfigured tenant.
type SubscriptionStore interface {
	LoadSubscription(ctx context.Context, tenantID uint) (*subscription.Subscription, error)
}

// TenantDirectory answers the capability-specific secondary lookups used by
// tenant resolution. Implementations return zero when the referenced record
// does not exist.
type TenantDirectory interface {
	TenantIDByReservation(ctx context.Context, reservationID uint) (uint, error)
	TenantIDBySlug(ctx context.Context, slug string) (uint, error)
}
