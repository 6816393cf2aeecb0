// Package access implements the entitlement resolution engine: it classifies
// incoming requests into capabilities and decides, per tenant, whether the
// capability may be used. Two independent layers contribute to the decision:
// per-tenant feature toggles and subscription plan entitlements.
package access

// Capability represents a unit of product functionality gated independently
// of others. The set is closed; values are defined once at process start.
type Capability string

const (
	CapabilityMenu           Capability = "menu"
	CapabilityOrders         Capability = "orders"
	CapabilityReservations   Capability = "reservations"
	CapabilityDelivery       Capability = "delivery"
	CapabilityLoyalty        Capability = "loyalty"
	CapabilityGiftCards      Capability = "giftCards"
	CapabilityCatering       Capability = "catering"
	CapabilityReviews        Capability = "reviews"
	CapabilityOnlineOrdering Capability = "onlineOrdering"
	CapabilityTakeaway       Capability = "takeaway"
	CapabilitySocialMedia    Capability = "socialMedia"

	// CapabilityNone is the sentinel for requests no classifier pattern
	// matches. Both gates allow it unconditionally.
	CapabilityNone Capability = ""
)

// AllCapabilities lists every defined capability in declaration order.
var AllCapabilities = []Capability{
	CapabilityMenu,
	CapabilityOrders,
	CapabilityReservations,
	CapabilityDelivery,
	CapabilityLoyalty,
	CapabilityGiftCards,
	CapabilityCatering,
	CapabilityReviews,
	CapabilityOnlineOrdering,
	CapabilityTakeaway,
	CapabilitySocialMedia,
}

// IsValid checks if the capability is one of the defined values
func (c Capability) IsValid() bool {
	switch c {
	case CapabilityMenu, CapabilityOrders, CapabilityReservations,
		CapabilityDelivery, CapabilityLoyalty, CapabilityGiftCards,
		CapabilityCatering, CapabilityReviews, CapabilityOnlineOrdering,
		CapabilityTakeaway, CapabilitySocialMedia:
		return true
	default:
		return false
	}
}

// IsRestricted reports whether the capability is subject to gating.
// CapabilityNone passes both layers without any lookup.
func (c Capability) IsRestricted() bool {
	return c != CapabilityNone
}

// String returns the string representation of the capability
func (c Capability) String() string {
	return string(c)
}
