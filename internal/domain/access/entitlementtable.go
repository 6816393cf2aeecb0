package access

import (
	"tavolo/internal/domain/subscription"
)

// starterGrants is the base capability set; each following tier adds to the
// one below it, so higher tiers are supersets of lower tiers by construction.
var starterGrants = []Capability{
	CapabilityMenu,
	CapabilityOrders,
	CapabilityOnlineOrdering,
	CapabilityTakeaway,
}

var professionalExtras = []Capability{
	CapabilityReservations,
	CapabilityDelivery,
	CapabilitySocialMedia,
}

var enterpriseExtras = []Capability{
	CapabilityLoyalty,
	CapabilityGiftCards,
	CapabilityCatering,
}

// CapabilityReviews is deliberately absent from every tier: it exists in the
// toggle defaults but is reserved, with no classifier pattern and no plan
// granting it.

// EntitlementTable is the process-wide mapping from plan tier to the
// capability set it grants. Immutable after construction; safe for
// unsynchronized concurrent reads.
type EntitlementTable struct {
	grants map[subscription.PlanType]map[Capability]bool
}

// NewEntitlementTable builds the static plan entitlement table. Each tier's
// set is the union of the tier below and its own extras, which makes the
// monotonic containment chain (enterprise ⊇ professional ⊇ starter) hold by
// construction rather than by review.
func NewEntitlementTable() *EntitlementTable {
	starter := capabilitySet(starterGrants)
	professional := union(starter, professionalExtras)
	enterprise := union(professional, enterpriseExtras)

	return &EntitlementTable{
		grants: map[subscription.PlanType]map[Capability]bool{
			subscription.PlanStarter:      starter,
			subscription.PlanProfessional: professional,
			subscription.PlanEnterprise:   enterprise,
		},
	}
}

// Grants reports whether the plan tier includes the capability.
func (t *EntitlementTable) Grants(plan subscription.PlanType, capability Capability) bool {
	return t.grants[plan][capability]
}

// MinimumPlanFor returns the first tier in ascending order whose set contains
// the capability. The second return is false when no tier grants it.
func (t *EntitlementTable) MinimumPlanFor(capability Capability) (subscription.PlanType, bool) {
	for _, plan := range subscription.PlansAscending() {
		if t.grants[plan][capability] {
			return plan, true
		}
	}
	return "", false
}

// Capabilities returns the capability set of a tier in declaration order.
func (t *EntitlementTable) Capabilities(plan subscription.PlanType) []Capability {
	set := t.grants[plan]
	capabilities := make([]Capability, 0, len(set))
	for _, capability := range AllCapabilities {
		if set[capability] {
			capabilities = append(capabilities, capability)
		}
	}
	return capabilities
}

func capabilitySet(capabilities []Capability) map[Capability]bool {
	set := make(map[Capability]bool, len(capabilities))
	for _, capability := range capabilities {
		set[capability] = true
	}
	return set
}

func union(base map[Capability]bool, extras []Capability) map[Capability]bool {
	merged := make(map[Capability]bool, len(base)+len(extras))
	for capability := range base {
		merged[capability] = true
	}
	for _, capability := range extras {
		merged[capability] = true
	}
	return merged
}
