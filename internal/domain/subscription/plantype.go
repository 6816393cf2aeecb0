// Package subscription provides domain models for tenant subscriptions and
// the plan tier hierarchy used by the entitlement layer.
package subscription

// PlanType represents a subscription plan tier. Tiers form a total order:
// starter < professional < enterprise.
type PlanType string

const (
	PlanStarter      PlanType = "starter"
	PlanProfessional PlanType = "professional"
	PlanEnterprise   PlanType = "enterprise"
)

// planRank orders tiers ascending. Immutable after process start.
var planRank = map[PlanType]int{
	PlanStarter:      0,
	PlanProfessional: 1,
	PlanEnterprise:   2,
}

// PlansAscending returns the plan tiers in ascending order. Upgrade
// suggestions scan this slice front to back.
func PlansAscending() []PlanType {
	return []PlanType{PlanStarter, PlanProfessional, PlanEnterprise}
}

// IsValid checks if the plan type is valid
func (p PlanType) IsValid() bool {
	_, ok := planRank[p]
	return ok
}

// String returns the string representation of the plan type
func (p PlanType) String() string {
	return string(p)
}

// DisplayName returns the human-readable plan name
func (p PlanType) DisplayName() string {
	switch p {
	case PlanStarter:
		return "Starter"
	case PlanProfessional:
		return "Professional"
	case PlanEnterprise:
		return "Enterprise"
	default:
		return string(p)
	}
}

// AtLeast reports whether the tier is equal to or above the other tier.
func (p PlanType) AtLeast(other PlanType) bool {
	return planRank[p] >= planRank[other]
}
