package access

import (
	"context"

	"tavolo/internal/shared/logger"
)

// EntitlementGate decides allow/deny for the subscription plan layer.
//
// The gate fails closed: an unresolved tenant denies, a missing subscription
// record denies, and any status outside the active set denies. A principal
// with the super admin role bypasses this gate entirely, independent of
// tenant and subscription state. The toggle layer is not bypassed.
type EntitlementGate struct {
	store  SubscriptionStore
	table  *EntitlementTable
	logger logger.Interface
}

// NewEntitlementGate creates an entitlement gate over the given store and
// plan entitlement table
func NewEntitlementGate(store SubscriptionStore, table *EntitlementTable, logger logger.Interface) *EntitlementGate {
	return &EntitlementGate{
		store:  store,
		table:  table,
		logger: logger,
	}
}

// Evaluate decides whether the tenant's subscription grants the capability.
// The returned error reports a store failure only; every policy branch ends
// in a Decision.
func (g *EntitlementGate) Evaluate(ctx context.Context, capability Capability, tenantID uint, principal *Principal) (Decision, error) {
	if !capability.IsRestricted() {
		return Allow(), nil
	}

	if principal.IsSuperAdmin() {
		return Allow(), nil
	}

	if tenantID == 0 {
		return DenyTenantNotFound(), nil
	}

	sub, err := g.store.LoadSubscription(ctx, tenantID)
	if err != nil {
		g.logger.Errorw("subscription load failed",
			"tenant_id", tenantID, "error", err)
		return Decision{}, err
	}

	if sub == nil {
		return DenyNoSubscription(capability), nil
	}

	if !sub.Status().CanUseService() {
		g.logger.Debugw("subscription not active",
			"tenant_id", tenantID, "status", sub.Status())
		return DenySubscriptionNotActive(capability, sub.Status()), nil
	}

	if !g.table.Grants(sub.PlanType(), capability) {
		upgradeTo, known := g.table.MinimumPlanFor(capability)
		g.logger.Debugw("plan does not grant capability",
			"tenant_id", tenantID,
			"plan", sub.PlanType(),
			"capability", capability)
		return DenyPlanInsufficient(capability, sub.PlanType(), upgradeTo, known), nil
	}

	return Allow(), nil
}
