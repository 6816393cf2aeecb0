package access

import (
	"context"

	"tavolo/internal/shared/logger"
)

// ToggleGate decides allow/deny for the per-tenant feature toggle layer.
//
// The gate fails open on an unresolved tenant, and a malformed stored
// document degrades to "no overrides" (defaults only). A store failure is
// different: it propagates as an error, because evaluating bare defaults
// during an outage could allow a capability the tenant explicitly disabled.
// The inverse philosophy of the entitlement gate is intentional and
// observable behavior; see the engine documentation.
type ToggleGate struct {
	store  ToggleStore
	logger logger.Interface
}

// NewToggleGate creates a toggle gate over the given store
func NewToggleGate(store ToggleStore, logger logger.Interface) *ToggleGate {
	return &ToggleGate{
		store:  store,
		logger: logger,
	}
}

// Evaluate decides whether the tenant may use the capability according to its
// resolved toggle document. Only a resolved value of exactly false denies.
// The returned error reports a store failure only; every policy branch ends
// in a Decision.
func (g *ToggleGate) Evaluate(ctx context.Context, capability Capability, tenantID uint) (Decision, error) {
	if !capability.IsRestricted() {
		return Allow(), nil
	}

	if tenantID == 0 {
		// Fail-open: an unresolvable tenant cannot be toggle-denied.
		return Allow(), nil
	}

	raw, err := g.store.LoadToggleDocument(ctx, tenantID)
	if err != nil {
		g.logger.Errorw("toggle document load failed",
			"tenant_id", tenantID, "error", err)
		return Decision{}, err
	}

	resolved := ResolveToggles(CoerceToggleDocument(raw))
	if enabled, ok := resolved[capability]; ok && !enabled {
		g.logger.Debugw("feature disabled by tenant toggles",
			"tenant_id", tenantID, "capability", capability)
		return DenyFeatureDisabled(capability), nil
	}

	return Allow(), nil
}
