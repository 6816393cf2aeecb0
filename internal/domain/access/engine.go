package access

import (
	"context"

	"tavolo/internal/shared/logger"
)

// Engine runs both policy layers for a request. The gates are independent:
// either may deny with its own payload, and a request proceeds only when both
// allow. The engine surfaces whichever gate denies first without running the
// other.
//
// The layers fail differently on an unresolved tenant: the toggle gate allows
// (fail-open) while the entitlement gate denies (fail-closed). The asymmetry
// is deliberate and must not be "fixed" here; an unresolvable tenant cannot
// be toggle-denied, which is a known product-level gap.
type Engine struct {
	classifier      *Classifier
	resolver        *TenantResolver
	toggleGate      *ToggleGate
	entitlementGate *EntitlementGate
	logger          logger.Interface
}

// NewEngine wires the classifier, resolver and both gates into an engine
func NewEngine(
	classifier *Classifier,
	resolver *TenantResolver,
	toggleGate *ToggleGate,
	entitlementGate *EntitlementGate,
	logger logger.Interface,
) *Engine {
	return &Engine{
		classifier:      classifier,
		resolver:        resolver,
		toggleGate:      toggleGate,
		entitlementGate: entitlementGate,
		logger:          logger,
	}
}

// Evaluation is the engine's result for one request. Capability and TenantID
// are exposed so the HTTP layer can annotate logs and downstream handlers.
type Evaluation struct {
	Capability Capability
	TenantID   uint
	Decision   Decision
}

// Evaluate classifies the request, resolves its tenant and runs both gates.
// Evaluation is stateless and side-effect free beyond the two store reads, so
// a request may be retried safely.
func (e *Engine) Evaluate(ctx context.Context, req Request) (Evaluation, error) {
	capability := e.classifier.Classify(req.Method, req.Path)
	if !capability.IsRestricted() {
		return Evaluation{Capability: capability, Decision: Allow()}, nil
	}

	tenantID := e.resolver.Resolve(ctx, capability, req)

	decision, err := e.toggleGate.Evaluate(ctx, capability, tenantID)
	if err != nil {
		return Evaluation{}, err
	}
	if !decision.Allowed {
		return Evaluation{Capability: capability, TenantID: tenantID, Decision: decision}, nil
	}

	decision, err = e.entitlementGate.Evaluate(ctx, capability, tenantID, req.Principal)
	if err != nil {
		return Evaluation{}, err
	}

	return Evaluation{Capability: capability, TenantID: tenantID, Decision: decision}, nil
}
