package access

import (
	"fmt"

	"tavolo/internal/domain/subscription"
)

// Decision is the outcome of a gate evaluation. When denied, Payload is the
// JSON body the HTTP layer returns with a 403. Every evaluation branch ends
// in an explicit Decision; no gate raises for malformed inputs.
type Decision struct {
	Allowed bool
	Payload map[string]any
}

// Allow returns an allowing decision
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a denying decision with the given payload
func Deny(payload map[string]any) Decision {
	return Decision{Allowed: false, Payload: payload}
}

// DenyFeatureDisabled is the toggle-layer denial: a single combined message
// naming the disabled capability.
func DenyFeatureDisabled(capability Capability) Decision {
	return Deny(map[string]any{
		"error": fmt.Sprintf("feature disabled: %s", capability),
	})
}

// DenyTenantNotFound is the entitlement-layer denial for an unresolvable
// tenant. The entitlement gate is fail-closed.
func DenyTenantNotFound() Decision {
	return Deny(map[string]any{
		"error": "tenant id not found",
	})
}

// DenyNoSubscription is the denial for a tenant without a subscription
// record. Non-fatal and user-actionable.
func DenyNoSubscription(capability Capability) Decision {
	return Deny(map[string]any{
		"error":           "no subscription",
		"requiredFeature": capability.String(),
		"message":         "subscribe to a plan to use this feature",
	})
}

// DenySubscriptionNotActive is the denial for a subscription outside the
// active set; the payload reports the actual status.
func DenySubscriptionNotActive(capability Capability, status subscription.Status) Decision {
	return Deny(map[string]any{
		"error":           "subscription not active",
		"requiredFeature": capability.String(),
		"status":          status.String(),
	})
}

// DenyPlanInsufficient is the denial for a plan that does not grant the
// capability. upgradeTo is the minimum sufficient tier, null when no tier
// grants the capability.
func DenyPlanInsufficient(capability Capability, current subscription.PlanType, upgradeTo subscription.PlanType, upgradeKnown bool) Decision {
	payload := map[string]any{
		"error":             "feature not available on current plan",
		"requiredFeature":   capability.String(),
		"currentPlan":       current.String(),
		"currentPlanName":   current.DisplayName(),
		"upgradeTo":         nil,
		"upgradeToPlanName": nil,
		"message":           fmt.Sprintf("your current plan does not include %s", capability),
	}
	if upgradeKnown {
		payload["upgradeTo"] = upgradeTo.String()
		payload["upgradeToPlanName"] = upgradeTo.DisplayName()
		payload["message"] = fmt.Sprintf("upgrade to %s to use %s", upgradeTo.DisplayName(), capability)
	}
	return Deny(payload)
}
