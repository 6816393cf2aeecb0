package access

import "encoding/json"

// ToggleDocument is the per-tenant mapping of capability to enabled state.
// Stored documents are loosely typed: unknown keys are ignored and missing
// keys fall back to the defaults.
type ToggleDocument map[Capability]bool

// toggleDefaults is the process-wide default enabled state per capability.
// Immutable after init; safe for unsynchronized concurrent reads.
var toggleDefaults = ToggleDocument{
	CapabilityMenu:           true,
	CapabilityOrders:         true,
	CapabilityReservations:   false,
	CapabilityDelivery:       false,
	CapabilityLoyalty:        false,
	CapabilityGiftCards:      false,
	CapabilityCatering:       false,
	CapabilityReviews:        false,
	CapabilityOnlineOrdering: true,
	CapabilityTakeaway:       true,
	CapabilitySocialMedia:    false,
}

// DefaultToggles returns a copy of the default toggle document.
func DefaultToggles() ToggleDocument {
	defaults := make(ToggleDocument, len(toggleDefaults))
	for capability, enabled := range toggleDefaults {
		defaults[capability] = enabled
	}
	return defaults
}

// CoerceToggleDocument converts a raw stored document into a ToggleDocument.
// The contract is no-throw: malformed or non-object input degrades to an
// empty document (defaults only), unknown keys and non-boolean values are
// dropped. A nil or empty input is the valid "no overrides" state.
func CoerceToggleDocument(raw []byte) ToggleDocument {
	doc := ToggleDocument{}
	if len(raw) == 0 {
		return doc
	}

	var loose map[string]any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return doc
	}

	for key, value := range loose {
		capability := Capability(key)
		if !capability.IsValid() {
			continue
		}
		enabled, ok := value.(bool)
		if !ok {
			continue
		}
		doc[capability] = enabled
	}
	return doc
}

// ResolveToggles merges tenant overrides over the defaults and applies the
// orders cascade as an explicit post-merge pass: when orders resolves to
// false, onlineOrdering, delivery and takeaway are forced to false regardless
// of their stored values.
func ResolveToggles(overrides ToggleDocument) ToggleDocument {
	resolved := DefaultToggles()
	for capability, enabled := range overrides {
		if !capability.IsValid() {
			continue
		}
		resolved[capability] = enabled
	}

	if !resolved[CapabilityOrders] {
		resolved[CapabilityOnlineOrdering] = false
		resolved[CapabilityDelivery] = false
		resolved[CapabilityTakeaway] = false
	}

	return resolved
}
