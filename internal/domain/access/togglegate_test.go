package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToggleGate(store *stubToggleStore) *ToggleGate {
	return NewToggleGate(store, testLogger())
}

func evaluateToggle(t *testing.T, gate *ToggleGate, capability Capability, tenantID uint) Decision {
	t.Helper()
	decision, err := gate.Evaluate(context.Background(), capability, tenantID)
	require.NoError(t, err)
	return decision
}

// Scenario A: empty toggle document, capability defaults to false.
func TestToggleGate_EmptyDocumentUsesDefaults(t *testing.T) {
	store := &stubToggleStore{docs: map[uint][]byte{42: []byte(`{}`)}}
	gate := newToggleGate(store)

	decision := evaluateToggle(t, gate, CapabilityReservations, 42)

	require.False(t, decision.Allowed)
	assert.Equal(t, "feature disabled: reservations", decision.Payload["error"])
}

func TestToggleGate_AbsentDocumentTreatedAsEmpty(t *testing.T) {
	store := &stubToggleStore{docs: map[uint][]byte{}}
	gate := newToggleGate(store)

	// menu defaults to true, reservations to false
	assert.True(t, evaluateToggle(t, gate, CapabilityMenu, 42).Allowed)
	assert.False(t, evaluateToggle(t, gate, CapabilityReservations, 42).Allowed)
}

func TestToggleGate_ExplicitOverrides(t *testing.T) {
	store := &stubToggleStore{docs: map[uint][]byte{
		42: toggleJSON(t, map[string]any{"reservations": true, "menu": false}),
	}}
	gate := newToggleGate(store)

	assert.True(t, evaluateToggle(t, gate, CapabilityReservations, 42).Allowed)

	decision := evaluateToggle(t, gate, CapabilityMenu, 42)
	require.False(t, decision.Allowed)
	assert.Equal(t, "feature disabled: menu", decision.Payload["error"])
}

func TestToggleGate_OrdersCascadeDeniesDependents(t *testing.T) {
	store := &stubToggleStore{docs: map[uint][]byte{
		42: toggleJSON(t, map[string]any{
			"orders":   false,
			"delivery": true,
			"takeaway": true,
		}),
	}}
	gate := newToggleGate(store)

	for _, capability := range []Capability{CapabilityOnlineOrdering, CapabilityDelivery, CapabilityTakeaway} {
		decision := evaluateToggle(t, gate, capability, 42)
		assert.False(t, decision.Allowed, "%s must be forced off by orders=false", capability)
	}
}

func TestToggleGate_UnrestrictedAllows(t *testing.T) {
	store := &stubToggleStore{}
	gate := newToggleGate(store)

	decision := evaluateToggle(t, gate, CapabilityNone, 42)

	assert.True(t, decision.Allowed)
	assert.Zero(t, store.calls, "unrestricted requests must not read the store")
}

// Fail-open: the toggle gate allows when the tenant cannot be resolved.
func TestToggleGate_UnresolvedTenantAllows(t *testing.T) {
	store := &stubToggleStore{}
	gate := newToggleGate(store)

	decision := evaluateToggle(t, gate, CapabilityReservations, 0)

	assert.True(t, decision.Allowed)
	assert.Zero(t, store.calls)
}

// A store outage must not decide against bare defaults: evaluating defaults
// could allow a capability the tenant explicitly disabled.
func TestToggleGate_StoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	store := &stubToggleStore{err: storeErr}
	gate := newToggleGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityMenu, 42)

	require.ErrorIs(t, err, storeErr)
	assert.False(t, decision.Allowed)
}

func TestToggleGate_MalformedDocumentNeverErrors(t *testing.T) {
	store := &stubToggleStore{docs: map[uint][]byte{
		42: []byte(`{"menu": fal`),
	}}
	gate := newToggleGate(store)

	// Malformed input degrades to no overrides: defaults only.
	assert.True(t, evaluateToggle(t, gate, CapabilityMenu, 42).Allowed)
	assert.False(t, evaluateToggle(t, gate, CapabilityCatering, 42).Allowed)
}
