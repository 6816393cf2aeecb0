package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/domain/subscription"
)

type engineFixture struct {
	engine    *Engine
	toggles   *stubToggleStore
	subs      *stubSubscriptionStore
	directory *stubDirectory
}

func newEngineFixture() *engineFixture {
	toggles := &stubToggleStore{docs: map[uint][]byte{}}
	subs := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{}}
	directory := &stubDirectory{
		reservationTenants: map[uint]uint{},
		slugTenants:        map[string]uint{},
	}

	log := testLogger()
	engine := NewEngine(
		NewClassifier(DefaultRouteRules()),
		NewTenantResolver(directory, log),
		NewToggleGate(toggles, log),
		NewEntitlementGate(subs, NewEntitlementTable(), log),
		log,
	)

	return &engineFixture{engine: engine, toggles: toggles, subs: subs, directory: directory}
}

// Scenario E: a path with no matching classifier pattern passes both gates
// without any store read.
func TestEngine_UnmatchedPathAllowsUnconditionally(t *testing.T) {
	f := newEngineFixture()

	eval, err := f.engine.Evaluate(context.Background(), Request{
		Method: "GET",
		Path:   "/api/restaurants/42/settings/features",
		Params: map[string]string{"id": "42"},
	})

	require.NoError(t, err)
	assert.True(t, eval.Decision.Allowed)
	assert.Equal(t, CapabilityNone, eval.Capability)
	assert.Zero(t, f.toggles.calls)
	assert.Zero(t, f.subs.calls)
}

func TestEngine_ToggleDenialShortCircuits(t *testing.T) {
	f := newEngineFixture()
	// reservations defaults to false; subscription store must not be read.
	f.toggles.docs[42] = []byte(`{}`)

	eval, err := f.engine.Evaluate(context.Background(), Request{
		Method: "GET",
		Path:   "/api/restaurants/42/reservations",
		Params: map[string]string{"id": "42"},
	})

	require.NoError(t, err)
	require.False(t, eval.Decision.Allowed)
	assert.Equal(t, "feature disabled: reservations", eval.Decision.Payload["error"])
	assert.Zero(t, f.subs.calls, "entitlement gate must not run after a toggle denial")
}

func TestEngine_EntitlementDenialAfterToggleAllow(t *testing.T) {
	f := newEngineFixture()
	f.toggles.docs[42] = toggleJSON(t, map[string]any{"reservations": true})
	f.subs.subs[42] = mustSubscription(t, 42, subscription.PlanStarter, subscription.StatusActive)

	eval, err := f.engine.Evaluate(context.Background(), Request{
		Method: "GET",
		Path:   "/api/restaurants/42/reservations",
		Params: map[string]string{"id": "42"},
	})

	require.NoError(t, err)
	require.False(t, eval.Decision.Allowed)
	assert.Equal(t, "feature not available on current plan", eval.Decision.Payload["error"])
	assert.Equal(t, "professional", eval.Decision.Payload["upgradeTo"])
}

func TestEngine_BothGatesAllow(t *testing.T) {
	f := newEngineFixture()
	f.toggles.docs[42] = toggleJSON(t, map[string]any{"reservations": true})
	f.subs.subs[42] = mustSubscription(t, 42, subscription.PlanProfessional, subscription.StatusActive)

	eval, err := f.engine.Evaluate(context.Background(), Request{
		Method: "POST",
		Path:   "/api/restaurants/42/reservations",
		Params: map[string]string{"id": "42"},
		Principal: &Principal{
			UserID: 7, Role: RoleOwner, RestaurantID: 42,
		},
	})

	require.NoError(t, err)
	assert.True(t, eval.Decision.Allowed)
	assert.Equal(t, CapabilityReservations, eval.Capability)
	assert.Equal(t, uint(42), eval.TenantID)
}

// The asymmetry: an unresolvable tenant passes the toggle layer (fail-open)
// and is then denied by the entitlement layer (fail-closed).
func TestEngine_UnresolvedTenantHitsEntitlementDenial(t *testing.T) {
	f := newEngineFixture()

	eval, err := f.engine.Evaluate(context.Background(), Request{
		Method: "GET",
		Path:   "/api/reservations/999",
		Params: map[string]string{"reservationId": "999"},
	})

	require.NoError(t, err)
	require.False(t, eval.Decision.Allowed)
	assert.Equal(t, "tenant id not found", eval.Decision.Payload["error"])
	assert.Zero(t, f.toggles.calls, "toggle gate skips the store for unresolved tenants")
}

func TestEngine_PublicSlugResolution(t *testing.T) {
	f := newEngineFixture()
	f.directory.slugTenants["luigis-trattoria"] = 42
	f.toggles.docs[42] = toggleJSON(t, map[string]any{})
	f.subs.subs[42] = mustSubscription(t, 42, subscription.PlanStarter, subscription.StatusActive)

	eval, err := f.engine.Evaluate(context.Background(), Request{
		Method: "GET",
		Path:   "/api/public/luigis-trattoria/menu",
		Params: map[string]string{"slug": "luigis-trattoria"},
	})

	require.NoError(t, err)
	assert.True(t, eval.Decision.Allowed)
	assert.Equal(t, uint(42), eval.TenantID)
}

func TestEngine_ToggleStoreFailureSurfacesError(t *testing.T) {
	f := newEngineFixture()
	f.toggles.err = assert.AnError

	_, err := f.engine.Evaluate(context.Background(), Request{
		Method: "GET",
		Path:   "/api/restaurants/42/reservations",
		Params: map[string]string{"id": "42"},
	})

	require.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, f.subs.calls, "entitlement gate must not run after a toggle store failure")
}

func TestEngine_SuperAdminStillSubjectToToggles(t *testing.T) {
	f := newEngineFixture()
	f.toggles.docs[42] = toggleJSON(t, map[string]any{"menu": false})

	eval, err := f.engine.Evaluate(context.Background(), Request{
		Method: "GET",
		Path:   "/admin/restaurants/42/menu",
		Params: map[string]string{"id": "42"},
		Principal: &Principal{
			UserID: 1, Role: RoleSuperAdmin,
		},
	})

	require.NoError(t, err)
	require.False(t, eval.Decision.Allowed)
	assert.Equal(t, "feature disabled: menu", eval.Decision.Payload["error"])
}
