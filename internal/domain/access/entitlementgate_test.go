package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/domain/subscription"
)

func newEntitlementGate(store *stubSubscriptionStore) *EntitlementGate {
	return NewEntitlementGate(store, NewEntitlementTable(), testLogger())
}

func TestEntitlementGate_ActiveSubscriptionWithGrantAllows(t *testing.T) {
	store := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{
		42: mustSubscription(t, 42, subscription.PlanProfessional, subscription.StatusActive),
	}}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityReservations, 42, &Principal{UserID: 1, Role: RoleOwner, RestaurantID: 42})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

// Scenario B: no subscription record denies regardless of anything else.
func TestEntitlementGate_MissingSubscriptionDenies(t *testing.T) {
	store := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{}}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityMenu, 42, &Principal{UserID: 1, Role: RoleOwner})

	require.NoError(t, err)
	require.False(t, decision.Allowed)
	assert.Equal(t, "no subscription", decision.Payload["error"])
	assert.Equal(t, "menu", decision.Payload["requiredFeature"])
}

// Scenario C: starter plan lacks reservations; upgrade target is the minimum
// sufficient tier.
func TestEntitlementGate_PlanInsufficiencySuggestsMinimumUpgrade(t *testing.T) {
	store := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{
		42: mustSubscription(t, 42, subscription.PlanStarter, subscription.StatusActive),
	}}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityReservations, 42, &Principal{UserID: 1, Role: RoleOwner})

	require.NoError(t, err)
	require.False(t, decision.Allowed)
	assert.Equal(t, "feature not available on current plan", decision.Payload["error"])
	assert.Equal(t, "starter", decision.Payload["currentPlan"])
	assert.Equal(t, "Starter", decision.Payload["currentPlanName"])
	assert.Equal(t, "professional", decision.Payload["upgradeTo"])
	assert.Equal(t, "Professional", decision.Payload["upgradeToPlanName"])
}

func TestEntitlementGate_NoPlanGrantsCapability(t *testing.T) {
	store := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{
		42: mustSubscription(t, 42, subscription.PlanEnterprise, subscription.StatusActive),
	}}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityReviews, 42, &Principal{UserID: 1, Role: RoleOwner})

	require.NoError(t, err)
	require.False(t, decision.Allowed)
	assert.Nil(t, decision.Payload["upgradeTo"])
	assert.Nil(t, decision.Payload["upgradeToPlanName"])
}

// Scenario D: an inactive status denies irrespective of plan; payload reports
// the actual status.
func TestEntitlementGate_InactiveStatusDenies(t *testing.T) {
	tests := []struct {
		status subscription.Status
	}{
		{subscription.StatusCanceled},
		{subscription.StatusPastDue},
		{subscription.StatusExpired},
	}

	for _, tc := range tests {
		t.Run(tc.status.String(), func(t *testing.T) {
			store := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{
				42: mustSubscription(t, 42, subscription.PlanEnterprise, tc.status),
			}}
			gate := newEntitlementGate(store)

			decision, err := gate.Evaluate(context.Background(), CapabilityMenu, 42, &Principal{UserID: 1, Role: RoleOwner})

			require.NoError(t, err)
			require.False(t, decision.Allowed)
			assert.Equal(t, "subscription not active", decision.Payload["error"])
			assert.Equal(t, tc.status.String(), decision.Payload["status"])
		})
	}
}

func TestEntitlementGate_TrialingCountsAsActive(t *testing.T) {
	store := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{
		42: mustSubscription(t, 42, subscription.PlanStarter, subscription.StatusTrialing),
	}}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityMenu, 42, &Principal{UserID: 1, Role: RoleOwner})

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

// Super admin bypasses the entitlement layer entirely, even with no
// subscription record and no resolvable tenant.
func TestEntitlementGate_SuperAdminAlwaysAllowed(t *testing.T) {
	store := &stubSubscriptionStore{subs: map[uint]*subscription.Subscription{}}
	gate := newEntitlementGate(store)

	admin := &Principal{UserID: 9, Role: RoleSuperAdmin}

	decision, err := gate.Evaluate(context.Background(), CapabilityGiftCards, 42, admin)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	decision, err = gate.Evaluate(context.Background(), CapabilityGiftCards, 0, admin)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	assert.Zero(t, store.calls, "super admin must not trigger subscription reads")
}

// Fail-closed: the inverse of the toggle gate.
func TestEntitlementGate_UnresolvedTenantDenies(t *testing.T) {
	store := &stubSubscriptionStore{}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityMenu, 0, &Principal{UserID: 1, Role: RoleOwner})

	require.NoError(t, err)
	require.False(t, decision.Allowed)
	assert.Equal(t, "tenant id not found", decision.Payload["error"])
	assert.Zero(t, store.calls)
}

func TestEntitlementGate_UnrestrictedAllows(t *testing.T) {
	store := &stubSubscriptionStore{}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityNone, 0, nil)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Zero(t, store.calls)
}

func TestEntitlementGate_NilPrincipalIsNotSuperAdmin(t *testing.T) {
	store := &stubSubscriptionStore{}
	gate := newEntitlementGate(store)

	decision, err := gate.Evaluate(context.Background(), CapabilityMenu, 0, nil)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}

func TestEntitlementGate_StoreFailureSurfacesError(t *testing.T) {
	store := &stubSubscriptionStore{err: errors.New("connection refused")}
	gate := newEntitlementGate(store)

	_, err := gate.Evaluate(context.Background(), CapabilityMenu, 42, &Principal{UserID: 1, Role: RoleOwner})

	assert.Error(t, err)
}
