package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavolo/internal/domain/access"
	"tavolo/internal/domain/subscription"
	"tavolo/internal/shared/constants"
	"tavolo/internal/shared/logger"
)

type fakeToggleStore struct {
	docs map[uint][]byte
	err  error
}

func (s *fakeToggleStore) LoadToggleDocument(_ context.Context, tenantID uint) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.docs[tenantID], nil
}

type fakeSubscriptionStore struct {
	subs map[uint]*subscription.Subscription
	err  error
}

func (s *fakeSubscriptionStore) LoadSubscription(_ context.Context, tenantID uint) (*subscription.Subscription, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.subs[tenantID], nil
}

type fakeDirectory struct{}

func (fakeDirectory) TenantIDByReservation(context.Context, uint) (uint, error) { return 0, nil }
func (fakeDirectory) TenantIDBySlug(context.Context, string) (uint, error)     { return 0, nil }

func newTestRouter(t *testing.T, toggles *fakeToggleStore, subs *fakeSubscriptionStore, principal *access.Principal) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewLogger()

	engine := access.NewEngine(
		access.NewClassifier(access.DefaultRouteRules()),
		access.NewTenantResolver(fakeDirectory{}, log),
		access.NewToggleGate(toggles, log),
		access.NewEntitlementGate(subs, access.NewEntitlementTable(), log),
		log,
	)

	r := gin.New()
	if principal != nil {
		r.Use(func(c *gin.Context) {
			c.Set(constants.ContextKeyPrincipal, principal)
		})
	}
	r.Use(NewAccessMiddleware(engine, log).Evaluate())

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"reached": true}) }
	r.GET("/api/restaurants/:restaurantId/reservations", ok)
	r.GET("/api/restaurants/:restaurantId/settings", ok)
	r.GET("/api/restaurants/:restaurantId/menu", ok)
	return r
}

func activeSub(t *testing.T, tenantID uint, plan subscription.PlanType) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(tenantID, plan, subscription.StatusActive)
	require.NoError(t, err)
	return sub
}

func TestAccessMiddlewareDeniesDisabledFeature(t *testing.T) {
	toggles := &fakeToggleStore{docs: map[uint][]byte{
		7: []byte(`{"reservations":false}`),
	}}
	subs := &fakeSubscriptionStore{subs: map[uint]*subscription.Subscription{
		7: activeSub(t, 7, subscription.PlanProfessional),
	}}
	r := newTestRouter(t, toggles, subs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/reservations", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "feature disabled: reservations", body["error"])
}

func TestAccessMiddlewareDeniesInsufficientPlan(t *testing.T) {
	toggles := &fakeToggleStore{docs: map[uint][]byte{
		7: []byte(`{"reservations":true}`),
	}}
	subs := &fakeSubscriptionStore{subs: map[uint]*subscription.Subscription{
		7: activeSub(t, 7, subscription.PlanStarter),
	}}
	r := newTestRouter(t, toggles, subs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/reservations", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "feature not available on current plan", body["error"])
	assert.Equal(t, "reservations", body["requiredFeature"])
	assert.Equal(t, "starter", body["currentPlan"])
	assert.Equal(t, "professional", body["upgradeTo"])
}

func TestAccessMiddlewareAllowsGrantedCapability(t *testing.T) {
	toggles := &fakeToggleStore{docs: map[uint][]byte{}}
	subs := &fakeSubscriptionStore{subs: map[uint]*subscription.Subscription{
		7: activeSub(t, 7, subscription.PlanStarter),
	}}
	r := newTestRouter(t, toggles, subs, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/menu", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessMiddlewareUnrestrictedRouteSkipsStores(t *testing.T) {
	toggles := &fakeToggleStore{err: assert.AnError}
	subs := &fakeSubscriptionStore{err: assert.AnError}
	r := newTestRouter(t, toggles, subs, nil)

	// settings is not a feature segment, so neither store may be consulted
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/settings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessMiddlewareSuperAdminBypassesEntitlementOnly(t *testing.T) {
	admin := &access.Principal{UserID: 1, Role: access.RoleSuperAdmin}

	t.Run("no subscription still allowed", func(t *testing.T) {
		toggles := &fakeToggleStore{docs: map[uint][]byte{}}
		subs := &fakeSubscriptionStore{subs: map[uint]*subscription.Subscription{}}
		r := newTestRouter(t, toggles, subs, admin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/reservations", nil)
		r.ServeHTTP(w, req)

		// reservations defaults to disabled, so the toggle layer still denies
		require.Equal(t, http.StatusForbidden, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "feature disabled: reservations", body["error"])
	})

	t.Run("toggle enabled allows without subscription", func(t *testing.T) {
		toggles := &fakeToggleStore{docs: map[uint][]byte{
			7: []byte(`{"reservations":true}`),
		}}
		subs := &fakeSubscriptionStore{subs: map[uint]*subscription.Subscription{}}
		r := newTestRouter(t, toggles, subs, admin)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/reservations", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAccessMiddlewareStoreFailureReturns500(t *testing.T) {
	t.Run("subscription store", func(t *testing.T) {
		toggles := &fakeToggleStore{docs: map[uint][]byte{
			7: []byte(`{"reservations":true}`),
		}}
		subs := &fakeSubscriptionStore{err: assert.AnError}
		r := newTestRouter(t, toggles, subs, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/reservations", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	// An outage on the toggle store must not decide against defaults: that
	// could allow a capability the tenant explicitly disabled.
	t.Run("toggle store", func(t *testing.T) {
		toggles := &fakeToggleStore{err: assert.AnError}
		subs := &fakeSubscriptionStore{subs: map[uint]*subscription.Subscription{
			7: activeSub(t, 7, subscription.PlanProfessional),
		}}
		r := newTestRouter(t, toggles, subs, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/menu", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
