package access

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultRouteRules())
}

func TestClassify_TenantScopedRoutes(t *testing.T) {
	classifier := newTestClassifier()

	tests := []struct {
		path string
		want Capability
	}{
		{"/api/restaurants/42/menu", CapabilityMenu},
		{"/api/restaurants/42/menu/items/7", CapabilityMenu},
		{"/api/restaurants/42/orders", CapabilityOrders},
		{"/api/restaurants/42/online-ordering", CapabilityOnlineOrdering},
		{"/api/restaurants/42/reservations", CapabilityReservations},
		{"/api/restaurants/42/delivery/zones", CapabilityDelivery},
		{"/api/restaurants/42/loyalty", CapabilityLoyalty},
		{"/api/restaurants/42/gift-cards", CapabilityGiftCards},
		{"/api/restaurants/42/catering/quotes", CapabilityCatering},
		{"/api/restaurants/42/takeaway", CapabilityTakeaway},
		{"/api/restaurants/42/social-media", CapabilitySocialMedia},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.Classify(http.MethodGet, tc.path))
		})
	}
}

// Classification is path-shape driven: public and admin routes classify
// identically to tenant-scoped routes.
func TestClassify_PublicAndAdminRoutes(t *testing.T) {
	classifier := newTestClassifier()

	tests := []struct {
		path string
		want Capability
	}{
		{"/api/public/luigis-trattoria/menu", CapabilityMenu},
		{"/api/public/luigis-trattoria/reservations", CapabilityReservations},
		{"/api/public/luigis-trattoria/orders", CapabilityOrders},
		{"/admin/restaurants/42/reservations", CapabilityReservations},
		{"/admin/restaurants/42/gift-cards", CapabilityGiftCards},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.Classify(http.MethodPost, tc.path))
		})
	}
}

func TestClassify_ReservationByIDPrecedesScopedRule(t *testing.T) {
	classifier := newTestClassifier()

	assert.Equal(t, CapabilityReservations,
		classifier.Classify(http.MethodGet, "/api/reservations/1001"))
	assert.Equal(t, CapabilityReservations,
		classifier.Classify(http.MethodDelete, "/api/reservations/1001/cancel"))
}

func TestClassify_OptionsAlwaysUnrestricted(t *testing.T) {
	classifier := newTestClassifier()

	// Pre-flight bypass holds even on otherwise restricted paths.
	assert.Equal(t, CapabilityNone,
		classifier.Classify(http.MethodOptions, "/api/restaurants/42/reservations"))
	assert.Equal(t, CapabilityNone,
		classifier.Classify(http.MethodOptions, "/api/public/luigis/orders"))
}

func TestClassify_UnmatchedPathsAreUnrestricted(t *testing.T) {
	classifier := newTestClassifier()

	tests := []string{
		"/health",
		"/api/plans",
		"/api/restaurants",
		"/api/restaurants/42",
		"/api/restaurants/42/settings/features",
		"/api/public/luigis-trattoria/info",
		"/admin/restaurants",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, CapabilityNone, classifier.Classify(http.MethodGet, path))
		})
	}
}

// The reserved reviews capability has no route pattern.
func TestClassify_ReviewsIsReserved(t *testing.T) {
	for _, rule := range DefaultRouteRules() {
		require.NotEqual(t, CapabilityReviews, rule.Capability)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// Overlapping rules resolve by table order, not specificity.
	rules := []RouteRule{
		featureRoute("orders", CapabilityOrders),
		featureRoute("orders", CapabilityMenu),
	}
	classifier := NewClassifier(rules)

	assert.Equal(t, CapabilityOrders,
		classifier.Classify(http.MethodGet, "/api/restaurants/1/orders"))
}
