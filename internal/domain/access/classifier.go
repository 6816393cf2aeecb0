package access

import (
	"net/http"
	"regexp"
)

// RouteRule binds a path pattern to the capability it exercises.
type RouteRule struct {
	Pattern    *regexp.Regexp
	Capability Capability
}

// Classifier maps an HTTP method and path to a capability. It evaluates an
// ordered list of (pattern, capability) pairs top to bottom; the first match
// wins. Patterns are not required to be mutually exclusive, so the order of
// the table is part of the contract.
type Classifier struct {
	rules []RouteRule
}

// NewClassifier builds a classifier from an explicit rule table. The table is
// constructed once at startup; there is no runtime registration.
func NewClassifier(rules []RouteRule) *Classifier {
	return &Classifier{rules: rules}
}

// featureRoute matches a feature segment under every route shape the product
// serves: tenant-scoped (/api/restaurants/{id}/...), public storefront
// (/api/public/{slug}/...) and the admin panel (/admin/restaurants/{id}/...).
// Classification is path-shape driven and does not depend on the audience.
func featureRoute(segment string, capability Capability) RouteRule {
	return RouteRule{
		Pattern:    regexp.MustCompile(`^/(?:api|admin)/(?:restaurants/[^/]+|public/[^/]+)/` + segment + `(?:/.*)?$`),
		Capability: capability,
	}
}

// DefaultRouteRules returns the route classification table. Ordering is
// binding: the reservation-by-id rule must precede the scoped reservation
// rule, and online-ordering must precede orders so the longer segment is not
// swallowed by a broader pattern added later.
func DefaultRouteRules() []RouteRule {
	return []RouteRule{
		{
			Pattern:    regexp.MustCompile(`^/(?:api|admin)/reservations/[^/]+(?:/.*)?$`),
			Capability: CapabilityReservations,
		},
		featureRoute("online-ordering", CapabilityOnlineOrdering),
		featureRoute("orders", CapabilityOrders),
		featureRoute("reservations", CapabilityReservations),
		featureRoute("menu", CapabilityMenu),
		featureRoute("delivery", CapabilityDelivery),
		featureRoute("loyalty", CapabilityLoyalty),
		featureRoute("gift-cards", CapabilityGiftCards),
		featureRoute("catering", CapabilityCatering),
		featureRoute("takeaway", CapabilityTakeaway),
		featureRoute("social-media", CapabilitySocialMedia),
	}
}

// Classify returns the capability a request exercises, or CapabilityNone when
// no pattern matches. OPTIONS requests are always unrestricted so CORS
// pre-flights never hit the gates.
func (c *Classifier) Classify(method, path string) Capability {
	if method == http.MethodOptions {
		return CapabilityNone
	}

	for _, rule := range c.rules {
		if rule.Pattern.MatchString(path) {
			return rule.Capability
		}
	}
	return CapabilityNone
}
