package access

import (
	"context"
	"strconv"
	"strings"

	"tavolo/internal/shared/logger"
)

// TenantResolver extracts the tenant id relevant to a classified request.
// Resolution order, first success wins:
//  1. explicit restaurantId route parameter
//  2. generic id route parameter, only under a restaurant-collection path
//  3. capability-specific secondary lookup (reservation id, public slug)
//  4. the authenticated principal's bound tenant id
//
// An unresolved result (zero) is a valid, expected outcome, e.g. for a global
// admin endpoint. It is not an error.
type TenantResolver struct {
	directory TenantDirectory
	logger    logger.Interface
}

// NewTenantResolver creates a tenant resolver backed by the given directory
func NewTenantResolver(directory TenantDirectory, logger logger.Interface) *TenantResolver {
	return &TenantResolver{
		directory: directory,
		logger:    logger,
	}
}

// Resolve returns the tenant id for the request, or zero when unresolved.
func (r *TenantResolver) Resolve(ctx context.Context, capability Capability, req Request) uint {
	if id := parseID(req.Param("restaurantId")); id != 0 {
		return id
	}

	if underRestaurantCollection(req.Path) {
		if id := parseID(req.Param("id")); id != 0 {
			return id
		}
	}

	if id := r.secondaryLookup(ctx, capability, req); id != 0 {
		return id
	}

	return req.Principal.TenantID()
}

// secondaryLookup handles the few capability-specific cases where the route
// references the tenant indirectly.
func (r *TenantResolver) secondaryLookup(ctx context.Context, capability Capability, req Request) uint {
	if capability == CapabilityReservations {
		if reservationID := parseID(req.Param("reservationId")); reservationID != 0 {
			tenantID, err := r.directory.TenantIDByReservation(ctx, reservationID)
			if err != nil {
				r.logger.Warnw("reservation tenant lookup failed",
					"reservation_id", reservationID, "error", err)
				return 0
			}
			return tenantID
		}
	}

	if strings.HasPrefix(req.Path, "/api/public/") {
		if slug := req.Param("slug"); slug != "" {
			tenantID, err := r.directory.TenantIDBySlug(ctx, slug)
			if err != nil {
				r.logger.Warnw("slug tenant lookup failed", "slug", slug, "error", err)
				return 0
			}
			return tenantID
		}
	}

	return 0
}

func underRestaurantCollection(path string) bool {
	return strings.HasPrefix(path, "/api/restaurants/") ||
		strings.HasPrefix(path, "/admin/restaurants/")
}

func parseID(raw string) uint {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
