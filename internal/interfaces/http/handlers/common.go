// Package handlers contains the gin HTTP handlers for the storefront and
// admin APIs. Handlers stay thin: bind, authorize, delegate, respond.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tavolo/internal/interfaces/http/middleware"
	"tavolo/internal/shared/constants"
	"tavolo/internal/shared/utils"
)

// parseUintParam parses a numeric route parameter, responding 400 on failure
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads page/page_size query parameters with bounded defaults
func parsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

// requireTenantAccess enforces that the caller may act on the given
// restaurant: super admins always, owners and staff only on their own tenant.
func requireTenantAccess(c *gin.Context, restaurantID uint) bool {
	principal := middleware.PrincipalFromContext(c)
	if principal == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
		c.Abort()
		return false
	}
	if principal.IsSuperAdmin() || principal.RestaurantID == restaurantID {
		return true
	}

	utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
	c.Abort()
	return false
}

func listResponse(items interface{}, total int64, page, pageSize int) utils.ListResponse {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	return utils.ListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
