package handlers

import (
	"github.com/gin-gonic/gin"

	"tavolo/internal/application/plan"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

type PlanHandler struct {
	planService *plan.Service
	logger      logger.Interface
}

func NewPlanHandler(planService *plan.Service, logger logger.Interface) *PlanHandler {
	return &PlanHandler{
		planService: planService,
		logger:      logger,
	}
}

// List returns the plan catalog
func (h *PlanHandler) List(c *gin.Context) {
	utils.OKResponse(c, h.planService.ListPlans())
}

// MinimumPlanFor returns the cheapest plan granting a capability
func (h *PlanHandler) MinimumPlanFor(c *gin.Context) {
	hint, err := h.planService.MinimumPlanFor(c.Param("capability"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, hint)
}

// Entitlements returns the tenant's combined entitlement view
func (h *PlanHandler) Entitlements(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, restaurantID) {
		return
	}

	view, err := h.planService.GetEntitlements(c.Request.Context(), restaurantID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, view)
}
