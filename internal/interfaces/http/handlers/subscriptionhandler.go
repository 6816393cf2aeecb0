package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tavolo/internal/application/subscription"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

type SubscriptionHandler struct {
	subscriptionService *subscription.Service
	logger              logger.Interface
}

func NewSubscriptionHandler(subscriptionService *subscription.Service, logger logger.Interface) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionService: subscriptionService,
		logger:              logger,
	}
}

// Get returns the tenant's subscription
func (h *SubscriptionHandler) Get(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, restaurantID) {
		return
	}

	dto, err := h.subscriptionService.Get(c.Request.Context(), restaurantID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

// Set replaces the tenant's subscription record. Super admin only; the
// billing collaborator calls this through the admin surface.
func (h *SubscriptionHandler) Set(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}

	var cmd subscription.SetSubscriptionCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dto, err := h.subscriptionService.Set(c.Request.Context(), restaurantID, cmd)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}
