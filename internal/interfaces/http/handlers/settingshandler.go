package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tavolo/internal/application/restaurant"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

// SettingsHandler serves the feature toggle settings. Writes accept any JSON
// object; unknown keys and non-boolean values are dropped during coercion
// rather than rejected.
type SettingsHandler struct {
	restaurantService *restaurant.Service
	logger            logger.Interface
}

func NewSettingsHandler(restaurantService *restaurant.Service, logger logger.Interface) *SettingsHandler {
	return &SettingsHandler{
		restaurantService: restaurantService,
		logger:            logger,
	}
}

// Get returns the stored overrides and the resolved effective state
func (h *SettingsHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, id) {
		return
	}

	dto, err := h.restaurantService.GetSettings(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

// Update replaces the stored toggle document
func (h *SettingsHandler) Update(c *gin.Context) {
	id, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, id) {
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
		return
	}

	dto, err := h.restaurantService.UpdateSettings(c.Request.Context(), id, json.RawMessage(body))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}
