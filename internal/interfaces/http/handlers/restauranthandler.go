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

type RestaurantHandler struct {
	restaurantService *restaurant.Service
	logger            logger.Interface
}

func NewRestaurantHandler(restaurantService *restaurant.Service, logger logger.Interface) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
		logger:            logger,
	}
}

// Create registers a new restaurant. Super admin only.
func (h *RestaurantHandler) Create(c *gin.Context) {
	var cmd restaurant.CreateRestaurantCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dto, err := h.restaurantService.Create(c.Request.Context(), cmd)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

// List returns a page of restaurants. Super admin only.
func (h *RestaurantHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)

	dtos, total, err := h.restaurantService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, listResponse(dtos, total, page, pageSize))
}

// Get returns one restaurant
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, id) {
		return
	}

	dto, err := h.restaurantService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

// UpdateProfile updates the storefront profile fields
func (h *RestaurantHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, id) {
		return
	}

	var cmd restaurant.UpdateProfileCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dto, err := h.restaurantService.UpdateProfile(c.Request.Context(), id, cmd)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

// GetMenu returns the restaurant's menu document
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	id, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, id) {
		return
	}

	dto, err := h.restaurantService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"menu": dto.Menu})
}

// UpdateMenu replaces the restaurant's menu document. The body is the raw
// menu JSON, stored as provided.
func (h *RestaurantHandler) UpdateMenu(c *gin.Context) {
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

	if err := h.restaurantService.UpdateMenu(c.Request.Context(), id, json.RawMessage(body)); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"menu": json.RawMessage(body)})
}
