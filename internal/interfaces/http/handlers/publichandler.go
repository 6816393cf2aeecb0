package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tavolo/internal/application/reservation"
	"tavolo/internal/application/restaurant"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

// PublicHandler serves the anonymous storefront surface addressed by slug.
type PublicHandler struct {
	restaurantService  *restaurant.Service
	reservationService *reservation.Service
	logger             logger.Interface
}

func NewPublicHandler(restaurantService *restaurant.Service, reservationService *reservation.Service, logger logger.Interface) *PublicHandler {
	return &PublicHandler{
		restaurantService:  restaurantService,
		reservationService: reservationService,
		logger:             logger,
	}
}

// GetStorefront returns the public storefront view
func (h *PublicHandler) GetStorefront(c *gin.Context) {
	dto, err := h.restaurantService.GetStorefront(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, dto)
}

// GetMenu returns the public menu for a storefront
func (h *PublicHandler) GetMenu(c *gin.Context) {
	dto, err := h.restaurantService.GetStorefront(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, gin.H{"menu": dto.Menu})
}

// CreateReservation books a reservation through the public storefront
func (h *PublicHandler) CreateReservation(c *gin.Context) {
	host, err := h.restaurantService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	var cmd reservation.CreateReservationCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dto, err := h.reservationService.Create(c.Request.Context(), host.ID, cmd)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}
