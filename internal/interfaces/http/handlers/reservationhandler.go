package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tavolo/internal/application/reservation"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

type ReservationHandler struct {
	reservationService *reservation.Service
	logger             logger.Interface
}

func NewReservationHandler(reservationService *reservation.Service, logger logger.Interface) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		logger:             logger,
	}
}

// Create books a reservation at the restaurant in the path
func (h *ReservationHandler) Create(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, restaurantID) {
		return
	}

	var cmd reservation.CreateReservationCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	dto, err := h.reservationService.Create(c.Request.Context(), restaurantID, cmd)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

// List returns a page of the restaurant's reservations
func (h *ReservationHandler) List(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "restaurantId")
	if !ok {
		return
	}
	if !requireTenantAccess(c, restaurantID) {
		return
	}

	page, pageSize := parsePagination(c)
	dtos, total, err := h.reservationService.ListByRestaurant(c.Request.Context(), restaurantID, page, pageSize)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.OKResponse(c, listResponse(dtos, total, page, pageSize))
}

// Get returns one reservation addressed directly by id
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseUintParam(c, "reservationId")
	if !ok {
		return
	}

	dto, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	if !requireTenantAccess(c, dto.RestaurantID) {
		return
	}

	utils.OKResponse(c, dto)
}
