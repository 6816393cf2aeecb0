// Package reservation implements the guest booking use cases.
package reservation

import (
	"context"
	"fmt"
	"time"

	"tavolo/internal/domain/restaurant"
	apperrors "tavolo/internal/shared/errors"
	"tavolo/internal/shared/logger"
)

// ReservationDTO is the outward-facing reservation representation
type ReservationDTO struct {
	ID               uint      `json:"id"`
	RestaurantID     uint      `json:"restaurantId"`
	ConfirmationCode string    `json:"confirmationCode"`
	GuestName        string    `json:"guestName"`
	GuestEmail       string    `json:"guestEmail,omitempty"`
	PartySize        int       `json:"partySize"`
	ReservedFor      time.Time `json:"reservedFor"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CreateReservationCommand carries the input for creating a reservation
type CreateReservationCommand struct {
	GuestName   string    `json:"guestName" binding:"required,max=100"`
	GuestEmail  string    `json:"guestEmail" binding:"omitempty,email"`
	PartySize   int       `json:"partySize" binding:"required,min=1"`
	ReservedFor time.Time `json:"reservedFor" binding:"required"`
}

// Service handles reservation use cases
type Service struct {
	reservations restaurant.ReservationRepository
	restaurants  restaurant.Repository
	logger       logger.Interface
}

// NewService creates a new reservation service
func NewService(reservations restaurant.ReservationRepository, restaurants restaurant.Repository, logger logger.Interface) *Service {
	return &Service{
		reservations: reservations,
		restaurants:  restaurants,
		logger:       logger,
	}
}

// Create books a reservation at the given restaurant
func (s *Service) Create(ctx context.Context, restaurantID uint, cmd CreateReservationCommand) (*ReservationDTO, error) {
	host, err := s.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if host == nil || !host.IsActive() {
		return nil, apperrors.NewNotFoundError("restaurant not found", fmt.Sprintf("id=%d", restaurantID))
	}

	entity, err := restaurant.NewReservation(restaurantID, cmd.GuestName, cmd.GuestEmail, cmd.PartySize, cmd.ReservedFor)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.reservations.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.logger.Infow("reservation created", "id", entity.ID(), "restaurant_id", restaurantID)
	return toReservationDTO(entity), nil
}

// GetByID returns a reservation by internal id
func (s *Service) GetByID(ctx context.Context, id uint) (*ReservationDTO, error) {
	entity, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("reservation not found", fmt.Sprintf("id=%d", id))
	}
	return toReservationDTO(entity), nil
}

// ListByRestaurant returns a page of a restaurant's reservations
func (s *Service) ListByRestaurant(ctx context.Context, restaurantID uint, page, pageSize int) ([]*ReservationDTO, int64, error) {
	entities, total, err := s.reservations.ListByRestaurant(ctx, restaurantID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}

	dtos := make([]*ReservationDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, toReservationDTO(entity))
	}
	return dtos, total, nil
}

func toReservationDTO(entity *restaurant.Reservation) *ReservationDTO {
	return &ReservationDTO{
		ID:               entity.ID(),
		RestaurantID:     entity.RestaurantID(),
		ConfirmationCode: entity.ConfirmationCode(),
		GuestName:        entity.GuestName(),
		GuestEmail:       entity.GuestEmail(),
		PartySize:        entity.PartySize(),
		ReservedFor:      entity.ReservedFor(),
		Status:           string(entity.Status()),
		CreatedAt:        entity.CreatedAt(),
	}
}
