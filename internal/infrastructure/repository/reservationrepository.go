package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tavolo/internal/domain/restaurant"
	"tavolo/internal/infrastructure/persistence/models"
	"tavolo/internal/shared/logger"
)

type ReservationRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewReservationRepository(db *gorm.DB, logger logger.Interface) *ReservationRepositoryImpl {
	return &ReservationRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, entity *restaurant.Reservation) error {
	model := reservationToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create reservation", "restaurant_id", model.RestaurantID, "error", err)
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set reservation ID: %w", err)
	}

	return nil
}

func (r *ReservationRepositoryImpl) GetByID(ctx context.Context, id uint) (*restaurant.Reservation, error) {
	var model models.ReservationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get reservation by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservationToEntity(&model)
}

func (r *ReservationRepositoryImpl) ListByRestaurant(ctx context.Context, restaurantID uint, page, pageSize int) ([]*restaurant.Reservation, int64, error) {
	var (
		modelList []models.ReservationModel
		total     int64
	)

	query := r.db.WithContext(ctx).Model(&models.ReservationModel{}).
		Where("restaurant_id = ?", restaurantID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := query.
		Order("reserved_for").
		Offset(offset).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list reservations", "restaurant_id", restaurantID, "error", err)
		return nil, 0, fmt.Errorf("failed to list reservations: %w", err)
	}

	entities := make([]*restaurant.Reservation, 0, len(modelList))
	for i := range modelList {
		entity, err := reservationToEntity(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

// TenantIDByReservation resolves a reservation id to its owning tenant id,
// zero when the reservation does not exist.
func (r *ReservationRepositoryImpl) TenantIDByReservation(ctx context.Context, reservationID uint) (uint, error) {
	var model models.ReservationModel

	if err := r.db.WithContext(ctx).
		Select("restaurant_id").
		First(&model, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to resolve reservation owner: %w", err)
	}

	return model.RestaurantID, nil
}

func reservationToModel(entity *restaurant.Reservation) *models.ReservationModel {
	return &models.ReservationModel{
		RestaurantID:     entity.RestaurantID(),
		ConfirmationCode: entity.ConfirmationCode(),
		GuestName:        entity.GuestName(),
		GuestEmail:       entity.GuestEmail(),
		PartySize:        entity.PartySize(),
		ReservedFor:      entity.ReservedFor(),
		Status:           string(entity.Status()),
	}
}

func reservationToEntity(model *models.ReservationModel) (*restaurant.Reservation, error) {
	entity, err := restaurant.ReconstructReservation(
		model.ID,
		model.RestaurantID,
		model.ConfirmationCode,
		model.GuestName,
		model.GuestEmail,
		model.PartySize,
		model.ReservedFor,
		restaurant.ReservationStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map reservation: %w", err)
	}
	return entity, nil
}
