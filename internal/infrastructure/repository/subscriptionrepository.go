package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tavolo/internal/domain/subscription"
	"tavolo/internal/infrastructure/persistence/models"
	"tavolo/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) *SubscriptionRepositoryImpl {
	return &SubscriptionRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) GetByRestaurantID(ctx context.Context, restaurantID uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "restaurant_id", restaurantID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return subscriptionToEntity(&model)
}

// Upsert writes the tenant's single subscription record, replacing plan and
// status when one already exists. Used by the billing sync and the seeder.
func (r *SubscriptionRepositoryImpl) Upsert(ctx context.Context, entity *subscription.Subscription) error {
	model := &models.SubscriptionModel{
		RestaurantID: entity.RestaurantID(),
		PlanType:     string(entity.PlanType()),
		Status:       string(entity.Status()),
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"plan_type", "status", "updated_at"}),
		}).
		Create(model).Error; err != nil {
		r.logger.Errorw("failed to upsert subscription", "restaurant_id", model.RestaurantID, "error", err)
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	r.logger.Infow("subscription upserted",
		"restaurant_id", model.RestaurantID,
		"plan_type", model.PlanType,
		"status", model.Status)
	return nil
}

// LoadSubscription implements the access engine's subscription store. Absence
// is reported as (nil, nil), never as an error.
func (r *SubscriptionRepositoryImpl) LoadSubscription(ctx context.Context, tenantID uint) (*subscription.Subscription, error) {
	return r.GetByRestaurantID(ctx, tenantID)
}

func subscriptionToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.RestaurantID,
		subscription.PlanType(model.PlanType),
		subscription.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}
	return entity, nil
}
