package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tavolo/internal/domain/restaurant"
	"tavolo/internal/infrastructure/persistence/models"
	"tavolo/internal/shared/logger"
)

type RestaurantRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewRestaurantRepository(db *gorm.DB, logger logger.Interface) *RestaurantRepositoryImpl {
	return &RestaurantRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *RestaurantRepositoryImpl) Create(ctx context.Context, entity *restaurant.Restaurant) error {
	model := restaurantToModel(entity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create restaurant", "error", err)
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set restaurant ID: %w", err)
	}

	r.logger.Infow("restaurant created", "id", model.ID, "slug", model.Slug)
	return nil
}

func (r *RestaurantRepositoryImpl) GetByID(ctx context.Context, id uint) (*restaurant.Restaurant, error) {
	var model models.RestaurantModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get restaurant by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return restaurantToEntity(&model)
}

func (r *RestaurantRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*restaurant.Restaurant, error) {
	var model models.RestaurantModel

	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get restaurant by slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return restaurantToEntity(&model)
}

func (r *RestaurantRepositoryImpl) Update(ctx context.Context, entity *restaurant.Restaurant) error {
	if entity.ID() == 0 {
		return fmt.Errorf("restaurant ID is required for update")
	}

	model := restaurantToModel(entity)
	model.ID = entity.ID()

	if err := r.db.WithContext(ctx).Model(&models.RestaurantModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":            model.Name,
			"address":         model.Address,
			"phone":           model.Phone,
			"status":          model.Status,
			"feature_toggles": model.FeatureToggles,
			"menu":            model.Menu,
		}).Error; err != nil {
		r.logger.Errorw("failed to update restaurant", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	return nil
}

func (r *RestaurantRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*restaurant.Restaurant, int64, error) {
	var (
		modelList []models.RestaurantModel
		total     int64
	)

	if err := r.db.WithContext(ctx).Model(&models.RestaurantModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(pageSize).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list restaurants", "error", err)
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}

	entities := make([]*restaurant.Restaurant, 0, len(modelList))
	for i := range modelList {
		entity, err := restaurantToEntity(&modelList[i])
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

func (r *RestaurantRepositoryImpl) UpdateToggles(ctx context.Context, id uint, toggles []byte) error {
	result := r.db.WithContext(ctx).Model(&models.RestaurantModel{}).
		Where("id = ?", id).
		Update("feature_toggles", datatypes.JSON(toggles))
	if result.Error != nil {
		r.logger.Errorw("failed to update feature toggles", "id", id, "error", result.Error)
		return fmt.Errorf("failed to update feature toggles: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("restaurant %d not found", id)
	}

	r.logger.Infow("feature toggles updated", "id", id)
	return nil
}

// LoadToggleDocument implements the access engine's toggle store. A missing
// restaurant or an empty column yields a nil document, which the engine
// treats as "no overrides".
func (r *RestaurantRepositoryImpl) LoadToggleDocument(ctx context.Context, tenantID uint) ([]byte, error) {
	var model models.RestaurantModel

	if err := r.db.WithContext(ctx).
		Select("feature_toggles").
		First(&model, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load toggle document: %w", err)
	}

	return []byte(model.FeatureToggles), nil
}

// TenantIDBySlug resolves a public storefront slug to its tenant id, zero
// when no restaurant carries the slug.
func (r *RestaurantRepositoryImpl) TenantIDBySlug(ctx context.Context, slug string) (uint, error) {
	var model models.RestaurantModel

	if err := r.db.WithContext(ctx).
		Select("id").
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to resolve slug: %w", err)
	}

	return model.ID, nil
}

func restaurantToModel(entity *restaurant.Restaurant) *models.RestaurantModel {
	return &models.RestaurantModel{
		Name:           entity.Name(),
		Slug:           entity.Slug(),
		Address:        entity.Address(),
		Phone:          entity.Phone(),
		OwnerID:        entity.OwnerID(),
		Status:         string(entity.Status()),
		FeatureToggles: datatypes.JSON(entity.Toggles()),
		Menu:           datatypes.JSON(entity.Menu()),
	}
}

func restaurantToEntity(model *models.RestaurantModel) (*restaurant.Restaurant, error) {
	entity, err := restaurant.ReconstructRestaurant(
		model.ID,
		model.Name,
		model.Slug,
		model.Address,
		model.Phone,
		model.OwnerID,
		restaurant.Status(model.Status),
		[]byte(model.FeatureToggles),
		[]byte(model.Menu),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map restaurant: %w", err)
	}
	return entity, nil
}
