package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tavolo/internal/domain/access"
	"tavolo/internal/domain/user"
	"tavolo/internal/infrastructure/persistence/models"
	"tavolo/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) *UserRepositoryImpl {
	return &UserRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, entity *user.User) error {
	model := &models.UserModel{
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Role:         string(entity.Role()),
		RestaurantID: entity.RestaurantID(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "email", model.Email, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "role", model.Role)
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return userToEntity(&model)
}

func userToEntity(model *models.UserModel) (*user.User, error) {
	entity, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		access.Role(model.Role),
		model.RestaurantID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map user: %w", err)
	}
	return entity, nil
}
