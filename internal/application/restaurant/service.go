// Package restaurant implements the restaurant management use cases:
// storefront profile, menu and feature settings.
package restaurant

import (
	"context"
	"encoding/json"
	"fmt"

	"tavolo/internal/domain/access"
	"tavolo/internal/domain/restaurant"
	apperrors "tavolo/internal/shared/errors"
	"tavolo/internal/shared/logger"
)

// ToggleCacheInvalidator drops a tenant's cached toggle document after a
// settings write. Nil when caching is disabled.
type ToggleCacheInvalidator interface {
	Invalidate(ctx context.Context, tenantID uint) error
}

// Service handles restaurant management use cases
type Service struct {
	restaurants restaurant.Repository
	invalidator ToggleCacheInvalidator
	logger      logger.Interface
}

// NewService creates a new restaurant service
func NewService(restaurants restaurant.Repository, invalidator ToggleCacheInvalidator, logger logger.Interface) *Service {
	return &Service{
		restaurants: restaurants,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Create registers a new restaurant with a unique storefront slug
func (s *Service) Create(ctx context.Context, cmd CreateRestaurantCommand) (*RestaurantDTO, error) {
	existing, err := s.restaurants.GetBySlug(ctx, cmd.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("slug already in use", cmd.Slug)
	}

	entity, err := restaurant.NewRestaurant(cmd.Name, cmd.Slug, cmd.Address, cmd.Phone, cmd.OwnerID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.restaurants.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to create restaurant: %w", err)
	}

	return toRestaurantDTO(entity), nil
}

// GetByID returns a restaurant by internal id
func (s *Service) GetByID(ctx context.Context, id uint) (*RestaurantDTO, error) {
	entity, err := s.loadRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRestaurantDTO(entity), nil
}

// GetBySlug returns a restaurant by its public storefront slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*RestaurantDTO, error) {
	entity, err := s.restaurants.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("restaurant not found", slug)
	}
	return toRestaurantDTO(entity), nil
}

// List returns a page of restaurants
func (s *Service) List(ctx context.Context, page, pageSize int) ([]*RestaurantDTO, int64, error) {
	entities, total, err := s.restaurants.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list restaurants: %w", err)
	}

	dtos := make([]*RestaurantDTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, toRestaurantDTO(entity))
	}
	return dtos, total, nil
}

// UpdateProfile updates the storefront profile fields
func (s *Service) UpdateProfile(ctx context.Context, id uint, cmd UpdateProfileCommand) (*RestaurantDTO, error) {
	entity, err := s.loadRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := entity.UpdateProfile(cmd.Name, cmd.Address, cmd.Phone); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.restaurants.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update restaurant: %w", err)
	}

	return toRestaurantDTO(entity), nil
}

// UpdateMenu replaces the stored menu document
func (s *Service) UpdateMenu(ctx context.Context, id uint, menu json.RawMessage) error {
	if len(menu) > 0 && !json.Valid(menu) {
		return apperrors.NewValidationError("menu must be valid JSON")
	}

	entity, err := s.loadRestaurant(ctx, id)
	if err != nil {
		return err
	}

	entity.UpdateMenu(menu)
	if err := s.restaurants.Update(ctx, entity); err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}

	return nil
}

// GetSettings returns the stored toggle overrides and the resolved state
func (s *Service) GetSettings(ctx context.Context, id uint) (*SettingsDTO, error) {
	entity, err := s.loadRestaurant(ctx, id)
	if err != nil {
		return nil, err
	}

	overrides := access.CoerceToggleDocument(entity.Toggles())
	return &SettingsDTO{
		Overrides: toggleDocumentToMap(overrides),
		Resolved:  toggleDocumentToMap(access.ResolveToggles(overrides)),
	}, nil
}

// UpdateSettings stores a new toggle document. The input is coerced before
// storage: unknown keys and non-boolean values are dropped silently, so the
// stored document only ever contains known capabilities.
func (s *Service) UpdateSettings(ctx context.Context, id uint, raw json.RawMessage) (*SettingsDTO, error) {
	if _, err := s.loadRestaurant(ctx, id); err != nil {
		return nil, err
	}

	overrides := access.CoerceToggleDocument(raw)
	stored, err := json.Marshal(overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to encode toggle document: %w", err)
	}

	if err := s.restaurants.UpdateToggles(ctx, id, stored); err != nil {
		return nil, fmt.Errorf("failed to store toggle document: %w", err)
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, id); err != nil {
			s.logger.Warnw("settings stored but cache invalidation failed", "restaurant_id", id, "error", err)
		}
	}

	s.logger.Infow("feature settings updated", "restaurant_id", id)

	return &SettingsDTO{
		Overrides: toggleDocumentToMap(overrides),
		Resolved:  toggleDocumentToMap(access.ResolveToggles(overrides)),
	}, nil
}

// GetStorefront returns the public storefront view for a slug
func (s *Service) GetStorefront(ctx context.Context, slug string) (*StorefrontDTO, error) {
	entity, err := s.restaurants.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if entity == nil || !entity.IsActive() {
		return nil, apperrors.NewNotFoundError("restaurant not found", slug)
	}

	resolved := access.ResolveToggles(access.CoerceToggleDocument(entity.Toggles()))
	return &StorefrontDTO{
		Name:     entity.Name(),
		Slug:     entity.Slug(),
		Address:  entity.Address(),
		Phone:    entity.Phone(),
		Menu:     json.RawMessage(entity.Menu()),
		Features: toggleDocumentToMap(resolved),
	}, nil
}

func (s *Service) loadRestaurant(ctx context.Context, id uint) (*restaurant.Restaurant, error) {
	entity, err := s.restaurants.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	if entity == nil {
		return nil, apperrors.NewNotFoundError("restaurant not found", fmt.Sprintf("id=%d", id))
	}
	return entity, nil
}
