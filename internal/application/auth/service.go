// Package auth implements operator authentication: credential verification
// and access token issuance.
package auth

import (
	"context"
	"fmt"

	"tavolo/internal/domain/user"
	"tavolo/internal/infrastructure/auth"
	apperrors "tavolo/internal/shared/errors"
	"tavolo/internal/shared/logger"
)

// LoginResult carries the issued token and the authenticated user profile
type LoginResult struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// UserDTO is the outward-facing user representation
type UserDTO struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	RestaurantID uint   `json:"restaurantId,omitempty"`
}

// Service handles login and token issuance
type Service struct {
	users  user.Repository
	jwtSvc *auth.JWTService
	hasher *auth.PasswordHasher
	logger logger.Interface
}

// NewService creates a new auth service
func NewService(users user.Repository, jwtSvc *auth.JWTService, hasher *auth.PasswordHasher, logger logger.Interface) *Service {
	return &Service{
		users:  users,
		jwtSvc: jwtSvc,
		hasher: hasher,
		logger: logger,
	}
}

// Login verifies credentials and issues an access token. Unknown email and
// wrong password produce the same error to avoid account enumeration.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	entity, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if entity == nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	if !s.hasher.Verify(password, entity.PasswordHash()) {
		s.logger.Warnw("failed login attempt", "user_id", entity.ID())
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.jwtSvc.Generate(*entity.Principal())
	if err != nil {
		s.logger.Errorw("failed to generate token", "user_id", entity.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Infow("user logged in", "user_id", entity.ID(), "role", entity.Role().String())

	return &LoginResult{
		Token: token,
		User:  toUserDTO(entity),
	}, nil
}

func toUserDTO(entity *user.User) *UserDTO {
	return &UserDTO{
		ID:           entity.ID(),
		Email:        entity.Email(),
		Role:         entity.Role().String(),
		RestaurantID: entity.RestaurantID(),
	}
}
