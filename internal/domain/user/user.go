package user

import (
	"fmt"
	"net/mail"
	"time"

	"tavolo/internal/domain/access"
)

// User is an operator account: a platform super admin, or an owner/staff
// member attached to exactly one restaurant.
type User struct {
	id           uint
	email        string
	passwordHash string
	role         access.Role
	restaurantID uint
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a new user with an already-hashed password
func NewUser(email, passwordHash string, role access.Role, restaurantID uint) (*User, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if role != access.RoleSuperAdmin && restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required for role %s", role)
	}
	if role == access.RoleSuperAdmin && restaurantID != 0 {
		return nil, fmt.Errorf("super admin cannot be attached to a restaurant")
	}

	now := time.Now()
	return &User{
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		restaurantID: restaurantID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser reconstructs a user from persistence
func ReconstructUser(
	id uint,
	email, passwordHash string,
	role access.Role,
	restaurantID uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		restaurantID: restaurantID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// ID returns the user ID
func (u *User) ID() uint {
	return u.id
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Email returns the user's email
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored password hash
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role
func (u *User) Role() access.Role {
	return u.role
}

// RestaurantID returns the attached tenant id, zero for super admins
func (u *User) RestaurantID() uint {
	return u.restaurantID
}

// CreatedAt returns when the user was created
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the user was last updated
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// Principal builds the request principal this user authenticates as
func (u *User) Principal() *access.Principal {
	return &access.Principal{
		UserID:       u.id,
		Role:         u.role,
		RestaurantID: u.restaurantID,
	}
}
