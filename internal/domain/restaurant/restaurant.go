// Package restaurant provides the restaurant (tenant) aggregate and its
// repository contract. Each restaurant owns a storefront, a feature toggle
// document and a subscription held by the billing collaborator.
package restaurant

import (
	"fmt"
	"regexp"
	"time"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug reports whether s is a well-formed storefront slug
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Status represents the restaurant lifecycle state
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Restaurant represents the restaurant aggregate root. The feature toggle
// document is held as an opaque raw payload; interpretation belongs to the
// access engine, which tolerates any stored shape.
type Restaurant struct {
	id        uint
	name      string
	slug      string
	address   string
	phone     string
	ownerID   uint
	status    Status
	toggles   []byte
	menu      []byte
	createdAt time.Time
	updatedAt time.Time
}

// NewRestaurant creates a new restaurant
func NewRestaurant(name, slug, address, phone string, ownerID uint) (*Restaurant, error) {
	if name == "" {
		return nil, fmt.Errorf("restaurant name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("restaurant name too long (max 100 characters)")
	}
	if slug == "" {
		return nil, fmt.Errorf("restaurant slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("invalid slug: %s", slug)
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Restaurant{
		name:      name,
		slug:      slug,
		address:   address,
		phone:     phone,
		ownerID:   ownerID,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructRestaurant reconstructs a restaurant from persistence
func ReconstructRestaurant(
	id uint,
	name, slug, address, phone string,
	ownerID uint,
	status Status,
	toggles, menu []byte,
	createdAt, updatedAt time.Time,
) (*Restaurant, error) {
	if id == 0 {
		return nil, fmt.Errorf("restaurant ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("restaurant name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid restaurant status: %s", status)
	}

	return &Restaurant{
		id:        id,
		name:      name,
		slug:      slug,
		address:   address,
		phone:     phone,
		ownerID:   ownerID,
		status:    status,
		toggles:   toggles,
		menu:      menu,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the restaurant ID
func (r *Restaurant) ID() uint {
	return r.id
}

// SetID sets the restaurant ID (only for persistence layer use)
func (r *Restaurant) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("restaurant ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("restaurant ID cannot be zero")
	}
	r.id = id
	return nil
}

// Name returns the restaurant name
func (r *Restaurant) Name() string {
	return r.name
}

// Slug returns the public storefront slug
func (r *Restaurant) Slug() string {
	return r.slug
}

// Address returns the restaurant address
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the restaurant phone number
func (r *Restaurant) Phone() string {
	return r.phone
}

// OwnerID returns the owning user's id
func (r *Restaurant) OwnerID() uint {
	return r.ownerID
}

// Status returns the restaurant status
func (r *Restaurant) Status() Status {
	return r.status
}

// Toggles returns the stored feature toggle document, nil when never set
func (r *Restaurant) Toggles() []byte {
	return r.toggles
}

// Menu returns the stored menu document, nil when never set
func (r *Restaurant) Menu() []byte {
	return r.menu
}

// CreatedAt returns when the restaurant was created
func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the restaurant was last updated
func (r *Restaurant) UpdatedAt() time.Time {
	return r.updatedAt
}

// UpdateProfile updates the storefront profile fields
func (r *Restaurant) UpdateProfile(name, address, phone string) error {
	if name == "" {
		return fmt.Errorf("restaurant name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("restaurant name too long (max 100 characters)")
	}
	r.name = name
	r.address = address
	r.phone = phone
	r.updatedAt = time.Now()
	return nil
}

// UpdateToggles replaces the stored feature toggle document
func (r *Restaurant) UpdateToggles(toggles []byte) {
	r.toggles = toggles
	r.updatedAt = time.Now()
}

// UpdateMenu replaces the stored menu document
func (r *Restaurant) UpdateMenu(menu []byte) {
	r.menu = menu
	r.updatedAt = time.Now()
}

// IsActive checks if the restaurant is active
func (r *Restaurant) IsActive() bool {
	return r.status == StatusActive
}
