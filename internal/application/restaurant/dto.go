package restaurant

import (
	"encoding/json"
	"time"

	"tavolo/internal/domain/access"
	"tavolo/internal/domain/restaurant"
)

// RestaurantDTO is the outward-facing restaurant representation
type RestaurantDTO struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Address   string          `json:"address,omitempty"`
	Phone     string          `json:"phone,omitempty"`
	OwnerID   uint            `json:"ownerId"`
	Status    string          `json:"status"`
	Menu      json.RawMessage `json:"menu,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SettingsDTO is the feature settings view: the stored overrides plus the
// resolved effective state after defaults and the orders cascade.
type SettingsDTO struct {
	Overrides map[string]bool `json:"overrides"`
	Resolved  map[string]bool `json:"resolved"`
}

// StorefrontDTO is the public storefront view served by slug
type StorefrontDTO struct {
	Name     string          `json:"name"`
	Slug     string          `json:"slug"`
	Address  string          `json:"address,omitempty"`
	Phone    string          `json:"phone,omitempty"`
	Menu     json.RawMessage `json:"menu,omitempty"`
	Features map[string]bool `json:"features"`
}

// CreateRestaurantCommand carries the input for creating a restaurant
type CreateRestaurantCommand struct {
	Name    string `json:"name" binding:"required,max=100"`
	Slug    string `json:"slug" binding:"required,max=100,slug"`
	Address string `json:"address" binding:"max=255"`
	Phone   string `json:"phone" binding:"max=30"`
	OwnerID uint   `json:"ownerId" binding:"required"`
}

// UpdateProfileCommand carries the input for updating the storefront profile
type UpdateProfileCommand struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"max=255"`
	Phone   string `json:"phone" binding:"max=30"`
}

func toRestaurantDTO(entity *restaurant.Restaurant) *RestaurantDTO {
	return &RestaurantDTO{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Slug:      entity.Slug(),
		Address:   entity.Address(),
		Phone:     entity.Phone(),
		OwnerID:   entity.OwnerID(),
		Status:    string(entity.Status()),
		Menu:      json.RawMessage(entity.Menu()),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func toggleDocumentToMap(doc access.ToggleDocument) map[string]bool {
	out := make(map[string]bool, len(doc))
	for capability, enabled := range doc {
		out[capability.String()] = enabled
	}
	return out
}
