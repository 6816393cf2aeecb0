package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tavolo/internal/shared/constants"
)

// RestaurantModel represents the database persistence model for restaurants.
// This is the anti-corruption layer between domain and database.
type RestaurantModel struct {
	ID      uint   `gorm:"primarykey"`
	Name    string `gorm:"not null;size:100"`
	Slug    string `gorm:"uniqueIndex;not null;size:100"`
	Address string `gorm:"size:255"`
	Phone   string `gorm:"size:30"`
	OwnerID uint   `gorm:"not null;index:idx_restaurant_owner"`
	Status  string `gorm:"not null;size:20;default:active"`
	// FeatureToggles is the loosely-typed per-tenant toggle document. The
	// column stores whatever the settings endpoint accepted; interpretation
	// and coercion happen in the access engine.
	FeatureToggles datatypes.JSON
	Menu           datatypes.JSON
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (RestaurantModel) TableName() string {
	return constants.TableRestaurants
}
