package models

import (
	"time"

	"tavolo/internal/shared/constants"
)

// SubscriptionModel represents the database persistence model for
// subscriptions. One record per tenant; the billing collaborator owns writes.
type SubscriptionModel struct {
	ID           uint   `gorm:"primarykey"`
	RestaurantID uint   `gorm:"uniqueIndex;not null"`
	PlanType     string `gorm:"not null;size:20"`
	Status       string `gorm:"not null;size:20;index:idx_subscription_status"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}
