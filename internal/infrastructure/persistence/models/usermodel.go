package models

import (
	"time"

	"gorm.io/gorm"

	"tavolo/internal/shared/constants"
)

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:20"`
	RestaurantID uint   `gorm:"index:idx_user_restaurant"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
