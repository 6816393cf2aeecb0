package models

import (
	"time"

	"gorm.io/gorm"

	"tavolo/internal/shared/constants"
)

// ReservationModel represents the database persistence model for reservations
type ReservationModel struct {
	ID               uint      `gorm:"primarykey"`
	RestaurantID     uint      `gorm:"not null;index:idx_reservation_restaurant"`
	ConfirmationCode string    `gorm:"not null;size:36;uniqueIndex:idx_reservation_code"`
	GuestName        string    `gorm:"not null;size:100"`
	GuestEmail       string    `gorm:"size:255"`
	PartySize        int       `gorm:"not null"`
	ReservedFor      time.Time `gorm:"not null;index:idx_reserved_for"`
	Status           string    `gorm:"not null;size:20;default:pending"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (ReservationModel) TableName() string {
	return constants.TableReservations
}
