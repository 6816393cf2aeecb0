package restaurant

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReservationStatus represents the reservation lifecycle state
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// IsValid checks if the reservation status is valid
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	default:
		return false
	}
}

// Reservation is a guest booking at a restaurant. The deeper booking rules
// (capacity, time windows) live with the reservations collaborator; this core
// carries only what the storefront and the tenant resolution need.
type Reservation struct {
	id               uint
	restaurantID     uint
	confirmationCode string
	guestName        string
	guestEmail       string
	partySize        int
	reservedFor      time.Time
	status           ReservationStatus
	createdAt        time.Time
	updatedAt        time.Time
}

// NewReservation creates a new reservation
func NewReservation(restaurantID uint, guestName, guestEmail string, partySize int, reservedFor time.Time) (*Reservation, error) {
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if guestName == "" {
		return nil, fmt.Errorf("guest name is required")
	}
	if partySize <= 0 {
		return nil, fmt.Errorf("party size must be positive")
	}

	now := time.Now()
	return &Reservation{
		restaurantID:     restaurantID,
		confirmationCode: uuid.NewString(),
		guestName:        guestName,
		guestEmail:       guestEmail,
		partySize:        partySize,
		reservedFor:      reservedFor,
		status:           ReservationStatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructReservation reconstructs a reservation from persistence
func ReconstructReservation(
	id, restaurantID uint,
	confirmationCode, guestName, guestEmail string,
	partySize int,
	reservedFor time.Time,
	status ReservationStatus,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if id == 0 {
		return nil, fmt.Errorf("reservation ID cannot be zero")
	}
	if restaurantID == 0 {
		return nil, fmt.Errorf("restaurant ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid reservation status: %s", status)
	}

	return &Reservation{
		id:               id,
		restaurantID:     restaurantID,
		confirmationCode: confirmationCode,
		guestName:        guestName,
		guestEmail:       guestEmail,
		partySize:        partySize,
		reservedFor:      reservedFor,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

// ID returns the reservation ID
func (r *Reservation) ID() uint {
	return r.id
}

// SetID sets the reservation ID (only for persistence layer use)
func (r *Reservation) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("reservation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("reservation ID cannot be zero")
	}
	r.id = id
	return nil
}

// RestaurantID returns the owning tenant id
func (r *Reservation) RestaurantID() uint {
	return r.restaurantID
}

// ConfirmationCode returns the opaque code handed to the guest
func (r *Reservation) ConfirmationCode() string {
	return r.confirmationCode
}

// GuestName returns the guest's name
func (r *Reservation) GuestName() string {
	return r.guestName
}

// GuestEmail returns the guest's email
func (r *Reservation) GuestEmail() string {
	return r.guestEmail
}

// PartySize returns the party size
func (r *Reservation) PartySize() int {
	return r.partySize
}

// ReservedFor returns the reservation time
func (r *Reservation) ReservedFor() time.Time {
	return r.reservedFor
}

// Status returns the reservation status
func (r *Reservation) Status() ReservationStatus {
	return r.status
}

// CreatedAt returns when the reservation was created
func (r *Reservation) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the reservation was last updated
func (r *Reservation) UpdatedAt() time.Time {
	return r.updatedAt
}
