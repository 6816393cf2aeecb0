package restaurant

import "context"

// Repository defines the interface for restaurant data operations
type Repository interface {
	// Create creates a new restaurant
	Create(ctx context.Context, restaurant *Restaurant) error

	// GetByID retrieves a restaurant by internal ID
	GetByID(ctx context.Context, id uint) (*Restaurant, error)

	// GetBySlug retrieves a restaurant by its public storefront slug
	GetBySlug(ctx context.Context, slug string) (*Restaurant, error)

	// Update updates an existing restaurant
	Update(ctx context.Context, restaurant *Restaurant) error

	// List retrieves a paginated list of restaurants
	List(ctx context.Context, page, pageSize int) ([]*Restaurant, int64, error)

	// UpdateToggles replaces the stored feature toggle document
	UpdateToggles(ctx context.Context, id uint, toggles []byte) error
}

// ReservationRepository defines the interface for reservation data operations
type ReservationRepository interface {
	// Create creates a new reservation
	Create(ctx context.Context, reservation *Reservation) error

	// GetByID retrieves a reservation by internal ID
	GetByID(ctx context.Context, id uint) (*Reservation, error)

	// ListByRestaurant retrieves a restaurant's reservations
	ListByRestaurant(ctx context.Context, restaurantID uint, page, pageSize int) ([]*Reservation, int64, error)
}
