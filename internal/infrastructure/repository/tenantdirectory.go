package repository

import (
	"context"
)

// TenantDirectoryImpl combines the slug and reservation lookups the tenant
// resolver needs into one collaborator.
type TenantDirectoryImpl struct {
	restaurants  *RestaurantRepositoryImpl
	reservations *ReservationRepositoryImpl
}

func NewTenantDirectory(restaurants *RestaurantRepositoryImpl, reservations *ReservationRepositoryImpl) *TenantDirectoryImpl {
	return &TenantDirectoryImpl{
		restaurants:  restaurants,
		reservations: reservations,
	}
}

func (d *TenantDirectoryImpl) TenantIDByReservation(ctx context.Context, reservationID uint) (uint, error) {
	return d.reservations.TenantIDByReservation(ctx, reservationID)
}

func (d *TenantDirectoryImpl) TenantIDBySlug(ctx context.Context, slug string) (uint, error) {
	return d.restaurants.TenantIDBySlug(ctx, slug)
}
