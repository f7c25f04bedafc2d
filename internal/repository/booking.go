package repository

import (
	"context"

	"booking/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
// Bookings are never deleted; terminal records stay for history queries.
type BookingRepository interface {
	// Create persists a new booking. Returns ErrDuplicateID if the ID is
	// already taken.
	Create(ctx context.Context, b *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetAll retrieves all bookings, newest first.
	GetAll(ctx context.Context) ([]*domain.Booking, error)

	// Update replaces the stored record if its version still matches
	// b.Version, then increments the version. Returns ErrStaleVersion when
	// the record moved underneath the caller, ErrNotFound if it is absent.
	Update(ctx context.Context, b *domain.Booking) error

	// GetByCustomerID retrieves a customer's bookings in insertion order.
	GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error)

	// GetActiveByCustomerID retrieves the customer's open booking (status
	// pending, accepted or in_progress). Returns nil if none exists.
	GetActiveByCustomerID(ctx context.Context, customerID string) (*domain.Booking, error)

	// GetPendingByVehicleType retrieves the driver-facing request queue:
	// pending bookings for one vehicle type, in insertion order.
	GetPendingByVehicleType(ctx context.Context, vehicleType string) ([]*domain.Booking, error)

	// GetActiveByDriverID retrieves the driver's current booking (status
	// accepted or in_progress). Returns nil if none exists.
	GetActiveByDriverID(ctx context.Context, driverID string) (*domain.Booking, error)
}
