package postgres

import (
	"context"
	"database/sql"
	"errors"

	"booking/internal/domain"
	"booking/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of
// repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

const bookingColumns = `
	id, customer_id, customer_name, customer_phone,
	driver_id, driver_name, driver_phone, driver_vehicle_number,
	pickup_id, pickup_name, pickup_area, pickup_lat, pickup_lng,
	delivery_id, delivery_name, delivery_area, delivery_lat, delivery_lng,
	vehicle_type, distance_km, base_price, total_price,
	otp, status, version, created_at, completed_at`

// Create persists a new booking at version 1.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
	`

	b.Version = 1

	_, err := r.q.ExecContext(ctx, query,
		b.ID, b.CustomerID, b.CustomerName, b.CustomerPhone,
		nullString(b.DriverID), nullString(b.DriverName), nullString(b.DriverPhone), nullString(b.DriverVehicleNumber),
		b.Pickup.ID, b.Pickup.Name, b.Pickup.Area, b.Pickup.Lat, b.Pickup.Lng,
		b.Delivery.ID, b.Delivery.Name, b.Delivery.Area, b.Delivery.Lat, b.Delivery.Lng,
		b.VehicleType, b.DistanceKm, b.BasePrice, b.TotalPrice,
		b.OTP, b.Status, b.Version, b.CreatedAt, nullTime(b.CompletedAt),
	)
	if err != nil {
		return mapCreateError(err)
	}
	return nil
}

// GetByID retrieves a booking by ID.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetAll retrieves all bookings, newest first.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC LIMIT 100`
	return r.queryBookings(ctx, query)
}

// Update applies a compare-and-swap write: the row is replaced only if the
// stored version still matches b.Version, and the version is bumped. A lost
// race surfaces as ErrStaleVersion, an absent row as ErrNotFound.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `
		UPDATE bookings
		SET driver_id = $1, driver_name = $2, driver_phone = $3, driver_vehicle_number = $4,
		    status = $5, completed_at = $6, version = version + 1
		WHERE id = $7 AND version = $8
	`

	result, err := r.q.ExecContext(ctx, query,
		nullString(b.DriverID), nullString(b.DriverName), nullString(b.DriverPhone), nullString(b.DriverVehicleNumber),
		b.Status, nullTime(b.CompletedAt),
		b.ID, b.Version,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		// Distinguish a missing row from a concurrent write.
		var exists bool
		checkErr := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, b.ID).Scan(&exists)
		if checkErr != nil {
			return checkErr
		}
		if !exists {
			return repository.ErrNotFound
		}
		return repository.ErrStaleVersion
	}

	b.Version++
	return nil
}

// GetByCustomerID retrieves a customer's bookings in insertion order.
func (r *BookingRepository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_id = $1 ORDER BY created_at ASC`
	return r.queryBookings(ctx, query, customerID)
}

// GetActiveByCustomerID retrieves the customer's open booking, nil if none.
func (r *BookingRepository) GetActiveByCustomerID(ctx context.Context, customerID string) (*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + ` FROM bookings
		WHERE customer_id = $1 AND status IN ('pending', 'accepted', 'in_progress')
		ORDER BY created_at ASC LIMIT 1
	`

	b, err := scanBooking(r.q.QueryRowContext(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

// GetPendingByVehicleType retrieves the pending queue for one vehicle type.
func (r *BookingRepository) GetPendingByVehicleType(ctx context.Context, vehicleType string) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + ` FROM bookings
		WHERE status = 'pending' AND vehicle_type = $1
		ORDER BY created_at ASC
	`
	return r.queryBookings(ctx, query, vehicleType)
}

// GetActiveByDriverID retrieves the driver's current booking, nil if none.
func (r *BookingRepository) GetActiveByDriverID(ctx context.Context, driverID string) (*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + ` FROM bookings
		WHERE driver_id = $1 AND status IN ('accepted', 'in_progress')
		ORDER BY created_at ASC LIMIT 1
	`

	b, err := scanBooking(r.q.QueryRowContext(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var driverID, driverName, driverPhone, driverVehicleNumber sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&b.ID, &b.CustomerID, &b.CustomerName, &b.CustomerPhone,
		&driverID, &driverName, &driverPhone, &driverVehicleNumber,
		&b.Pickup.ID, &b.Pickup.Name, &b.Pickup.Area, &b.Pickup.Lat, &b.Pickup.Lng,
		&b.Delivery.ID, &b.Delivery.Name, &b.Delivery.Area, &b.Delivery.Lat, &b.Delivery.Lng,
		&b.VehicleType, &b.DistanceKm, &b.BasePrice, &b.TotalPrice,
		&b.OTP, &b.Status, &b.Version, &b.CreatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	b.DriverID = driverID.String
	b.DriverName = driverName.String
	b.DriverPhone = driverPhone.String
	b.DriverVehicleNumber = driverVehicleNumber.String
	if completedAt.Valid {
		b.CompletedAt = completedAt.Time
	}

	return &b, nil
}
