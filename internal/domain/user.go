package domain

import "time"

// UserRole distinguishes customers (who create and cancel bookings) from
// drivers (who accept, start and complete them).
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
)

// User represents a registered customer or driver. The booking engine
// consumes these fields verbatim; it performs no authentication.
type User struct {
	ID    string
	Name  string
	Phone string
	Role  UserRole

	// Driver-only fields.
	VehicleType   string
	VehicleNumber string

	CreatedAt time.Time
}
