package domain

import "time"

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// Active reports whether the status is non-terminal: the booking still
// occupies its customer (and driver, once assigned).
func (s BookingStatus) Active() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusInProgress:
		return true
	default:
		return false
	}
}

// Location is a named pickup/delivery point from the fixed catalog.
// Bookings hold a value copy taken at creation time.
type Location struct {
	ID   string
	Name string
	Area string
	Lat  float64
	Lng  float64
}

// Booking represents one package-transport job from a pickup point to a
// delivery point. Pricing, route and OTP are fixed at creation; only the
// status, the driver fields (assigned once) and CompletedAt change afterwards.
type Booking struct {
	ID string

	CustomerID    string
	CustomerName  string
	CustomerPhone string

	// Driver fields are empty until a driver accepts, then never change.
	DriverID            string
	DriverName          string
	DriverPhone         string
	DriverVehicleNumber string

	Pickup   Location
	Delivery Location

	VehicleType string
	DistanceKm  float64 // one decimal, floored at the minimum-fare distance
	BasePrice   int
	TotalPrice  int

	// OTP is the 4-digit pairing code the customer hands to the driver
	// to authorize trip start. Generated once, compared verbatim.
	OTP string

	Status BookingStatus

	// Version guards concurrent updates: every persisted write increments
	// it, and writes against a stale version are rejected.
	Version int64

	CreatedAt   time.Time
	CompletedAt time.Time
}
