package service

import "errors"

var (
	// ErrInvalidBookingID is returned when a booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidCustomerID is returned when a customer ID is empty.
	ErrInvalidCustomerID = errors.New("invalid customer id")

	// ErrInvalidDriverID is returned when a driver ID is empty.
	ErrInvalidDriverID = errors.New("invalid driver id")

	// ErrUnknownLocation is returned when a pickup or delivery ID is not in
	// the location catalog.
	ErrUnknownLocation = errors.New("unknown location")

	// ErrSameLocation is returned when pickup and delivery are the same
	// catalog entry.
	ErrSameLocation = errors.New("pickup and delivery must differ")

	// ErrActiveBookingExists is returned when a customer who already has an
	// open booking tries to create another one.
	ErrActiveBookingExists = errors.New("customer already has an active booking")

	// ErrDriverHasActiveBooking is returned when a driver with an open
	// booking tries to accept another one.
	ErrDriverHasActiveBooking = errors.New("driver already has an active booking")

	// ErrBookingNotPending is returned when accepting or cancelling a
	// booking that already left the pending state.
	ErrBookingNotPending = errors.New("booking is not pending")

	// ErrBookingNotAccepted is returned when starting a trip on a booking
	// that is not in the accepted state.
	ErrBookingNotAccepted = errors.New("booking is not accepted")

	// ErrBookingNotInProgress is returned when completing a trip that is
	// not in progress.
	ErrBookingNotInProgress = errors.New("booking is not in progress")

	// ErrInvalidOTP is returned when the supplied trip-start code does not
	// match the booking's code. Recoverable: the booking state is untouched
	// and the driver may retry.
	ErrInvalidOTP = errors.New("invalid otp")

	// ErrDriverNotAssigned is returned when a driver operates on a booking
	// assigned to someone else.
	ErrDriverNotAssigned = errors.New("driver not assigned to this booking")

	// ErrCustomerNotOwner is returned when a customer tries to cancel
	// someone else's booking.
	ErrCustomerNotOwner = errors.New("booking belongs to another customer")

	// ErrBookingLocked is returned when another mutation holds the
	// booking's lock.
	ErrBookingLocked = errors.New("booking is being modified by another request")
)
