package service

import (
	"context"
	"time"

	"booking/internal/domain"
)

// AcceptBookingRequest contains the parameters for a driver accepting a
// pending booking.
type AcceptBookingRequest struct {
	BookingID           string
	DriverID            string
	DriverName          string
	DriverPhone         string
	DriverVehicleNumber string
}

// AcceptBooking assigns a driver to a pending booking. The driver fields are
// written exactly once; a booking that already left the pending state is
// rejected, so the second of two racing accepts loses instead of silently
// overwriting the first.
func (s *BookingService) AcceptBooking(ctx context.Context, req AcceptBookingRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	if req.DriverID == "" {
		return nil, ErrInvalidDriverID
	}

	existing, err := s.bookingRepo.GetActiveByDriverID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDriverHasActiveBooking
	}

	unlock, err := s.lockBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if b.Status != domain.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	b.DriverID = req.DriverID
	b.DriverName = req.DriverName
	b.DriverPhone = req.DriverPhone
	b.DriverVehicleNumber = req.DriverVehicleNumber
	b.Status = domain.BookingStatusAccepted

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, b)

	return b, nil
}

// StartTripRequest contains the parameters for starting the trip on an
// accepted booking.
type StartTripRequest struct {
	BookingID string
	DriverID  string
	OTP       string
}

// StartTrip transitions an accepted booking to in_progress after verifying
// the customer's pairing code. A wrong code leaves the booking untouched so
// the driver can re-enter it.
func (s *BookingService) StartTrip(ctx context.Context, req StartTripRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	unlock, err := s.lockBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if b.Status != domain.BookingStatusAccepted {
		return nil, ErrBookingNotAccepted
	}

	if req.DriverID != "" && b.DriverID != req.DriverID {
		return nil, ErrDriverNotAssigned
	}

	// Exact-string comparison; the code is never reissued.
	if b.OTP != req.OTP {
		return nil, ErrInvalidOTP
	}

	b.Status = domain.BookingStatusInProgress

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, b)

	return b, nil
}

// CompleteTripRequest contains the parameters for completing a trip.
type CompleteTripRequest struct {
	BookingID string
	DriverID  string
}

// CompleteTrip marks an in-progress booking completed and stamps the
// completion time. Completing a booking in any other state is rejected.
func (s *BookingService) CompleteTrip(ctx context.Context, req CompleteTripRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	unlock, err := s.lockBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if b.Status != domain.BookingStatusInProgress {
		return nil, ErrBookingNotInProgress
	}

	if req.DriverID != "" && b.DriverID != req.DriverID {
		return nil, ErrDriverNotAssigned
	}

	b.Status = domain.BookingStatusCompleted
	b.CompletedAt = time.Now()

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, b)

	return b, nil
}

// CancelBookingRequest contains the parameters for cancelling a booking.
type CancelBookingRequest struct {
	BookingID  string
	CustomerID string
}

// CancelBooking cancels a pending booking. Once a driver has accepted, the
// booking can no longer be cancelled.
func (s *BookingService) CancelBooking(ctx context.Context, req CancelBookingRequest) (*domain.Booking, error) {
	if req.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	unlock, err := s.lockBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	b, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if req.CustomerID != "" && b.CustomerID != req.CustomerID {
		return nil, ErrCustomerNotOwner
	}

	if b.Status != domain.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	b.Status = domain.BookingStatusCancelled

	if err := s.bookingRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, b)

	return b, nil
}

// lockBooking serializes mutations on one booking id. The returned release
// function is a no-op when no lock store is wired.
func (s *BookingService) lockBooking(ctx context.Context, bookingID string) (func(), error) {
	if s.lockStore == nil {
		return func() {}, nil
	}

	locked, err := s.lockStore.AcquireBookingLock(ctx, bookingID, bookingLockTTL)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrBookingLocked
	}

	return func() {
		_ = s.lockStore.ReleaseBookingLock(ctx, bookingID)
	}, nil
}
