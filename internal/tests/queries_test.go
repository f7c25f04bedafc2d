package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"booking/internal/domain"
	"booking/internal/pricing"
)

func seedBooking(id, customerID, vehicleType string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		CustomerID:  customerID,
		VehicleType: vehicleType,
		Status:      status,
		CreatedAt:   time.Now(),
	}
}

func TestGetActiveCustomerBooking_SkipsTerminalStatuses(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	repo.AddBooking(seedBooking("b-1", "customer-1", "auto", domain.BookingStatusCompleted))
	repo.AddBooking(seedBooking("b-2", "customer-1", "auto", domain.BookingStatusPending))

	b, err := svc.GetActiveCustomerBooking(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b == nil || b.ID != "b-2" {
		t.Fatalf("expected the pending booking, got %+v", b)
	}
}

func TestGetActiveCustomerBooking_NilWhenAllTerminal(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	repo.AddBooking(seedBooking("b-1", "customer-1", "auto", domain.BookingStatusCompleted))
	repo.AddBooking(seedBooking("b-2", "customer-1", "tempo", domain.BookingStatusCancelled))

	b, err := svc.GetActiveCustomerBooking(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b != nil {
		t.Fatalf("expected nil, got %+v", b)
	}
}

func TestGetCustomerBookings_InsertionOrder(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	repo.AddBooking(seedBooking("b-1", "customer-1", "auto", domain.BookingStatusCompleted))
	repo.AddBooking(seedBooking("b-2", "customer-2", "auto", domain.BookingStatusPending))
	repo.AddBooking(seedBooking("b-3", "customer-1", "truck", domain.BookingStatusPending))

	bookings, err := svc.GetCustomerBookings(context.Background(), "customer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookings) != 2 || bookings[0].ID != "b-1" || bookings[1].ID != "b-3" {
		t.Fatalf("expected [b-1 b-3], got %+v", bookings)
	}
}

func TestGetDriverRequests_FiltersByTypeAndStatus(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	repo.AddBooking(seedBooking("b-1", "customer-1", "auto", domain.BookingStatusPending))
	repo.AddBooking(seedBooking("b-2", "customer-2", "truck", domain.BookingStatusPending))
	repo.AddBooking(seedBooking("b-3", "customer-3", "auto", domain.BookingStatusAccepted))
	repo.AddBooking(seedBooking("b-4", "customer-4", "auto", domain.BookingStatusCancelled))
	repo.AddBooking(seedBooking("b-5", "customer-5", "auto", domain.BookingStatusPending))

	requests, err := svc.GetDriverRequests(context.Background(), "auto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(requests) != 2 || requests[0].ID != "b-1" || requests[1].ID != "b-5" {
		t.Fatalf("expected [b-1 b-5], got %+v", requests)
	}
}

func TestGetDriverRequests_UnknownVehicleType(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	_, err := svc.GetDriverRequests(context.Background(), "submarine")
	if !errors.Is(err, pricing.ErrUnknownVehicleType) {
		t.Fatalf("expected ErrUnknownVehicleType, got %v", err)
	}
}

func TestGetActiveDriverBooking(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	done := seedBooking("b-1", "customer-1", "auto", domain.BookingStatusCompleted)
	done.DriverID = "driver-1"
	repo.AddBooking(done)

	open := seedBooking("b-2", "customer-2", "auto", domain.BookingStatusInProgress)
	open.DriverID = "driver-1"
	repo.AddBooking(open)

	b, err := svc.GetActiveDriverBooking(context.Background(), "driver-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b == nil || b.ID != "b-2" {
		t.Fatalf("expected b-2, got %+v", b)
	}

	none, err := svc.GetActiveDriverBooking(context.Background(), "driver-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none != nil {
		t.Fatalf("expected nil for idle driver, got %+v", none)
	}
}
