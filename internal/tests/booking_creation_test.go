package tests

import (
	"context"
	"errors"
	"testing"

	"booking/internal/domain"
	"booking/internal/pricing"
	"booking/internal/service"
)

func newTestService() (*service.BookingService, *MockBookingRepository, *MockLockStore, *MockEventPublisher) {
	repo := NewMockBookingRepository()
	locks := NewMockLockStore()
	events := NewMockEventPublisher()
	return service.NewBookingService(repo, locks, events), repo, locks, events
}

func createRequest() service.CreateBookingRequest {
	return service.CreateBookingRequest{
		CustomerID:    "customer-1",
		CustomerName:  "Rahul Kumar",
		CustomerPhone: "9876543210",
		PickupID:      "rajwada",
		DeliveryID:    "vijay-nagar",
		VehicleType:   "truck",
	}
}

func TestCreateBooking_PersistsPendingBooking(t *testing.T) {
	t.Parallel()

	svc, repo, _, events := newTestService()

	b, err := svc.CreateBooking(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.ID == "" {
		t.Error("expected generated booking id")
	}
	if b.Status != domain.BookingStatusPending {
		t.Errorf("expected status %s, got %s", domain.BookingStatusPending, b.Status)
	}
	if b.CustomerID != "customer-1" || b.CustomerName != "Rahul Kumar" {
		t.Error("customer fields not captured")
	}
	if b.DriverID != "" {
		t.Error("driver must be unset on a pending booking")
	}
	if b.Pickup.ID != "rajwada" || b.Delivery.ID != "vijay-nagar" {
		t.Error("route not copied from catalog")
	}
	if b.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
	if repo.CountBookings() != 1 {
		t.Errorf("expected 1 stored booking, got %d", repo.CountBookings())
	}

	got := events.Events()
	if len(got) != 1 || got[0].Status != string(domain.BookingStatusPending) {
		t.Errorf("expected one pending event, got %+v", got)
	}
}

func TestCreateBooking_PriceFixedFromTierAndDistance(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	b, err := svc.CreateBooking(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.BasePrice != 200 {
		t.Errorf("expected truck base price 200, got %d", b.BasePrice)
	}

	// Distance carries one decimal and the per-km rate is 10, so the
	// distance charge is exactly distance*10.
	want := 200 + int(b.DistanceKm*10+0.5)
	if b.TotalPrice != want {
		t.Errorf("expected total %d for %.1f km, got %d", want, b.DistanceKm, b.TotalPrice)
	}
}

func TestCreateBooking_DistanceFlooredAtMinimum(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	// Palasia and Geeta Bhawan are well under a kilometer apart.
	req := createRequest()
	req.PickupID = "palasia"
	req.DeliveryID = "geeta-bhawan"
	req.VehicleType = "auto"

	b, err := svc.CreateBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.DistanceKm != 2.5 {
		t.Errorf("expected floored distance 2.5, got %.1f", b.DistanceKm)
	}
	if b.TotalPrice != 75 { // 50 base + 2.5 km * 10
		t.Errorf("expected minimum auto fare 75, got %d", b.TotalPrice)
	}
}

func TestCreateBooking_SameLocationRejectedBeforeRepository(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	req := createRequest()
	req.DeliveryID = req.PickupID

	_, err := svc.CreateBooking(context.Background(), req)
	if !errors.Is(err, service.ErrSameLocation) {
		t.Fatalf("expected ErrSameLocation, got %v", err)
	}
	if repo.CreateCallCount != 0 {
		t.Error("repository must not be touched for an invalid route")
	}
}

func TestCreateBooking_UnknownLocationRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	req := createRequest()
	req.DeliveryID = "atlantis"

	_, err := svc.CreateBooking(context.Background(), req)
	if !errors.Is(err, service.ErrUnknownLocation) {
		t.Fatalf("expected ErrUnknownLocation, got %v", err)
	}
}

func TestCreateBooking_UnknownVehicleTypeIsAFault(t *testing.T) {
	t.Parallel()

	svc, repo, _, _ := newTestService()

	req := createRequest()
	req.VehicleType = "rocket"

	_, err := svc.CreateBooking(context.Background(), req)
	if !errors.Is(err, pricing.ErrUnknownVehicleType) {
		t.Fatalf("expected ErrUnknownVehicleType, got %v", err)
	}
	if repo.CreateCallCount != 0 {
		t.Error("a zero-priced booking must never be stored")
	}
}

func TestCreateBooking_GeneratesFourDigitOTP(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	b, err := svc.CreateBooking(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(b.OTP) != 4 {
		t.Fatalf("expected 4-digit otp, got %q", b.OTP)
	}
	for _, r := range b.OTP {
		if r < '0' || r > '9' {
			t.Fatalf("otp %q contains a non-digit", b.OTP)
		}
	}
	if b.OTP[0] == '0' {
		t.Errorf("otp %q has a leading zero", b.OTP)
	}
}

func TestCreateBooking_SecondOpenBookingRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, createRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := createRequest()
	req.PickupID = "palasia"

	_, err := svc.CreateBooking(ctx, req)
	if !errors.Is(err, service.ErrActiveBookingExists) {
		t.Fatalf("expected ErrActiveBookingExists, got %v", err)
	}
}

func TestCreateBooking_EmptyCustomerIDRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService()

	req := createRequest()
	req.CustomerID = ""

	_, err := svc.CreateBooking(context.Background(), req)
	if !errors.Is(err, service.ErrInvalidCustomerID) {
		t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
	}
}
