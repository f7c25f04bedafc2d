package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booking/internal/catalog"
	"booking/internal/domain"
	"booking/internal/geo"
	"booking/internal/otp"
	"booking/internal/pricing"
	"booking/internal/redis"
	"booking/internal/repository"
)

// minDistanceKm is the minimum-fare floor: bookings shorter than this are
// priced as if they covered it.
const minDistanceKm = 2.5

// bookingLockTTL bounds how long a crashed mutation can keep a booking locked.
const bookingLockTTL = 10 * time.Second

// BookingService is the booking lifecycle engine. All mutations go through
// it; UI collaborators only read via its query helpers.
type BookingService struct {
	bookingRepo repository.BookingRepository
	lockStore   redis.LockStoreInterface
	events      redis.EventPublisherInterface
}

// NewBookingService creates a new BookingService. lockStore and events may
// be nil; the service then runs without cross-process serialization and
// without change notifications (single-process deployments, tests).
func NewBookingService(
	bookingRepo repository.BookingRepository,
	lockStore redis.LockStoreInterface,
	events redis.EventPublisherInterface,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		lockStore:   lockStore,
		events:      events,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
// Pickup and delivery reference the location catalog by ID.
type CreateBookingRequest struct {
	CustomerID    string
	CustomerName  string
	CustomerPhone string
	PickupID      string
	DeliveryID    string
	VehicleType   string
}

// CreateBooking prices a new transport job and persists it in the pending
// state. Distance is the great-circle distance between the catalog points,
// floored at the minimum-fare distance. The booking's OTP is generated here
// and never reissued.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.CustomerID == "" {
		return nil, ErrInvalidCustomerID
	}

	if req.PickupID == req.DeliveryID {
		return nil, ErrSameLocation
	}

	pickup, ok := catalog.LocationByID(req.PickupID)
	if !ok {
		return nil, ErrUnknownLocation
	}

	delivery, ok := catalog.LocationByID(req.DeliveryID)
	if !ok {
		return nil, ErrUnknownLocation
	}

	// One open booking per customer, enforced at the engine.
	active, err := s.bookingRepo.GetActiveByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrActiveBookingExists
	}

	distance := geo.Distance(pickup.Lat, pickup.Lng, delivery.Lat, delivery.Lng)
	if distance < minDistanceKm {
		distance = minDistanceKm
	}

	quote, err := pricing.Calculate(req.VehicleType, distance)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Pickup:        pickup,
		Delivery:      delivery,
		VehicleType:   req.VehicleType,
		DistanceKm:    distance,
		BasePrice:     quote.BasePrice,
		TotalPrice:    quote.TotalPrice,
		OTP:           otp.Generate(),
		Status:        domain.BookingStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.publish(ctx, b)

	return b, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

// GetCustomerBookings retrieves a customer's bookings in insertion order,
// terminal ones included.
func (s *BookingService) GetCustomerBookings(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	return s.bookingRepo.GetByCustomerID(ctx, customerID)
}

// GetActiveCustomerBooking retrieves the customer's open booking, nil if
// everything is completed or cancelled.
func (s *BookingService) GetActiveCustomerBooking(ctx context.Context, customerID string) (*domain.Booking, error) {
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}

	return s.bookingRepo.GetActiveByCustomerID(ctx, customerID)
}

// GetDriverRequests retrieves the pending queue for one vehicle type.
func (s *BookingService) GetDriverRequests(ctx context.Context, vehicleType string) ([]*domain.Booking, error) {
	if _, ok := pricing.VehicleTypeByID(vehicleType); !ok {
		return nil, pricing.ErrUnknownVehicleType
	}

	return s.bookingRepo.GetPendingByVehicleType(ctx, vehicleType)
}

// GetActiveDriverBooking retrieves the driver's current booking, nil if none.
func (s *BookingService) GetActiveDriverBooking(ctx context.Context, driverID string) (*domain.Booking, error) {
	if driverID == "" {
		return nil, ErrInvalidDriverID
	}

	return s.bookingRepo.GetActiveByDriverID(ctx, driverID)
}

// publish announces a status transition. Delivery is best effort: consumers
// that miss an event fall back to polling.
func (s *BookingService) publish(ctx context.Context, b *domain.Booking) {
	if s.events == nil {
		return
	}
	_ = s.events.PublishStatusChange(ctx, b)
}
