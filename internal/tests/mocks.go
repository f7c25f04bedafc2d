package tests

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"booking/internal/domain"
	"booking/internal/redis"
	"booking/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is an in-memory implementation of BookingRepository
// with the same compare-and-swap semantics as the Postgres one. Records are
// kept in insertion order.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	index    map[string]int

	// Counters for verification
	CreateCallCount int32
	UpdateCallCount int32

	// Error injection
	CreateError error
	UpdateError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		index: make(map[string]int),
	}
}

// AddBooking seeds a booking, defaulting its version to 1.
func (m *MockBookingRepository) AddBooking(b *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b.Version == 0 {
		b.Version = 1
	}
	m.index[b.ID] = len(m.bookings)
	m.bookings = append(m.bookings, b)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.index[b.ID]; ok {
		return repository.ErrDuplicateID
	}
	b.Version = 1
	stored := *b
	m.index[b.ID] = len(m.bookings)
	m.bookings = append(m.bookings, &stored)
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *m.bookings[i]
	return &copy, nil
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Booking, 0, len(m.bookings))
	for i := len(m.bookings) - 1; i >= 0; i-- {
		copy := *m.bookings[i]
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockBookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.index[b.ID]
	if !ok {
		return repository.ErrNotFound
	}
	if m.bookings[i].Version != b.Version {
		return repository.ErrStaleVersion
	}
	b.Version++
	stored := *b
	m.bookings[i] = &stored
	return nil
}

func (m *MockBookingRepository) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.CustomerID == customerID {
			copy := *b
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockBookingRepository) GetActiveByCustomerID(ctx context.Context, customerID string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.CustomerID == customerID && b.Status.Active() {
			copy := *b
			return &copy, nil
		}
	}
	return nil, nil
}

func (m *MockBookingRepository) GetPendingByVehicleType(ctx context.Context, vehicleType string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.Status == domain.BookingStatusPending && b.VehicleType == vehicleType {
			copy := *b
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockBookingRepository) GetActiveByDriverID(ctx context.Context, driverID string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.DriverID == driverID &&
			(b.Status == domain.BookingStatusAccepted || b.Status == domain.BookingStatusInProgress) {
			copy := *b
			return &copy, nil
		}
	}
	return nil, nil
}

// GetBooking returns the stored booking for test assertions.
func (m *MockBookingRepository) GetBooking(id string) *domain.Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[id]
	if !ok {
		return nil
	}
	return m.bookings[i]
}

// CountBookings returns the number of stored bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory implementation of the booking lock store.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[string]bool

	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{locks: make(map[string]bool)}
}

func (m *MockLockStore) AcquireBookingLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[bookingID] {
		return false, nil
	}
	m.locks[bookingID] = true
	return true, nil
}

func (m *MockLockStore) ReleaseBookingLock(ctx context.Context, bookingID string) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, bookingID)
	return nil
}

// Held reports whether the lock for a booking is currently held.
func (m *MockLockStore) Held(bookingID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locks[bookingID]
}

// ──────────────────────────────────────────────
// MOCK EVENT PUBLISHER
// ──────────────────────────────────────────────

// MockEventPublisher records published status transitions.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []redis.BookingEvent

	// Error injection
	PublishError error
}

// NewMockEventPublisher creates a new mock event publisher.
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) PublishStatusChange(ctx context.Context, b *domain.Booking) error {
	if m.PublishError != nil {
		return m.PublishError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, redis.BookingEvent{
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		DriverID:    b.DriverID,
		VehicleType: b.VehicleType,
		Status:      string(b.Status),
	})
	return nil
}

// Events returns the recorded events.
func (m *MockEventPublisher) Events() []redis.BookingEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]redis.BookingEvent, len(m.events))
	copy(out, m.events)
	return out
}
