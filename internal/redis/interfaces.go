package redis

import (
	"context"
	"time"

	"booking/internal/domain"
)

// LockStoreInterface defines the interface for per-booking mutation locks.
type LockStoreInterface interface {
	AcquireBookingLock(ctx context.Context, bookingID string, ttl time.Duration) (bool, error)
	ReleaseBookingLock(ctx context.Context, bookingID string) error
}

// EventPublisherInterface defines the interface for announcing booking
// status transitions.
type EventPublisherInterface interface {
	PublishStatusChange(ctx context.Context, b *domain.Booking) error
}

// Ensure concrete types implement interfaces.
var (
	_ LockStoreInterface      = (*LockStore)(nil)
	_ EventPublisherInterface = (*EventPublisher)(nil)
)
