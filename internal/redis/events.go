package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"booking/internal/domain"
)

// bookingEventsChannel is the pub/sub channel carrying status transitions.
// Consumers subscribe to observe transitions without fixed-latency polling;
// polling the HTTP endpoints remains the degraded mode.
const bookingEventsChannel = "bookings:events"

// BookingEvent is the payload published on every status transition.
type BookingEvent struct {
	BookingID   string `json:"booking_id"`
	CustomerID  string `json:"customer_id"`
	DriverID    string `json:"driver_id,omitempty"`
	VehicleType string `json:"vehicle_type"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurred_at"`
}

// EventPublisher publishes booking transitions to Redis pub/sub.
type EventPublisher struct {
	client *redis.Client
}

// NewEventPublisher creates a new EventPublisher.
func NewEventPublisher(client *redis.Client) *EventPublisher {
	return &EventPublisher{client: client}
}

// PublishStatusChange announces a booking's new status.
func (p *EventPublisher) PublishStatusChange(ctx context.Context, b *domain.Booking) error {
	event := BookingEvent{
		BookingID:   b.ID,
		CustomerID:  b.CustomerID,
		DriverID:    b.DriverID,
		VehicleType: b.VehicleType,
		Status:      string(b.Status),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, bookingEventsChannel, data).Err()
}

// Subscribe returns a subscription to the booking events channel. The caller
// owns the returned PubSub and must close it.
func (p *EventPublisher) Subscribe(ctx context.Context) *redis.PubSub {
	return p.client.Subscribe(ctx, bookingEventsChannel)
}
