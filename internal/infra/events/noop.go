package events

import (
	"context"

	"github.com/rmarchan/ReservaCanchasService/internal/domain"
)

// NoopPublisher is used when the events broker is not configured.
// Booking keeps working; nothing is emitted.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event.
func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

// Publish drops the event.
func (p *NoopPublisher) Publish(_ context.Context, _ domain.Event) error {
	return nil
}

// Close is a no-op.
func (p *NoopPublisher) Close() error {
	return nil
}
