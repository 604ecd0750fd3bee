package ports

import (
	"context"

	"github.com/talabi-dev/StayBooker/internal/domain"
)

// EventPublisher fans booking lifecycle events out to the payment,
// messaging and dashboard collaborators. Delivery is best effort and never
// blocks a booking operation.
type EventPublisher interface {
	BookingCreated(ctx context.Context, b *domain.Booking)
	StatusChanged(ctx context.Context, change domain.StateChange)
}
