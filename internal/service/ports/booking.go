package ports

import (
	"context"

	"github.com/talabi-dev/StayBooker/internal/domain"
)

type BookingRepo interface {
	// Create inserts a pending booking after re-checking the non-overlap
	// invariant inside its own transaction. Returns a ConflictError when
	// the range is already held.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// ActiveHolds returns the ranges held by pending and confirmed
	// bookings of the property.
	ActiveHolds(ctx context.Context, propertyID string) ([]domain.Hold, error)
	// ApplyTransition conditionally moves a booking from one status to
	// another. When the stored status no longer matches from, it returns
	// an InvalidTransitionError carrying the current status.
	ApplyTransition(ctx context.Context, id string, event domain.Event, from, to domain.BookingStatus, c *domain.Cancellation) (*domain.Booking, error)
	SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error)
	// ExpireStale moves pending bookings past their hold deadline to
	// expired and returns them.
	ExpireStale(ctx context.Context) ([]*domain.Booking, error)
	// CompleteElapsed moves confirmed bookings whose range has fully
	// passed to completed and returns them.
	CompleteElapsed(ctx context.Context) ([]*domain.Booking, error)
	ListByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error)
	ListByRequester(ctx context.Context, requesterID string) ([]*domain.Booking, error)
}
