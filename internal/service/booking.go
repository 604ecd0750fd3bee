package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/talabi-dev/StayBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SystemActor marks transitions driven by the service itself (payment
// events, sweeps) rather than a requester or owner.
const SystemActor = "system"

// Policy is the scheduling configuration the coordinator runs under.
type Policy struct {
	// HoldWindow is how long a pending booking keeps its hold before the
	// sweeper may expire it.
	HoldWindow time.Duration
	// InspectionDuration expands a sale_inspection instant into a range.
	InspectionDuration time.Duration
	// InspectionGap is the minimum spacing between inspection slot starts
	// on one property. Must be at least InspectionDuration.
	InspectionGap time.Duration
	// LockTimeout bounds the wait for the per-property lock.
	LockTimeout time.Duration
	// AutoConfirmOnPayment approves a pending booking when its payment
	// completes, without waiting for the owner.
	AutoConfirmOnPayment bool
}

type BookingService struct {
	repo      ports.BookingRepo
	publisher ports.EventPublisher
	locks     *propertyLocks
	policy    Policy
	logger    logger.Logger
}

func NewBookingService(
	repo ports.BookingRepo,
	publisher ports.EventPublisher,
	policy Policy,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		publisher: publisher,
		locks:     newPropertyLocks(policy.LockTimeout),
		policy:    policy,
		logger:    logger,
	}
}

// Reserve is the only path that creates a booking. Conflict check and hold
// registration happen under the per-property lock, so two overlapping
// requests for one property cannot both succeed.
func (s *BookingService) Reserve(ctx context.Context, in domain.ReserveInput) (*domain.Booking, error) {
	rng, err := s.normalizeRange(in)
	if err != nil {
		return nil, err
	}

	release, err := s.locks.Acquire(in.PropertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	holds, err := s.repo.ActiveHolds(ctx, in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("read active holds: %w", err)
	}

	if h := domain.FindConflict(holds, rng, in.Kind, s.policy.InspectionGap); h != nil {
		return nil, &domain.ConflictError{PropertyID: in.PropertyID, Conflicting: h.Range}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		PropertyID:    in.PropertyID,
		RequesterID:   in.RequesterID,
		OwnerID:       in.OwnerID,
		Kind:          in.Kind,
		Range:         rng,
		Status:        domain.BookingStatusPending,
		PaymentStatus: domain.PaymentStatusPending,
		HoldExpiresAt: now.Add(s.policy.HoldWindow),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err = s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking reserved",
		logger.String("booking_id", booking.ID),
		logger.String("property_id", booking.PropertyID),
		logger.String("kind", string(booking.Kind)),
	)

	go s.publisher.BookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) normalizeRange(in domain.ReserveInput) (domain.DateRange, error) {
	var zero domain.DateRange

	if !in.Kind.Valid() {
		return zero, fmt.Errorf("%w: unknown booking kind %q", domain.ErrValidation, in.Kind)
	}
	if in.PropertyID == "" || in.RequesterID == "" || in.OwnerID == "" {
		return zero, fmt.Errorf("%w: property_id, requester_id and owner_id are required", domain.ErrValidation)
	}

	if in.Kind == domain.KindSaleInspection {
		if in.SlotAt.IsZero() {
			return zero, fmt.Errorf("%w: slot_at is required for inspections", domain.ErrValidation)
		}
		start := in.SlotAt.UTC()
		return domain.DateRange{CheckIn: start, CheckOut: start.Add(s.policy.InspectionDuration)}, nil
	}

	rng := domain.DateRange{CheckIn: in.CheckIn.UTC(), CheckOut: in.CheckOut.UTC()}
	if rng.CheckIn.IsZero() || rng.CheckOut.IsZero() {
		return zero, fmt.Errorf("%w: check_in and check_out are required for stays", domain.ErrValidation)
	}
	if !rng.Valid() {
		return zero, fmt.Errorf("%w: check_in must be before check_out", domain.ErrValidation)
	}
	return rng, nil
}

// Apply is the single mutation path for booking statuses. Hold release is
// implicit: a booking in a terminal status no longer counts as a hold.
func (s *BookingService) Apply(ctx context.Context, bookingID string, event domain.Event, actorID, reason string) (*domain.Booking, error) {
	if !event.Valid() {
		return nil, fmt.Errorf("%w: unknown event %q", domain.ErrValidation, event)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	release, err := s.locks.Acquire(booking.PropertyID)
	if err != nil {
		return nil, err
	}
	defer release()

	to, err := domain.Next(booking.Status, event)
	if err != nil {
		return nil, err
	}

	var c *domain.Cancellation
	if to == domain.BookingStatusCancelled || to == domain.BookingStatusRejected {
		c = &domain.Cancellation{By: actorID, At: time.Now().UTC(), Reason: reason}
	}

	updated, err := s.repo.ApplyTransition(ctx, bookingID, event, booking.Status, to, c)
	if err != nil {
		return nil, fmt.Errorf("apply %s: %w", event, err)
	}

	s.logger.Info("booking transitioned",
		logger.String("booking_id", bookingID),
		logger.String("from", string(booking.Status)),
		logger.String("to", string(to)),
		logger.String("actor", actorID),
	)

	go s.publisher.StatusChanged(context.WithoutCancel(ctx), domain.StateChange{
		BookingID:  updated.ID,
		PropertyID: updated.PropertyID,
		From:       booking.Status,
		To:         to,
		OccurredAt: updated.UpdatedAt,
	})

	return updated, nil
}

// ApplyPaymentUpdate records a payment status reported by the payment
// collaborator and applies the configured policy: a completed payment may
// auto-approve the booking, a failed one auto-cancels it. A booking the
// owner already resolved is left alone.
func (s *BookingService) ApplyPaymentUpdate(ctx context.Context, bookingID string, status domain.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, status)
	}

	booking, err := s.repo.SetPaymentStatus(ctx, bookingID, status)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}

	s.logger.Info("payment status recorded",
		logger.String("booking_id", bookingID),
		logger.String("payment_status", string(status)),
	)

	var event domain.Event
	var reason string
	switch {
	case status == domain.PaymentStatusCompleted && s.policy.AutoConfirmOnPayment:
		event, reason = domain.EventApprove, "payment completed"
	case status == domain.PaymentStatusFailed:
		event, reason = domain.EventCancel, "payment failed"
	default:
		return nil
	}

	if booking.Status != domain.BookingStatusPending {
		return nil
	}

	if _, err = s.Apply(ctx, bookingID, event, SystemActor, reason); err != nil {
		// A concurrent owner action may have resolved the booking first.
		if errors.Is(err, domain.ErrInvalidTransition) {
			s.logger.Warn("payment policy skipped, booking already resolved",
				logger.String("booking_id", bookingID),
			)
			return nil
		}
		return err
	}

	return nil
}

// ExpireStale reaps pending bookings whose hold deadline has passed. The
// underlying update is conditional, so concurrently approved bookings are
// simply not matched.
func (s *BookingService) ExpireStale(ctx context.Context) ([]*domain.Booking, error) {
	expired, err := s.repo.ExpireStale(ctx)
	if err != nil {
		return nil, fmt.Errorf("expire stale: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("stale holds released",
			logger.Int("count", len(expired)),
		)
		go s.publishSwept(context.WithoutCancel(ctx), expired, domain.BookingStatusPending)
	}

	return expired, nil
}

// CompleteElapsed closes out confirmed bookings whose range is fully in
// the past, releasing the range into history.
func (s *BookingService) CompleteElapsed(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.repo.CompleteElapsed(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("elapsed bookings completed",
			logger.Int("count", len(completed)),
		)
		go s.publishSwept(context.WithoutCancel(ctx), completed, domain.BookingStatusConfirmed)
	}

	return completed, nil
}

func (s *BookingService) publishSwept(ctx context.Context, bookings []*domain.Booking, from domain.BookingStatus) {
	for _, b := range bookings {
		s.publisher.StatusChanged(ctx, domain.StateChange{
			BookingID:  b.ID,
			PropertyID: b.PropertyID,
			From:       from,
			To:         b.Status,
			OccurredAt: b.UpdatedAt,
		})
	}
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookingService) ActiveHolds(ctx context.Context, propertyID string) ([]domain.Hold, error) {
	return s.repo.ActiveHolds(ctx, propertyID)
}

func (s *BookingService) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error) {
	return s.repo.ListByProperty(ctx, propertyID)
}

func (s *BookingService) ListByRequester(ctx context.Context, requesterID string) ([]*domain.Booking, error) {
	return s.repo.ListByRequester(ctx, requesterID)
}
