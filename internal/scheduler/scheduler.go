package scheduler

import (
	"context"
	"time"

	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingSweeper interface {
	ExpireStale(ctx context.Context) ([]*domain.Booking, error)
	CompleteElapsed(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically reclaims abandoned holds and closes out elapsed
// stays. Both sweeps are conditional updates, so running several instances
// at once is safe.
type Scheduler struct {
	sweeper  bookingSweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper bookingSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs both sweeps; a failure in one does not skip the other.
func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.sweeper.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("failed to expire stale holds",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range expired {
		s.logger.Info("hold expired",
			logger.String("booking_id", b.ID),
			logger.String("property_id", b.PropertyID),
		)
	}

	completed, err := s.sweeper.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed bookings",
			logger.String("error", err.Error()),
		)
	}
	for _, b := range completed {
		s.logger.Info("booking completed",
			logger.String("booking_id", b.ID),
			logger.String("property_id", b.PropertyID),
		)
	}
}
