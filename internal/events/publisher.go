package events

import (
	"context"

	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/talabi-dev/StayBooker/internal/mq"
	"github.com/wb-go/wbf/logger"
)

const (
	KeyBookingCreated = "booking.created"
	KeyStatusChanged  = "booking.status_changed"
)

// Publisher pushes booking lifecycle events onto the topic exchange for
// the payment, messaging and dashboard collaborators. With no broker
// configured it degrades to a logging no-op, so a single-instance
// deployment without RabbitMQ still works.
type Publisher struct {
	pub    *mq.Publisher
	logger logger.Logger
}

func NewPublisher(url, exchange string, logger logger.Logger) (*Publisher, error) {
	if url == "" {
		logger.Warn("rabbitmq url is empty, event publishing disabled")
		return &Publisher{pub: nil, logger: logger}, nil
	}

	pub, err := mq.NewPublisher(url, exchange)
	if err != nil {
		return nil, err
	}
	return &Publisher{pub: pub, logger: logger}, nil
}

func (p *Publisher) BookingCreated(ctx context.Context, b *domain.Booking) {
	p.send(ctx, KeyBookingCreated, domain.StateChange{
		BookingID:  b.ID,
		PropertyID: b.PropertyID,
		To:         b.Status,
		OccurredAt: b.CreatedAt,
	})
}

func (p *Publisher) StatusChanged(ctx context.Context, change domain.StateChange) {
	p.send(ctx, KeyStatusChanged, change)
}

func (p *Publisher) send(ctx context.Context, key string, change domain.StateChange) {
	if p.pub == nil {
		p.logger.Debug("event skipped (publisher disabled)",
			logger.String("key", key),
			logger.String("booking_id", change.BookingID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		p.logger.Debug("event skipped (context cancelled)",
			logger.String("booking_id", change.BookingID),
		)
		return
	}

	if err := p.pub.PublishJSON(ctx, key, change); err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("key", key),
			logger.String("booking_id", change.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *Publisher) Close() error {
	if p.pub == nil {
		return nil
	}
	return p.pub.Close()
}
