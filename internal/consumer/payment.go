package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/talabi-dev/StayBooker/internal/domain"
	"github.com/talabi-dev/StayBooker/internal/mq"
	"github.com/wb-go/wbf/logger"
)

// PaymentKeys are the routing keys the payment collaborator publishes
// under; the suffix is the payment status.
var PaymentKeys = []string{
	"payment.pending", "payment.partial", "payment.completed",
	"payment.failed", "payment.refunded",
}

type PaymentStatusChanged struct {
	Event   string `json:"event"`
	Version int    `json:"version"`
	Data    struct {
		PaymentID string `json:"payment_id"`
		BookingID string `json:"booking_id"`
		Status    string `json:"status"`
	} `json:"data"`
}

type paymentApplier interface {
	ApplyPaymentUpdate(ctx context.Context, bookingID string, status domain.PaymentStatus) error
}

// PaymentConsumer feeds payment-status-changed events from the broker into
// the booking service.
type PaymentConsumer struct {
	svc    paymentApplier
	cons   *mq.Consumer
	logger logger.Logger
}

func NewPaymentConsumer(svc paymentApplier, cons *mq.Consumer, logger logger.Logger) *PaymentConsumer {
	return &PaymentConsumer{svc: svc, cons: cons, logger: logger}
}

func (pc *PaymentConsumer) Run(ctx context.Context) error {
	msgs, err := pc.cons.Deliveries(ctx)
	if err != nil {
		return err
	}

	go func() {
		for d := range msgs {
			status, ok := strings.CutPrefix(d.RoutingKey, "payment.")
			if !ok {
				_ = d.Ack(false)
				continue
			}

			var evt PaymentStatusChanged
			if err := json.Unmarshal(d.Body, &evt); err != nil {
				pc.logger.Error("payment event unmarshal failed",
					logger.String("routing_key", d.RoutingKey),
					logger.String("error", err.Error()),
				)
				_ = d.Nack(false, false)
				continue
			}
			if evt.Data.BookingID == "" {
				pc.logger.Warn("payment event without booking_id skipped",
					logger.String("routing_key", d.RoutingKey),
				)
				_ = d.Ack(false)
				continue
			}

			err := pc.svc.ApplyPaymentUpdate(ctx, evt.Data.BookingID, domain.PaymentStatus(status))
			switch {
			case err == nil:
				_ = d.Ack(false)
			case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrValidation):
				// nothing to retry; drop the message
				pc.logger.Warn("payment event dropped",
					logger.String("booking_id", evt.Data.BookingID),
					logger.String("error", err.Error()),
				)
				_ = d.Ack(false)
			default:
				pc.logger.Error("payment event failed, requeued",
					logger.String("booking_id", evt.Data.BookingID),
					logger.String("error", err.Error()),
				)
				_ = d.Nack(false, true)
			}
		}
	}()

	return nil
}
