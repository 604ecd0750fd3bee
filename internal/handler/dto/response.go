package dto

import (
	"time"

	"github.com/talabi-dev/StayBooker/internal/domain"
)

type RangeResponse struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

type BookingResponse struct {
	ID                 string        `json:"id"`
	PropertyID         string        `json:"property_id"`
	RequesterID        string        `json:"requester_id"`
	OwnerID            string        `json:"owner_id"`
	Kind               string        `json:"kind"`
	Range              RangeResponse `json:"range"`
	Status             string        `json:"status"`
	PaymentStatus      string        `json:"payment_status"`
	HoldExpiresAt      string        `json:"hold_expires_at"`
	CreatedAt          string        `json:"created_at"`
	CancelledBy        *string       `json:"cancelled_by,omitempty"`
	CancelledAt        *string       `json:"cancelled_at,omitempty"`
	CancellationReason *string       `json:"cancellation_reason,omitempty"`
}

type HoldResponse struct {
	BookingID string        `json:"booking_id"`
	Kind      string        `json:"kind"`
	Range     RangeResponse `json:"range"`
}

// ErrorResponse carries the conflicting range on 409 responses so the
// caller can suggest alternative dates.
type ErrorResponse struct {
	Error    string         `json:"error"`
	Conflict *RangeResponse `json:"conflict,omitempty"`
}

func ToRangeResponse(r domain.DateRange) RangeResponse {
	return RangeResponse{
		CheckIn:  r.CheckIn.Format(time.RFC3339),
		CheckOut: r.CheckOut.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID,
		PropertyID:         b.PropertyID,
		RequesterID:        b.RequesterID,
		OwnerID:            b.OwnerID,
		Kind:               string(b.Kind),
		Range:              ToRangeResponse(b.Range),
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		HoldExpiresAt:      b.HoldExpiresAt.Format(time.RFC3339),
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		CancelledBy:        b.CancelledBy,
		CancellationReason: b.CancellationReason,
	}
	if b.CancelledAt != nil {
		at := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &at
	}
	return resp
}

func ToHoldResponse(h domain.Hold) HoldResponse {
	return HoldResponse{
		BookingID: h.BookingID,
		Kind:      string(h.Kind),
		Range:     ToRangeResponse(h.Range),
	}
}
