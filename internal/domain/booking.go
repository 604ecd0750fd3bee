package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusExpired   BookingStatus = "expired"
)

// ActiveStatuses are the statuses whose bookings hold their range against
// the property. Everything else is terminal history.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusCancelled, BookingStatusCompleted, BookingStatusRejected, BookingStatusExpired:
		return true
	}
	return false
}

type BookingKind string

const (
	KindShortlet       BookingKind = "shortlet"
	KindRental         BookingKind = "rental"
	KindSaleInspection BookingKind = "sale_inspection"
)

func (k BookingKind) Valid() bool {
	switch k {
	case KindShortlet, KindRental, KindSaleInspection:
		return true
	}
	return false
}

// IsStay reports whether the kind occupies the property for a range of
// nights, as opposed to an inspection visit.
func (k BookingKind) IsStay() bool {
	return k == KindShortlet || k == KindRental
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPartial   PaymentStatus = "partial"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

type Booking struct {
	ID            string        `json:"id"`
	PropertyID    string        `json:"property_id"`
	RequesterID   string        `json:"requester_id"`
	OwnerID       string        `json:"owner_id"`
	Kind          BookingKind   `json:"kind"`
	Range         DateRange     `json:"range"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	HoldExpiresAt time.Time     `json:"hold_expires_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	CancelledBy        *string    `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}

// Hold is the availability projection of an active booking: just enough to
// run conflict detection without exposing the rest of the record.
func (b *Booking) Hold() Hold {
	return Hold{BookingID: b.ID, Kind: b.Kind, Range: b.Range}
}

type ReserveInput struct {
	PropertyID  string
	RequesterID string
	OwnerID     string
	Kind        BookingKind
	CheckIn     time.Time
	CheckOut    time.Time
	SlotAt      time.Time // inspection start; expanded to a range by the coordinator
}

// Cancellation is recorded on cancel and reject transitions.
type Cancellation struct {
	By     string
	At     time.Time
	Reason string
}

// StateChange is the outbound payload emitted on every successful
// transition. From is empty for the creation event.
type StateChange struct {
	BookingID  string        `json:"booking_id"`
	PropertyID string        `json:"property_id"`
	From       BookingStatus `json:"from,omitempty"`
	To         BookingStatus `json:"to"`
	OccurredAt time.Time     `json:"occurred_at"`
}
