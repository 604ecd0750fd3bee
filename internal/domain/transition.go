package domain

// Event is something that happens to a booking and may move it to another
// status.
type Event string

const (
	EventApprove  Event = "approve"
	EventReject   Event = "reject"
	EventCancel   Event = "cancel"
	EventComplete Event = "complete"
	EventExpire   Event = "expire"
)

func (e Event) Valid() bool {
	switch e {
	case EventApprove, EventReject, EventCancel, EventComplete, EventExpire:
		return true
	}
	return false
}

// transitions is the single source of truth for the booking lifecycle.
// A (status, event) pair absent from this table is illegal.
var transitions = map[BookingStatus]map[Event]BookingStatus{
	BookingStatusPending: {
		EventApprove: BookingStatusConfirmed,
		EventReject:  BookingStatusRejected,
		EventCancel:  BookingStatusCancelled,
		EventExpire:  BookingStatusExpired,
	},
	BookingStatusConfirmed: {
		EventCancel:   BookingStatusCancelled,
		EventComplete: BookingStatusCompleted,
	},
}

// Next returns the status the booking moves to when event is applied from
// the given status. Every pair outside the transition table returns an
// InvalidTransitionError.
func Next(from BookingStatus, event Event) (BookingStatus, error) {
	if to, ok := transitions[from][event]; ok {
		return to, nil
	}
	return "", &InvalidTransitionError{From: from, Event: event}
}
