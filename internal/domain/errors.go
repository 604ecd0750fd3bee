package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrValidation      = errors.New("validation error")
)

var (
	// ErrRangeConflict is the match target for ConflictError.
	ErrRangeConflict = errors.New("requested range conflicts with an existing hold")
	// ErrInvalidTransition is the match target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("transition not allowed")
	// ErrPropertyBusy means the per-property lock could not be acquired in
	// time. Transient; callers should retry with backoff.
	ErrPropertyBusy = errors.New("property is locked by another request")
)

// ConflictError carries the range the request collided with, and nothing
// else about the other booking: the conflicting party's details are not the
// caller's business.
type ConflictError struct {
	PropertyID  string
	Conflicting DateRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("property %s: range conflicts with existing hold [%s, %s)",
		e.PropertyID,
		e.Conflicting.CheckIn.Format("2006-01-02 15:04"),
		e.Conflicting.CheckOut.Format("2006-01-02 15:04"),
	)
}

func (e *ConflictError) Unwrap() error { return ErrRangeConflict }

// InvalidTransitionError names the attempted (status, event) pair so the
// caller can see what the booking's actual status was.
type InvalidTransitionError struct {
	From  BookingStatus
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot apply %q to a %s booking", e.Event, e.From)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
