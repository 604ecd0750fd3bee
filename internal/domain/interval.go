package domain

import "time"

// DateRange is a half-open interval [CheckIn, CheckOut). Half-open means a
// checkout day can be the next guest's check-in day without the two ranges
// touching.
type DateRange struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
}

func (r DateRange) Valid() bool {
	return r.CheckIn.Before(r.CheckOut)
}

// Overlaps is the standard half-open interval test: [a,b) and [c,d)
// intersect iff a < d && c < b.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(r.CheckOut)
}

// Hold is an active claim on a property's calendar.
type Hold struct {
	BookingID string      `json:"booking_id"`
	Kind      BookingKind `json:"kind"`
	Range     DateRange   `json:"range"`
}

// FindConflict reports the first hold the candidate range collides with,
// or nil if the range is free.
//
// Stays (shortlet, rental) conflict with other stays by interval overlap.
// Inspections conflict only with other inspections whose start instants are
// closer than minGap. Stays and inspections never conflict with each other:
// a viewing is a different resource granularity than occupancy.
func FindConflict(holds []Hold, candidate DateRange, kind BookingKind, minGap time.Duration) *Hold {
	for i := range holds {
		h := holds[i]
		if kind.IsStay() != h.Kind.IsStay() {
			continue
		}
		if kind.IsStay() {
			if candidate.Overlaps(h.Range) {
				return &h
			}
			continue
		}
		gap := candidate.CheckIn.Sub(h.Range.CheckIn)
		if gap < 0 {
			gap = -gap
		}
		if gap < minGap {
			return &h
		}
	}
	return nil
}
