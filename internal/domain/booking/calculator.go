// Package booking holds the reservation calculator: pure, synchronous
// validation and pricing over a draft plus the intervals already booked for
// the selected place. It never performs I/O; callers fetch the existing
// intervals and dispatch the create request themselves.
package booking

import "time"

const day = 24 * time.Hour

// MinDuration is the shortest reservation the form accepts.
const MinDuration = time.Hour

// Interval is a half-open booked range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints do not conflict.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// HasConflict reports whether the candidate overlaps any existing interval.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.Overlaps(e) {
			return true
		}
	}
	return false
}

// DurationDays is the whole-day count used for pricing: the ceiling of the
// elapsed time over 24h. Non-positive ranges price as zero days; the 1-hour
// minimum is enforced separately by the submit gate.
func DurationDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	return int((d + day - 1) / day)
}

// TotalPrice is pricePerPerson × headCount × dayCount.
func TotalPrice(pricePerPerson float64, headCount, dayCount int) float64 {
	return pricePerPerson * float64(headCount) * float64(dayCount)
}

// CapacityExceeded reports whether the place declares a recommended maximum
// and the head count exceeds it. Places without a declared range never flag.
func CapacityExceeded(occupancy string, headCount int) bool {
	_, max, ok := ParseOccupancy(occupancy)
	if !ok {
		return false
	}
	return headCount > max
}

// ValidateForSubmit is the aggregate submission gate. It returns the first
// failing rule, in a fixed order, or nil when the draft may be dispatched:
// authenticated; place, start, and end selected; start < end; at least one
// hour long; no conflict with existing reservations; within capacity; and a
// complete attendee list where every age classifies.
func ValidateForSubmit(d *Draft, existing []Interval, authenticated bool) error {
	if !authenticated {
		return ErrNotAuthenticated
	}
	if d.Place == nil {
		return ErrPlaceRequired
	}
	if d.Start.IsZero() {
		return ErrStartRequired
	}
	if d.End.IsZero() {
		return ErrEndRequired
	}
	if !d.Start.Before(d.End) {
		return ErrStartAfterEnd
	}
	if d.End.Sub(d.Start) < MinDuration {
		return ErrTooShort
	}
	if HasConflict(d.Interval(), existing) {
		return ErrConflict
	}
	if CapacityExceeded(d.Place.Occupancy, d.HeadCount) {
		return ErrCapacityExceeded
	}
	if d.HeadCount != len(d.Attendees) {
		return ErrHeadCountMismatch
	}
	for _, a := range d.Attendees {
		if ClassifyAge(a.Age) == BracketNone {
			return ErrInvalidAttendeeAge
		}
	}
	return nil
}
