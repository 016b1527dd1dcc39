package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/comunitur/comunitur/internal/api"
)

func TestClassifyAgeBrackets(t *testing.T) {
	cases := []struct {
		age  int
		want AgeBracket
	}{
		{-1, BracketNone},
		{0, BracketInfant},
		{1, BracketInfant},
		{2, BracketChild},
		{12, BracketChild},
		{13, BracketAdult},
		{59, BracketAdult},
		{60, BracketSenior},
		{95, BracketSenior},
	}
	for _, tc := range cases {
		if got := ClassifyAge(tc.age); got != tc.want {
			t.Errorf("ClassifyAge(%d) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 1, hour, min, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"overlapping", Interval{at(10, 0), at(12, 0)}, Interval{at(11, 0), at(13, 0)}, true},
		{"contained", Interval{at(10, 0), at(14, 0)}, Interval{at(11, 0), at(12, 0)}, true},
		{"identical", Interval{at(10, 0), at(12, 0)}, Interval{at(10, 0), at(12, 0)}, true},
		{"touching endpoints", Interval{at(8, 0), at(10, 0)}, Interval{at(10, 0), at(12, 0)}, false},
		{"disjoint", Interval{at(8, 0), at(9, 0)}, Interval{at(10, 0), at(12, 0)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// Overlap is symmetric.
			if got := tc.b.Overlaps(tc.a); got != tc.want {
				t.Fatalf("reversed Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDurationDays(t *testing.T) {
	start := at(10, 0)
	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"two hours rounds up to one day", start.Add(2 * time.Hour), 1},
		{"exactly one day", start.Add(24 * time.Hour), 1},
		{"one day and a minute", start.Add(24*time.Hour + time.Minute), 2},
		{"three full days", start.Add(72 * time.Hour), 3},
		{"zero", start, 0},
		{"negative", start.Add(-time.Hour), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DurationDays(start, tc.end); got != tc.want {
				t.Fatalf("DurationDays = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestTotalPrice(t *testing.T) {
	if got := TotalPrice(20.00, 3, 2); got != 120.00 {
		t.Fatalf("TotalPrice(20,3,2) = %v, want 120", got)
	}

	// Monotonic non-decreasing in heads and days.
	prev := 0.0
	for heads := 0; heads <= 5; heads++ {
		got := TotalPrice(15.50, heads, 2)
		if got < prev {
			t.Fatalf("price decreased when heads grew: %v -> %v", prev, got)
		}
		prev = got
	}
	prev = 0.0
	for days := 0; days <= 5; days++ {
		got := TotalPrice(15.50, 2, days)
		if got < prev {
			t.Fatalf("price decreased when days grew: %v -> %v", prev, got)
		}
		prev = got
	}
}

func TestCapacityExceeded(t *testing.T) {
	if !CapacityExceeded("2-8 personas", 9) {
		t.Fatal("9 heads should exceed a 2-8 range")
	}
	if CapacityExceeded("2-8 personas", 8) {
		t.Fatal("8 heads fit a 2-8 range")
	}
	if CapacityExceeded("", 500) {
		t.Fatal("places without a declared range never flag")
	}
	if CapacityExceeded("hasta 10", 500) {
		t.Fatal("unparseable ranges never flag")
	}
}

func TestParseOccupancy(t *testing.T) {
	min, max, ok := ParseOccupancy("2-8 personas")
	if !ok || min != 2 || max != 8 {
		t.Fatalf("got (%d,%d,%v), want (2,8,true)", min, max, ok)
	}
	if _, _, ok := ParseOccupancy("grupo grande"); ok {
		t.Fatal("expected parse failure")
	}
	if _, _, ok := ParseOccupancy("8-2"); ok {
		t.Fatal("inverted range must not parse")
	}
}

func validDraft() *Draft {
	d := NewDraft()
	d.Place = &api.Place{ID: 1, PricePerPerson: 20, Occupancy: "2-8 personas"}
	d.Start = at(10, 0)
	d.End = at(12, 0)
	d.SetHeadCount(2)
	d.Attendees[0] = Attendee{FirstName: "Ana", LastName: "Paz", Age: 34}
	d.Attendees[1] = Attendee{FirstName: "Luis", LastName: "Paz", Age: 8}
	return d
}

func TestValidateForSubmitAccepts(t *testing.T) {
	if err := ValidateForSubmit(validDraft(), nil, true); err != nil {
		t.Fatalf("expected valid draft, got %v", err)
	}
}

func TestValidateForSubmitRules(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*Draft)
		existing []Interval
		authed   bool
		want     error
	}{
		{"no session", func(d *Draft) {}, nil, false, ErrNotAuthenticated},
		{"no place", func(d *Draft) { d.Place = nil }, nil, true, ErrPlaceRequired},
		{"no start", func(d *Draft) { d.Start = time.Time{} }, nil, true, ErrStartRequired},
		{"no end", func(d *Draft) { d.End = time.Time{} }, nil, true, ErrEndRequired},
		{"start after end", func(d *Draft) { d.Start = at(10, 0); d.End = at(9, 0) }, nil, true, ErrStartAfterEnd},
		{"start equals end", func(d *Draft) { d.End = d.Start }, nil, true, ErrStartAfterEnd},
		{"59 minutes", func(d *Draft) { d.End = d.Start.Add(59 * time.Minute) }, nil, true, ErrTooShort},
		{"conflict", func(d *Draft) {}, []Interval{{at(11, 0), at(13, 0)}}, true, ErrConflict},
		{"capacity", func(d *Draft) { d.SetHeadCount(9) }, nil, true, ErrCapacityExceeded},
		{"missing attendee", func(d *Draft) { d.Attendees = d.Attendees[:1] }, nil, true, ErrHeadCountMismatch},
		{"unset age", func(d *Draft) { d.Attendees[1].Age = -1 }, nil, true, ErrInvalidAttendeeAge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(d)
			err := ValidateForSubmit(d, tc.existing, tc.authed)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateForSubmitSixtyMinutesAccepted(t *testing.T) {
	d := validDraft()
	d.End = d.Start.Add(60 * time.Minute)
	if err := ValidateForSubmit(d, nil, true); err != nil {
		t.Fatalf("60 minutes must be accepted, got %v", err)
	}
}

func TestValidateForSubmitTouchingReservationAccepted(t *testing.T) {
	d := validDraft() // [10:00, 12:00)
	existing := []Interval{{at(8, 0), at(10, 0)}}
	if err := ValidateForSubmit(d, existing, true); err != nil {
		t.Fatalf("touching reservation must not conflict, got %v", err)
	}
}

func TestCapacityCheckedBeforeAttendeeCompleteness(t *testing.T) {
	// Head count 9 against a 2-8 place must flag even when the attendee
	// list is still shorter; capacity is checked before completeness.
	d := validDraft()
	d.HeadCount = 9
	err := ValidateForSubmit(d, nil, true)
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
}
