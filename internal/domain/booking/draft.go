package booking

import (
	"encoding/json"
	"time"

	"github.com/comunitur/comunitur/internal/api"
)

// Attendee is one person on a reservation draft. The age defaults to -1
// (unset) so a blank form field never classifies as an infant.
type Attendee struct {
	FirstName      string     `json:"firstName" validate:"required,min=2,max=60"`
	LastName       string     `json:"lastName" validate:"required,min=2,max=60"`
	Age            int        `json:"age" validate:"gte=0"`
	Disability     bool       `json:"disability"`
	DisabilityNote string     `json:"disabilityNote,omitempty"`
	Bracket        AgeBracket `json:"bracket"`
}

// Reclassify recomputes the bracket; call it whenever the age changes.
func (a *Attendee) Reclassify() {
	a.Bracket = ClassifyAge(a.Age)
}

// Draft is an in-progress reservation being edited on the form. It lives
// only in memory and is discarded on submission or navigation.
type Draft struct {
	Place     *api.Place
	HeadCount int
	Attendees []Attendee
	Start     time.Time
	End       time.Time
	Pets      bool
}

// NewDraft returns an empty draft, as created when the form mounts.
func NewDraft() *Draft {
	return &Draft{}
}

// SetHeadCount resizes the attendee list to n, keeping already-entered
// attendees and seeding new slots with an unset age.
func (d *Draft) SetHeadCount(n int) {
	if n < 0 {
		n = 0
	}
	d.HeadCount = n
	for len(d.Attendees) < n {
		d.Attendees = append(d.Attendees, Attendee{Age: -1})
	}
	if len(d.Attendees) > n {
		d.Attendees = d.Attendees[:n]
	}
}

// HasDisability reports whether any attendee declared a disability.
func (d *Draft) HasDisability() bool {
	for _, a := range d.Attendees {
		if a.Disability {
			return true
		}
	}
	return false
}

// Interval returns the draft's candidate interval.
func (d *Draft) Interval() Interval {
	return Interval{Start: d.Start, End: d.End}
}

// Total computes the draft's price from the selected place.
func (d *Draft) Total() float64 {
	if d.Place == nil {
		return 0
	}
	return TotalPrice(d.Place.PricePerPerson, d.HeadCount, DurationDays(d.Start, d.End))
}

// ParseAttendees decodes a serialized attendee list back into draft form,
// reclassifying brackets from the stored ages.
func ParseAttendees(raw string) ([]Attendee, error) {
	if raw == "" {
		return nil, nil
	}
	var attendees []Attendee
	if err := json.Unmarshal([]byte(raw), &attendees); err != nil {
		return nil, err
	}
	for i := range attendees {
		attendees[i].Reclassify()
	}
	return attendees, nil
}

// SerializeAttendees renders the attendee list the way the service stores
// it, brackets included.
func (d *Draft) SerializeAttendees() (string, error) {
	for i := range d.Attendees {
		d.Attendees[i].Reclassify()
	}
	data, err := json.Marshal(d.Attendees)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
