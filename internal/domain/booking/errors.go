package booking

import "errors"

var (
	ErrNotAuthenticated   = errors.New("you must be logged in to reserve")
	ErrPlaceRequired      = errors.New("select a place first")
	ErrStartRequired      = errors.New("select a start date and time")
	ErrEndRequired        = errors.New("select an end date and time")
	ErrStartAfterEnd      = errors.New("the start must be before the end")
	ErrTooShort           = errors.New("a reservation must last at least one hour")
	ErrConflict           = errors.New("the place is already reserved in that interval")
	ErrCapacityExceeded   = errors.New("the group exceeds the recommended capacity for this place")
	ErrHeadCountMismatch  = errors.New("attendee details are missing for some of the group")
	ErrInvalidAttendeeAge = errors.New("every attendee needs a valid age")
)
