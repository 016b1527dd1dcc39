package tui

import (
	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/booking"
)

// Screen identifies one page-level view.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenCatalog
	ScreenPlaceDetail
	ScreenLogin
	ScreenRegister
	ScreenReservationForm
	ScreenReservations
	ScreenPayment
	ScreenProfile
	ScreenWishlist
)

// navigateMsg switches the active screen. Payload fields are the hand-off
// state the target screen mounts with.
type navigateMsg struct {
	screen Screen
	// place selected for detail / reservation form
	place *api.Place
	// reservation being edited or paid
	reservation *api.Reservation
	// notice shown on the target screen (e.g. "log in first")
	notice string
}

func navigate(screen Screen) navigateMsg {
	return navigateMsg{screen: screen}
}

// catalogLoadedMsg is delivered when the catalog refresh resolves.
type catalogLoadedMsg struct {
	err error
}

// wishlistLoadedMsg carries the resolved wishlist places.
type wishlistLoadedMsg struct {
	places []api.Place
	ids    map[int64]bool
	err    error
}

// wishlistToggledMsg reports the new membership state for a place.
type wishlistToggledMsg struct {
	placeID int64
	onList  bool
	err     error
}

// reservationsLoadedMsg carries the user's reservations.
type reservationsLoadedMsg struct {
	reservations []api.Reservation
	err          error
}

// intervalsLoadedMsg carries the booked intervals for the form's place.
type intervalsLoadedMsg struct {
	placeID   int64
	intervals []booking.Interval
	err       error
}

// reservationSavedMsg is delivered after a create or update resolves.
type reservationSavedMsg struct {
	reservation *api.Reservation
	err         error
}

// reservationCancelledMsg is delivered after a delete resolves.
type reservationCancelledMsg struct {
	id  int64
	err error
}

// paymentDoneMsg is delivered after the payment step resolves.
type paymentDoneMsg struct {
	payment *api.Payment
	err     error
}

// authDoneMsg is delivered after login or registration resolves.
type authDoneMsg struct {
	err error
}

// paymentsLoadedMsg carries the user's payment history.
type paymentsLoadedMsg struct {
	payments []api.Payment
	err      error
}

// profileLoadedMsg and profileSavedMsg drive the profile screen.
type profileLoadedMsg struct {
	user *api.User
	err  error
}

type profileSavedMsg struct {
	user *api.User
	err  error
}
