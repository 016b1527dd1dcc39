// Package tui implements the terminal user interface using Bubble Tea.
// Screens render state and invoke domain services; all business rules live
// below this package.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/domain/auth"
	"github.com/comunitur/comunitur/internal/domain/catalog"
	"github.com/comunitur/comunitur/internal/domain/payment"
	"github.com/comunitur/comunitur/internal/domain/profile"
	"github.com/comunitur/comunitur/internal/domain/reservation"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/domain/theme"
	"github.com/comunitur/comunitur/internal/domain/wishlist"
)

// Services bundles everything the screens invoke. Constructed once in main
// and passed down; screens never reach for globals.
type Services struct {
	Auth         *auth.Service
	Reservations *reservation.Service
	Payments     *payment.Service
	Wishlist     *wishlist.Service
	Profile      *profile.Service
	Catalog      *catalog.Reader
	Sessions     *session.Store
	Theme        *theme.Store
}

// Model is the root Bubble Tea model: it owns screen routing, session
// gating, and the global keys. Async results are typed per screen, so a
// message that arrives after navigating away simply finds no screen that
// handles it and is dropped; the request itself is not cancelled.
type Model struct {
	svc    Services
	screen Screen
	width  int
	height int

	home     homeModel
	catalog  catalogModel
	detail   placeDetailModel
	login    loginModel
	register registerModel
	form     reservationFormModel
	list     reservationsModel
	pay      paymentModel
	profile  profileModel
	wish     wishlistModel
}

// New builds the root model. The caller has already run session.Restore,
// so the first frame never flashes a login prompt at a logged-in user.
func New(svc Services) Model {
	return Model{
		svc:    svc,
		screen: ScreenHome,
		home:   newHomeModel(svc),
	}
}

func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.svc)
}

// requiresAuth lists the screens that gate on an active session.
func requiresAuth(s Screen) bool {
	switch s {
	case ScreenReservationForm, ScreenReservations, ScreenPayment, ScreenProfile, ScreenWishlist:
		return true
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Theme):
			m.svc.Theme.Toggle()
			return m, nil
		case key.Matches(msg, keys.Home):
			return m.navigateTo(navigate(ScreenHome))
		}

	case navigateMsg:
		return m.navigateTo(msg)

	case catalogLoadedMsg:
		// The catalog backs several screens; let the active one react.
	}

	return m.updateScreen(msg)
}

// navigateTo mounts the target screen, redirecting to login when the
// target needs a session and none is active.
func (m Model) navigateTo(nav navigateMsg) (tea.Model, tea.Cmd) {
	if requiresAuth(nav.screen) && !m.svc.Sessions.Authenticated() {
		m.screen = ScreenLogin
		m.login = newLoginModel(m.svc, "Log in to continue")
		return m, m.login.focusCmd()
	}

	m.screen = nav.screen
	switch nav.screen {
	case ScreenHome:
		m.home = newHomeModel(m.svc)
		return m, nil
	case ScreenCatalog:
		m.catalog = newCatalogModel(m.svc)
		return m, nil
	case ScreenPlaceDetail:
		m.detail = newPlaceDetailModel(m.svc, nav.place)
		return m, m.detail.mountCmd()
	case ScreenLogin:
		m.login = newLoginModel(m.svc, nav.notice)
		return m, m.login.focusCmd()
	case ScreenRegister:
		m.register = newRegisterModel(m.svc)
		return m, m.register.focusCmd()
	case ScreenReservationForm:
		m.form = newReservationFormModel(m.svc, nav.place, nav.reservation)
		return m, m.form.mountCmd()
	case ScreenReservations:
		m.list = newReservationsModel(m.svc)
		return m, m.list.mountCmd()
	case ScreenPayment:
		m.pay = newPaymentModel(m.svc, nav.reservation)
		return m, nil
	case ScreenProfile:
		m.profile = newProfileModel(m.svc)
		return m, m.profile.mountCmd()
	case ScreenWishlist:
		m.wish = newWishlistModel(m.svc)
		return m, m.wish.mountCmd()
	}
	return m, nil
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenHome:
		m.home, cmd = m.home.update(msg)
	case ScreenCatalog:
		m.catalog, cmd = m.catalog.update(msg)
	case ScreenPlaceDetail:
		m.detail, cmd = m.detail.update(msg)
	case ScreenLogin:
		m.login, cmd = m.login.update(msg)
	case ScreenRegister:
		m.register, cmd = m.register.update(msg)
	case ScreenReservationForm:
		m.form, cmd = m.form.update(msg)
	case ScreenReservations:
		m.list, cmd = m.list.update(msg)
	case ScreenPayment:
		m.pay, cmd = m.pay.update(msg)
	case ScreenProfile:
		m.profile, cmd = m.profile.update(msg)
	case ScreenWishlist:
		m.wish, cmd = m.wish.update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	st := m.svc.Theme.Styles()

	var body string
	switch m.screen {
	case ScreenHome:
		body = m.home.view(st)
	case ScreenCatalog:
		body = m.catalog.view(st)
	case ScreenPlaceDetail:
		body = m.detail.view(st)
	case ScreenLogin:
		body = m.login.view(st)
	case ScreenRegister:
		body = m.register.view(st)
	case ScreenReservationForm:
		body = m.form.view(st)
	case ScreenReservations:
		body = m.list.view(st)
	case ScreenPayment:
		body = m.pay.view(st)
	case ScreenProfile:
		body = m.profile.view(st)
	case ScreenWishlist:
		body = m.wish.view(st)
	}

	return st.App.Render(m.header(st) + "\n" + body + "\n" + m.helpBar(st))
}

func (m Model) header(st theme.Styles) string {
	who := "not logged in"
	if id := m.svc.Sessions.Current(); id != nil {
		who = fmt.Sprintf("%s (%s)", id.Username, id.Role)
	}
	title := st.HeaderTitle.Render("Comunitur")
	return st.Header.Render(title + "  " + st.HeaderHelp.Render(who))
}

func (m Model) helpBar(st theme.Styles) string {
	return st.HelpBar.Render("ctrl+h home · ctrl+t theme · esc back · ctrl+c quit")
}
