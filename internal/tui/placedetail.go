package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/booking"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

type placeDetailModel struct {
	svc       Services
	place     *api.Place
	intervals []booking.Interval
	loaded    bool
	errMsg    string
	notice    string
}

func newPlaceDetailModel(svc Services, place *api.Place) placeDetailModel {
	return placeDetailModel{svc: svc, place: place}
}

func (m placeDetailModel) mountCmd() tea.Cmd {
	if m.place == nil {
		return func() tea.Msg { return navigate(ScreenCatalog) }
	}
	return loadIntervalsCmd(m.svc, m.place.ID, 0)
}

func (m placeDetailModel) update(msg tea.Msg) (placeDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case intervalsLoadedMsg:
		if m.place == nil || msg.placeID != m.place.ID {
			return m, nil
		}
		m.loaded = true
		if msg.err != nil {
			m.errMsg = errText(msg.err)
		} else {
			m.intervals = msg.intervals
		}
		return m, nil

	case wishlistToggledMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
		} else if msg.onList {
			m.notice = "Added to wishlist"
		} else {
			m.notice = "Removed from wishlist"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return navigate(ScreenCatalog) }
		case msg.String() == "b", key.Matches(msg, keys.Select):
			place := m.place
			return m, func() tea.Msg {
				return navigateMsg{screen: ScreenReservationForm, place: place}
			}
		case msg.String() == "w":
			if !m.svc.Sessions.Authenticated() {
				m.errMsg = "Log in to save places to your wishlist."
				return m, nil
			}
			m.notice = "Saving..."
			return m, toggleWishlistCmd(m.svc, m.place.ID)
		}
	}
	return m, nil
}

func (m placeDetailModel) view(st theme.Styles) string {
	if m.place == nil {
		return st.Subtle.Render("No place selected.")
	}
	p := m.place

	out := st.PlaceName.Render(p.Name) + "\n"
	out += st.PlaceLocation.Render(p.Location) + "  " + st.PlaceCategory.Render(p.Category) + "\n"
	out += st.FormValue.Render(p.Description) + "\n\n"
	out += st.FormLabel.Render("Price") + " " + st.PlacePrice.Render(formatPrice(p.PricePerPerson)+" per person per day") + "\n"
	if p.Occupancy != "" {
		out += st.FormLabel.Render("Group size") + " " + st.FormValue.Render(p.Occupancy) + "\n"
	}

	out += "\n" + st.ListTitle.Render("Booked slots") + "\n"
	switch {
	case !m.loaded && m.errMsg == "":
		out += st.Subtle.Render("Loading availability...") + "\n"
	case len(m.intervals) == 0:
		out += st.Success.Render("No reservations yet, all times open.") + "\n"
	default:
		for _, iv := range m.intervals {
			out += st.ListItem.Render(formatInterval(iv.Start, iv.End)) + "\n"
		}
	}

	if m.errMsg != "" {
		out += st.Error.Render(m.errMsg) + "\n"
	} else if m.notice != "" {
		out += st.Success.Render(m.notice) + "\n"
	}
	out += "\n" + st.Subtle.Render("b book · w wishlist · esc back")
	return out
}
