package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

type reservationsModel struct {
	svc          Services
	reservations []api.Reservation
	cursor       int
	loaded       bool
	confirming   bool
	errMsg       string
	notice       string
}

func newReservationsModel(svc Services) reservationsModel {
	return reservationsModel{svc: svc}
}

func (m reservationsModel) mountCmd() tea.Cmd {
	return loadReservationsCmd(m.svc)
}

func (m reservationsModel) update(msg tea.Msg) (reservationsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reservationsLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.errMsg = errText(msg.err)
		} else {
			m.reservations = msg.reservations
			m.errMsg = ""
			if m.cursor >= len(m.reservations) {
				m.cursor = 0
			}
		}
		return m, nil

	case reservationCancelledMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.notice = "Reservation cancelled."
		return m, loadReservationsCmd(m.svc)

	case tea.KeyMsg:
		if m.confirming {
			m.confirming = false
			if msg.String() == "y" {
				m.notice = "Cancelling..."
				return m, cancelReservationCmd(m.svc, m.reservations[m.cursor].ID)
			}
			m.notice = ""
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return navigate(ScreenHome) }
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.reservations)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select), msg.String() == "e":
			if len(m.reservations) == 0 {
				return m, nil
			}
			r := m.reservations[m.cursor]
			return m, func() tea.Msg {
				return navigateMsg{screen: ScreenReservationForm, reservation: &r}
			}
		case msg.String() == "p":
			if len(m.reservations) == 0 {
				return m, nil
			}
			r := m.reservations[m.cursor]
			if r.Payment != nil {
				m.notice = "That reservation is already paid."
				return m, nil
			}
			return m, func() tea.Msg {
				return navigateMsg{screen: ScreenPayment, reservation: &r}
			}
		case msg.String() == "x":
			if len(m.reservations) == 0 {
				return m, nil
			}
			m.confirming = true
			return m, nil
		case msg.String() == "r":
			return m, loadReservationsCmd(m.svc)
		}
	}
	return m, nil
}

func (m reservationsModel) placeName(placeID int64) string {
	if place, err := m.svc.Catalog.ByID(placeID); err == nil {
		return place.Name
	}
	return fmt.Sprintf("place #%d", placeID)
}

func (m reservationsModel) view(st theme.Styles) string {
	out := st.ListTitle.Render("My reservations") + "\n"

	switch {
	case !m.loaded && m.errMsg == "":
		out += st.Subtle.Render("Loading reservations...") + "\n"
	case len(m.reservations) == 0 && m.errMsg == "":
		out += st.Subtle.Render("No reservations yet. Browse places to book one.") + "\n"
	}

	for i, r := range m.reservations {
		status := st.Warning.Render("unpaid")
		if r.Payment != nil {
			status = st.Success.Render("paid")
		}
		line := fmt.Sprintf("%s  %s  %d people  %s  %s",
			truncate(m.placeName(r.PlaceID), 28),
			formatInterval(r.StartTime, r.EndTime),
			r.HeadCount,
			st.PlacePrice.Render(formatPrice(r.Total)),
			status)
		if i == m.cursor {
			out += st.ListItemSelected.Render(line) + "\n"
		} else {
			out += st.ListItem.Render(line) + "\n"
		}
	}

	if m.confirming {
		out += st.Warning.Render("Cancel this reservation? (y/n)") + "\n"
	}
	if m.errMsg != "" {
		out += st.Error.Render(m.errMsg) + "\n"
	} else if m.notice != "" {
		out += st.Success.Render(m.notice) + "\n"
	}
	out += st.Subtle.Render("enter/e edit · p pay · x cancel · r refresh · esc back")
	return out
}
