package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

type wishlistModel struct {
	svc    Services
	places []api.Place
	cursor int
	loaded bool
	errMsg string
	notice string
}

func newWishlistModel(svc Services) wishlistModel {
	return wishlistModel{svc: svc}
}

func (m wishlistModel) mountCmd() tea.Cmd {
	return loadWishlistCmd(m.svc)
}

func (m wishlistModel) update(msg tea.Msg) (wishlistModel, tea.Cmd) {
	switch msg := msg.(type) {
	case wishlistLoadedMsg:
		m.loaded = true
		if msg.err != nil {
			m.errMsg = errText(msg.err)
		} else {
			m.places = msg.places
			m.errMsg = ""
			if m.cursor >= len(m.places) {
				m.cursor = 0
			}
		}
		return m, nil

	case wishlistToggledMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.notice = "Removed from wishlist."
		return m, loadWishlistCmd(m.svc)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return navigate(ScreenHome) }
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.places)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			if len(m.places) == 0 {
				return m, nil
			}
			place := m.places[m.cursor]
			return m, func() tea.Msg {
				return navigateMsg{screen: ScreenPlaceDetail, place: &place}
			}
		case msg.String() == "x", msg.String() == "w":
			if len(m.places) == 0 {
				return m, nil
			}
			m.notice = "Removing..."
			return m, toggleWishlistCmd(m.svc, m.places[m.cursor].ID)
		}
	}
	return m, nil
}

func (m wishlistModel) view(st theme.Styles) string {
	out := st.ListTitle.Render("Wishlist") + "\n"

	switch {
	case !m.loaded && m.errMsg == "":
		out += st.Subtle.Render("Loading wishlist...") + "\n"
	case len(m.places) == 0 && m.errMsg == "":
		out += st.Subtle.Render("Nothing saved yet. Press w on a place to save it.") + "\n"
	}

	for i, p := range m.places {
		line := fmt.Sprintf("%s  %s  %s",
			truncate(p.Name, 32),
			st.PlacePrice.Render(formatPrice(p.PricePerPerson)+"/person"),
			st.PlaceLocation.Render(p.Location))
		if i == m.cursor {
			out += st.ListItemSelected.Render(line) + "\n"
		} else {
			out += st.ListItem.Render(line) + "\n"
		}
	}

	if m.errMsg != "" {
		out += st.Error.Render(m.errMsg) + "\n"
	} else if m.notice != "" {
		out += st.Success.Render(m.notice) + "\n"
	}
	out += st.Subtle.Render("enter details · x remove · esc back")
	return out
}
