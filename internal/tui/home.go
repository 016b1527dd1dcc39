package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/domain/theme"
)

type homeEntry struct {
	label  string
	screen Screen
	logout bool
}

type homeModel struct {
	svc     Services
	entries []homeEntry
	cursor  int
	errMsg  string
}

func newHomeModel(svc Services) homeModel {
	entries := []homeEntry{
		{label: "Browse places", screen: ScreenCatalog},
		{label: "My reservations", screen: ScreenReservations},
		{label: "Wishlist", screen: ScreenWishlist},
		{label: "Profile", screen: ScreenProfile},
	}
	if svc.Sessions.Authenticated() {
		entries = append(entries, homeEntry{label: "Log out", logout: true})
	} else {
		entries = append(entries, homeEntry{label: "Log in", screen: ScreenLogin})
	}
	return homeModel{svc: svc, entries: entries}
}

func (m homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
		} else {
			m.errMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Select):
			entry := m.entries[m.cursor]
			if entry.logout {
				if err := m.svc.Auth.Logout(); err != nil {
					m.errMsg = errText(err)
					return m, nil
				}
				return m, func() tea.Msg { return navigate(ScreenHome) }
			}
			target := entry.screen
			return m, func() tea.Msg { return navigate(target) }
		}
	}
	return m, nil
}

func (m homeModel) view(st theme.Styles) string {
	out := st.ListTitle.Render("Welcome to Comunitur") + "\n"

	for i, entry := range m.entries {
		if i == m.cursor {
			out += st.ListItemSelected.Render(entry.label) + "\n"
		} else {
			out += st.ListItem.Render(entry.label) + "\n"
		}
	}

	if recommended := m.svc.Catalog.Recommended(3); len(recommended) > 0 {
		out += "\n" + st.ListTitle.Render("Deals for you") + "\n"
		for _, p := range recommended {
			line := fmt.Sprintf("%s  %s  %s",
				st.PlaceName.Render(p.Name),
				st.PlacePrice.Render(formatPrice(p.PricePerPerson)+"/person"),
				st.PlaceLocation.Render(p.Location))
			out += st.ListItem.Render(line) + "\n"
		}
	} else if !m.svc.Catalog.Loaded() && m.errMsg == "" {
		out += "\n" + st.Subtle.Render("Loading places...") + "\n"
	}

	if m.errMsg != "" {
		out += "\n" + st.Error.Render(m.errMsg) + "\n"
	}
	return out
}
