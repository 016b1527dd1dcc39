package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

type catalogModel struct {
	svc       Services
	places    []api.Place
	cursor    int
	search    textinput.Model
	searching bool
	category  string
	errMsg    string
	notice    string
}

func newCatalogModel(svc Services) catalogModel {
	search := textinput.New()
	search.Placeholder = "search places"
	search.CharLimit = 80

	m := catalogModel{svc: svc, search: search}
	m.applyFilters()
	return m
}

// applyFilters recomputes the visible list from the catalog snapshot.
func (m *catalogModel) applyFilters() {
	if query := m.search.Value(); query != "" {
		m.places = m.svc.Catalog.Search(query)
	} else {
		m.places = m.svc.Catalog.ByCategory(m.category)
	}
	if m.cursor >= len(m.places) {
		m.cursor = 0
	}
}

// cycleCategory advances through the snapshot's categories, then back to all.
func (m *catalogModel) cycleCategory() {
	categories := m.svc.Catalog.Categories()
	if len(categories) == 0 {
		return
	}
	next := 0
	for i, c := range categories {
		if c == m.category {
			next = i + 1
			break
		}
	}
	if next >= len(categories) {
		m.category = ""
	} else {
		m.category = categories[next]
	}
	m.search.SetValue("")
	m.applyFilters()
}

func (m catalogModel) update(msg tea.Msg) (catalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
		} else {
			m.errMsg = ""
			m.applyFilters()
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
		if m.searching {
			switch {
			case key.Matches(msg, keys.Select), key.Matches(msg, keys.Back):
				m.searching = false
				m.search.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.applyFilters()
			return m, cmd
		}

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
		case msg.String() == "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		case msg.String() == "c":
			m.cycleCategory()
		case msg.String() == "w":
			if len(m.places) == 0 {
				return m, nil
			}
			if !m.svc.Sessions.Authenticated() {
				m.notice = ""
				m.errMsg = "Log in to save places to your wishlist."
				return m, nil
			}
			m.notice = "Saving..."
			return m, toggleWishlistCmd(m.svc, m.places[m.cursor].ID)
		case msg.String() == "r":
			m.notice = "Refreshing..."
			return m, loadCatalogCmd(m.svc)
		}
	}
	return m, nil
}

func (m catalogModel) view(st theme.Styles) string {
	title := "Places"
	if m.category != "" {
		title = "Places · " + m.category
	}
	out := st.ListTitle.Render(title) + "\n"

	if m.searching || m.search.Value() != "" {
		out += m.search.View() + "\n"
	}

	if !m.svc.Catalog.Loaded() {
		out += st.Subtle.Render("Loading places...") + "\n"
	} else if len(m.places) == 0 {
		out += st.Subtle.Render("No places match.") + "\n"
	}

	for i, p := range m.places {
		line := fmt.Sprintf("%s  %s  %s %s",
			truncate(p.Name, 32),
			st.PlacePrice.Render(formatPrice(p.PricePerPerson)+"/person"),
			st.PlaceLocation.Render(p.Location),
			st.PlaceCategory.Render(p.Category))
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
	out += st.Subtle.Render("enter details · / search · c category · w wishlist · r refresh · esc back")
	return out
}
