// Package theme holds the light/dark preference and derives the lipgloss
// styles every screen renders with. The flag is process-wide and not
// persisted: each start is light mode.
package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Palette is the color set a mode derives its styles from.
type Palette struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

var lightPalette = Palette{
	Background: lipgloss.Color("#FDF6E3"),
	Foreground: lipgloss.Color("#3B3B3B"),
	Accent:     lipgloss.Color("#1B7A43"),
	Muted:      lipgloss.Color("#8A8A7A"),
	Border:     lipgloss.Color("#B8B09A"),
	Success:    lipgloss.Color("#1B7A43"),
	Warning:    lipgloss.Color("#A36A00"),
	Error:      lipgloss.Color("#B3261E"),
}

var darkPalette = Palette{
	Background: lipgloss.Color("#1C1C1C"),
	Foreground: lipgloss.Color("#E8E3D3"),
	Accent:     lipgloss.Color("#66C08A"),
	Muted:      lipgloss.Color("#7A7A6E"),
	Border:     lipgloss.Color("#4A463C"),
	Success:    lipgloss.Color("#66C08A"),
	Warning:    lipgloss.Color("#E0A94F"),
	Error:      lipgloss.Color("#EF6A5F"),
}

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// App container
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	HeaderHelp  lipgloss.Style

	// Lists
	ListTitle        lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemDesc     lipgloss.Style

	// Place details
	PlaceName     lipgloss.Style
	PlacePrice    lipgloss.Style
	PlaceLocation lipgloss.Style
	PlaceCategory lipgloss.Style

	// Forms
	FormLabel   lipgloss.Style
	FormValue   lipgloss.Style
	FormFocused lipgloss.Style
	FieldError  lipgloss.Style

	// General
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Box       lipgloss.Style
	HelpBar   lipgloss.Style
}

func derive(p Palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Border).
			MarginBottom(1).
			Padding(0, 1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		HeaderHelp: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true),

		ListTitle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			MarginBottom(1),

		ListItem: lipgloss.NewStyle().
			Foreground(p.Foreground).
			PaddingLeft(2),

		ListItemSelected: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			PaddingLeft(1).
			SetString("▸ "),

		ListItemDesc: lipgloss.NewStyle().
			Foreground(p.Muted),

		PlaceName: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			MarginBottom(1),

		PlacePrice: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),

		PlaceLocation: lipgloss.NewStyle().
			Foreground(p.Muted),

		PlaceCategory: lipgloss.NewStyle().
			Foreground(p.Warning),

		FormLabel: lipgloss.NewStyle().
			Foreground(p.Muted),

		FormValue: lipgloss.NewStyle().
			Foreground(p.Foreground),

		FormFocused: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		FieldError: lipgloss.NewStyle().
			Foreground(p.Error).
			Italic(true),

		Subtle: lipgloss.NewStyle().
			Foreground(p.Muted),

		Highlight: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(p.Error).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(p.Success),

		Warning: lipgloss.NewStyle().
			Foreground(p.Warning),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(1, 2),

		HelpBar: lipgloss.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
	}
}

// Store holds the light/dark flag and the styles derived from it.
type Store struct {
	mu     sync.RWMutex
	dark   bool
	styles Styles
}

// NewStore starts in light mode.
func NewStore() *Store {
	return &Store{styles: derive(lightPalette)}
}

// Toggle flips light/dark and recomputes the derived styles.
func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = !s.dark
	if s.dark {
		s.styles = derive(darkPalette)
	} else {
		s.styles = derive(lightPalette)
	}
}

// Dark reports whether dark mode is active.
func (s *Store) Dark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

// Styles returns the current style configuration.
func (s *Store) Styles() Styles {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.styles
}
