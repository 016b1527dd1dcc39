package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/booking"
	"github.com/comunitur/comunitur/internal/domain/reservation"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

// Fixed field positions; attendee rows follow.
const (
	formStart = iota
	formEnd
	formHeadCount
	formFixedCount
)

const attendeeFieldCount = 4 // first name, last name, age, disability note

type reservationFormModel struct {
	svc       Services
	place     *api.Place
	editingID int64
	draft     *booking.Draft
	intervals []booking.Interval
	haveSlots bool

	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

func newReservationFormModel(svc Services, place *api.Place, editing *api.Reservation) reservationFormModel {
	m := reservationFormModel{svc: svc, place: place}

	draft := booking.NewDraft()
	if editing != nil {
		m.editingID = editing.ID
		if place == nil {
			if p, err := svc.Catalog.ByID(editing.PlaceID); err == nil {
				m.place = p
			}
		}
		if rebuilt, err := reservation.DraftFrom(editing, m.place); err == nil {
			draft = rebuilt
		}
	}
	draft.Place = m.place
	if draft.HeadCount == 0 {
		draft.SetHeadCount(1)
	}
	m.draft = draft

	m.rebuildInputs()
	m.inputs[formStart].Focus()
	return m
}

// rebuildInputs lays the field list out from the draft, keeping one row
// block per attendee.
func (m *reservationFormModel) rebuildInputs() {
	inputs := make([]textinput.Model, formFixedCount+len(m.draft.Attendees)*attendeeFieldCount)

	start := textinput.New()
	start.Placeholder = timeLayout
	start.CharLimit = len(timeLayout)
	if !m.draft.Start.IsZero() {
		start.SetValue(m.draft.Start.Format(timeLayout))
	}
	inputs[formStart] = start

	end := textinput.New()
	end.Placeholder = timeLayout
	end.CharLimit = len(timeLayout)
	if !m.draft.End.IsZero() {
		end.SetValue(m.draft.End.Format(timeLayout))
	}
	inputs[formEnd] = end

	heads := textinput.New()
	heads.Placeholder = "1"
	heads.CharLimit = 3
	heads.SetValue(strconv.Itoa(m.draft.HeadCount))
	inputs[formHeadCount] = heads

	for i, a := range m.draft.Attendees {
		base := formFixedCount + i*attendeeFieldCount

		first := textinput.New()
		first.Placeholder = "first name"
		first.CharLimit = 64
		first.SetValue(a.FirstName)
		inputs[base] = first

		last := textinput.New()
		last.Placeholder = "last name"
		last.CharLimit = 64
		last.SetValue(a.LastName)
		inputs[base+1] = last

		age := textinput.New()
		age.Placeholder = "age"
		age.CharLimit = 3
		if a.Age >= 0 {
			age.SetValue(strconv.Itoa(a.Age))
		}
		inputs[base+2] = age

		note := textinput.New()
		note.Placeholder = "disability note (blank for none)"
		note.CharLimit = 160
		note.SetValue(a.DisabilityNote)
		inputs[base+3] = note
	}

	m.inputs = inputs
	if m.focus >= len(inputs) {
		m.focus = len(inputs) - 1
	}
}

func (m reservationFormModel) mountCmd() tea.Cmd {
	if m.place == nil {
		return func() tea.Msg { return navigate(ScreenCatalog) }
	}
	return tea.Batch(textinput.Blink, loadIntervalsCmd(m.svc, m.place.ID, m.editingID))
}

// syncDraft copies the current field values into the draft so the live
// summary and validation see what the user typed.
func (m *reservationFormModel) syncDraft() {
	if t, err := parseFormTime(m.inputs[formStart].Value()); err == nil {
		m.draft.Start = t
	} else {
		m.draft.Start = time.Time{}
	}
	if t, err := parseFormTime(m.inputs[formEnd].Value()); err == nil {
		m.draft.End = t
	} else {
		m.draft.End = time.Time{}
	}

	for i := range m.draft.Attendees {
		base := formFixedCount + i*attendeeFieldCount
		a := &m.draft.Attendees[i]
		a.FirstName = strings.TrimSpace(m.inputs[base].Value())
		a.LastName = strings.TrimSpace(m.inputs[base+1].Value())
		if n, err := strconv.Atoi(strings.TrimSpace(m.inputs[base+2].Value())); err == nil {
			a.Age = n
		} else {
			a.Age = -1
		}
		a.DisabilityNote = strings.TrimSpace(m.inputs[base+3].Value())
		a.Disability = a.DisabilityNote != ""
		a.Reclassify()
	}
}

// applyHeadCount resizes the attendee rows when the head count field
// changes. Typed attendee data survives a shrink-then-grow only up to the
// new size.
func (m *reservationFormModel) applyHeadCount() {
	n, err := strconv.Atoi(strings.TrimSpace(m.inputs[formHeadCount].Value()))
	if err != nil || n == m.draft.HeadCount {
		return
	}
	m.syncDraft()
	m.draft.SetHeadCount(n)
	m.rebuildInputs()
}

func (m reservationFormModel) update(msg tea.Msg) (reservationFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case intervalsLoadedMsg:
		if m.place == nil || msg.placeID != m.place.ID {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = errText(msg.err)
		} else {
			m.intervals = msg.intervals
			m.haveSlots = true
		}
		return m, nil

	case reservationSavedMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		saved := msg.reservation
		return m, func() tea.Msg {
			return navigateMsg{screen: ScreenPayment, reservation: saved}
		}

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return navigate(ScreenCatalog) }
		case msg.String() == "tab", msg.String() == "down":
			m.applyHeadCount()
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case msg.String() == "shift+tab", msg.String() == "up":
			m.applyHeadCount()
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.Select):
			m.applyHeadCount()
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m.submit()
		case msg.String() == "ctrl+p":
			m.draft.Pets = !m.draft.Pets
			return m, nil
		case msg.String() == "ctrl+s":
			m.applyHeadCount()
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncDraft()
	return m, cmd
}

func (m *reservationFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m reservationFormModel) submit() (reservationFormModel, tea.Cmd) {
	m.syncDraft()
	m.busy = true
	m.errMsg = ""

	svc := m.svc
	draft := m.draft
	editingID := m.editingID
	return m, func() tea.Msg {
		var (
			saved *api.Reservation
			err   error
		)
		if editingID == 0 {
			saved, err = svc.Reservations.Submit(context.Background(), draft)
		} else {
			saved, err = svc.Reservations.Update(context.Background(), editingID, draft)
		}
		return reservationSavedMsg{reservation: saved, err: err}
	}
}

func (m reservationFormModel) fieldLabel(st theme.Styles, i int, label string) string {
	if i == m.focus {
		return st.FormFocused.Render(label)
	}
	return st.FormLabel.Render(label)
}

func (m reservationFormModel) view(st theme.Styles) string {
	if m.place == nil {
		return st.Subtle.Render("No place selected.")
	}

	title := "Book " + m.place.Name
	if m.editingID != 0 {
		title = "Edit reservation · " + m.place.Name
	}
	out := st.ListTitle.Render(title) + "\n"

	out += m.fieldLabel(st, formStart, "Start ("+timeLayout+")") + "\n" + m.inputs[formStart].View() + "\n"
	out += m.fieldLabel(st, formEnd, "End ("+timeLayout+")") + "\n" + m.inputs[formEnd].View() + "\n"
	out += m.fieldLabel(st, formHeadCount, "People") + "\n" + m.inputs[formHeadCount].View() + "\n"

	for i := range m.draft.Attendees {
		base := formFixedCount + i*attendeeFieldCount
		a := m.draft.Attendees[i]
		header := fmt.Sprintf("Attendee %d", i+1)
		if a.Bracket != booking.BracketNone {
			header += " · " + string(a.Bracket)
		}
		out += "\n" + st.Highlight.Render(header) + "\n"
		out += m.fieldLabel(st, base, "First name") + " " + m.inputs[base].View() + "\n"
		out += m.fieldLabel(st, base+1, "Last name") + " " + m.inputs[base+1].View() + "\n"
		out += m.fieldLabel(st, base+2, "Age") + " " + m.inputs[base+2].View() + "\n"
		out += m.fieldLabel(st, base+3, "Disability") + " " + m.inputs[base+3].View() + "\n"
	}

	out += "\n" + m.summary(st) + "\n"

	if m.errMsg != "" {
		out += st.Error.Render(m.errMsg) + "\n"
	}
	if m.busy {
		out += st.Subtle.Render("Saving...") + "\n"
	}
	out += st.Subtle.Render("enter/tab next · ctrl+s save · ctrl+p pets · esc back")
	return out
}

// summary renders the live calculator output: duration, total, and the
// advisory conflict and capacity checks.
func (m reservationFormModel) summary(st theme.Styles) string {
	pets := "no"
	if m.draft.Pets {
		pets = "yes"
	}
	lines := []string{
		st.FormLabel.Render("Pets") + " " + st.FormValue.Render(pets),
	}

	if !m.draft.Start.IsZero() && !m.draft.End.IsZero() && m.draft.Start.Before(m.draft.End) {
		days := booking.DurationDays(m.draft.Start, m.draft.End)
		lines = append(lines,
			st.FormLabel.Render("Days")+" "+st.FormValue.Render(strconv.Itoa(days)),
			st.FormLabel.Render("Total")+" "+st.PlacePrice.Render(formatPrice(m.draft.Total())))

		if m.haveSlots && booking.HasConflict(m.draft.Interval(), m.intervals) {
			lines = append(lines, st.Warning.Render("This slot overlaps an existing reservation."))
		}
	}

	if booking.CapacityExceeded(m.place.Occupancy, m.draft.HeadCount) {
		lines = append(lines, st.Warning.Render("Group size exceeds this place's capacity ("+m.place.Occupancy+")."))
	}

	return st.Box.Render(strings.Join(lines, "\n"))
}
