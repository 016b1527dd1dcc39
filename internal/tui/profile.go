package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

const (
	profEmail = iota
	profFullName
	profPhone
	profFieldCount
)

type profileModel struct {
	svc      Services
	user     *api.User
	payments []api.Payment
	inputs   []textinput.Model
	focus    int
	editing  bool
	errMsg   string
	notice   string
}

func newProfileModel(svc Services) profileModel {
	inputs := make([]textinput.Model, profFieldCount)
	placeholders := []string{"email", "full name", "phone"}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 128
		inputs[i] = in
	}
	return profileModel{svc: svc, inputs: inputs}
}

func (m profileModel) mountCmd() tea.Cmd {
	svc := m.svc
	return tea.Batch(
		loadProfileCmd(svc),
		func() tea.Msg {
			payments, err := svc.Payments.History(context.Background())
			return paymentsLoadedMsg{payments: payments, err: err}
		},
	)
}

func (m profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.inputs[profEmail].SetValue(msg.user.Email)
		m.inputs[profFullName].SetValue(msg.user.FullName)
		m.inputs[profPhone].SetValue(msg.user.Phone)
		return m, nil

	case profileSavedMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.user = msg.user
		m.editing = false
		m.inputs[m.focus].Blur()
		m.errMsg = ""
		m.notice = "Profile saved."
		return m, nil

	case paymentsLoadedMsg:
		// History is decoration here; a load failure stays quiet.
		if msg.err == nil {
			m.payments = msg.payments
		}
		return m, nil

	case tea.KeyMsg:
		if !m.editing {
			switch {
			case key.Matches(msg, keys.Back):
				return m, func() tea.Msg { return navigate(ScreenHome) }
			case msg.String() == "e":
				m.editing = true
				m.focus = profEmail
				m.inputs[m.focus].Focus()
				return m, textinput.Blink
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Back):
			m.editing = false
			m.inputs[m.focus].Blur()
			return m, nil
		case msg.String() == "tab", msg.String() == "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case msg.String() == "shift+tab", msg.String() == "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.Select):
			if m.focus < len(m.inputs)-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m.save()
		}

		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *profileModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m profileModel) save() (profileModel, tea.Cmd) {
	req := api.ProfileUpdateRequest{
		Email:    m.inputs[profEmail].Value(),
		FullName: m.inputs[profFullName].Value(),
		Phone:    m.inputs[profPhone].Value(),
	}
	m.errMsg = ""
	m.notice = ""
	svc := m.svc
	return m, func() tea.Msg {
		user, err := svc.Profile.Update(context.Background(), req)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m profileModel) view(st theme.Styles) string {
	out := st.ListTitle.Render("Profile") + "\n"

	if m.user == nil && m.errMsg == "" {
		out += st.Subtle.Render("Loading profile...") + "\n"
	}
	if m.user != nil {
		out += st.FormLabel.Render("Username") + " " + st.FormValue.Render(m.user.Username) + "\n"
		out += st.FormLabel.Render("Role") + " " + st.FormValue.Render(m.user.Role) + "\n"
	}

	labels := []string{"Email", "Full name", "Phone"}
	for i, in := range m.inputs {
		label := st.FormLabel.Render(labels[i])
		if m.editing && i == m.focus {
			label = st.FormFocused.Render(labels[i])
		}
		if m.editing {
			out += label + "\n" + in.View() + "\n"
		} else {
			out += label + " " + st.FormValue.Render(in.Value()) + "\n"
		}
	}

	if len(m.payments) > 0 {
		out += "\n" + st.ListTitle.Render("Payments") + "\n"
		for _, p := range m.payments {
			line := fmt.Sprintf("%s  %s  %s",
				p.PaidAt.Format(timeLayout),
				st.PlacePrice.Render(formatPrice(p.Amount)),
				st.Subtle.Render(p.Method))
			out += st.ListItem.Render(line) + "\n"
		}
	}

	if m.errMsg != "" {
		out += st.Error.Render(m.errMsg) + "\n"
	} else if m.notice != "" {
		out += st.Success.Render(m.notice) + "\n"
	}
	if m.editing {
		out += st.Subtle.Render("enter next/save · esc stop editing")
	} else {
		out += st.Subtle.Render("e edit · esc back")
	}
	return out
}
