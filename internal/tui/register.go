package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/session"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

const (
	regUsername = iota
	regEmail
	regPassword
	regFullName
	regRole
	regFieldCount
)

type registerModel struct {
	svc    Services
	inputs []textinput.Model
	focus  int
	errMsg string
	busy   bool
}

func newRegisterModel(svc Services) registerModel {
	inputs := make([]textinput.Model, regFieldCount)
	placeholders := []string{"username", "email", "password", "full name", "tourist or guide"}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 128
		inputs[i] = in
	}
	inputs[regPassword].EchoMode = textinput.EchoPassword
	inputs[regPassword].EchoCharacter = '•'
	inputs[regRole].SetValue(session.RoleTourist)
	inputs[regUsername].Focus()

	return registerModel{svc: svc, inputs: inputs}
}

func (m registerModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m registerModel) update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case authDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		return m, func() tea.Msg { return navigate(ScreenHome) }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return navigate(ScreenLogin) }
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
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *registerModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m registerModel) submit() (registerModel, tea.Cmd) {
	req := api.RegisterRequest{
		Username: m.inputs[regUsername].Value(),
		Email:    m.inputs[regEmail].Value(),
		Password: m.inputs[regPassword].Value(),
		FullName: m.inputs[regFullName].Value(),
		Role:     m.inputs[regRole].Value(),
	}
	m.busy = true
	m.errMsg = ""
	svc := m.svc
	return m, func() tea.Msg {
		_, err := svc.Auth.Register(context.Background(), req)
		return authDoneMsg{err: err}
	}
}

func (m registerModel) view(st theme.Styles) string {
	out := st.ListTitle.Render("Create account") + "\n"
	labels := []string{"Username", "Email", "Password", "Full name", "Role"}
	for i, in := range m.inputs {
		label := st.FormLabel.Render(labels[i])
		if i == m.focus {
			label = st.FormFocused.Render(labels[i])
		}
		out += label + "\n" + in.View() + "\n"
	}
	if m.errMsg != "" {
		out += st.Error.Render(m.errMsg) + "\n"
	}
	if m.busy {
		out += st.Subtle.Render("Creating account...") + "\n"
	}
	out += st.Subtle.Render("enter submit · esc back to login")
	return out
}
