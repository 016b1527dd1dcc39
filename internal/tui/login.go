package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/domain/theme"
)

type loginModel struct {
	svc    Services
	inputs []textinput.Model
	focus  int
	notice string
	errMsg string
	busy   bool
}

func newLoginModel(svc Services, notice string) loginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{
		svc:    svc,
		inputs: []textinput.Model{username, password},
		notice: notice,
	}
}

func (m loginModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) update(msg tea.Msg) (loginModel, tea.Cmd) {
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
			return m, func() tea.Msg { return navigate(ScreenHome) }
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
		case msg.String() == "ctrl+r":
			return m, func() tea.Msg { return navigate(ScreenRegister) }
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *loginModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	username := m.inputs[0].Value()
	password := m.inputs[1].Value()
	m.busy = true
	m.errMsg = ""
	svc := m.svc
	return m, func() tea.Msg {
		_, err := svc.Auth.Login(context.Background(), username, password)
		return authDoneMsg{err: err}
	}
}

func (m loginModel) view(st theme.Styles) string {
	out := st.ListTitle.Render("Log in") + "\n"
	if m.notice != "" {
		out += st.Warning.Render(m.notice) + "\n"
	}
	labels := []string{"Username", "Password"}
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
		out += st.Subtle.Render("Signing in...") + "\n"
	}
	out += st.Subtle.Render("enter submit · ctrl+r register · esc back")
	return out
}
