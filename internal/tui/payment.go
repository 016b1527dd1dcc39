package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/comunitur/comunitur/internal/api"
	"github.com/comunitur/comunitur/internal/domain/theme"
)

// paymentMethods in selection order; card asks for a number.
var paymentMethods = []string{"card", "cash", "transfer"}

type paymentModel struct {
	svc         Services
	reservation *api.Reservation
	method      int
	card        textinput.Model
	done        *api.Payment
	errMsg      string
	busy        bool
}

func newPaymentModel(svc Services, reservation *api.Reservation) paymentModel {
	card := textinput.New()
	card.Placeholder = "card number (16 digits)"
	card.CharLimit = 16
	card.Focus()

	return paymentModel{svc: svc, reservation: reservation, card: card}
}

func (m paymentModel) update(msg tea.Msg) (paymentModel, tea.Cmd) {
	switch msg := msg.(type) {
	case paymentDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			return m, nil
		}
		m.done = msg.payment
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		if m.done != nil {
			// Paid; any key goes back to the reservation list.
			return m, func() tea.Msg { return navigate(ScreenReservations) }
		}
		switch {
		case key.Matches(msg, keys.Back):
			return m, func() tea.Msg { return navigate(ScreenReservations) }
		case msg.String() == "tab", msg.String() == "left", msg.String() == "right":
			m.method = (m.method + 1) % len(paymentMethods)
			return m, nil
		case key.Matches(msg, keys.Select):
			return m.submit()
		}
		if paymentMethods[m.method] == "card" {
			var cmd tea.Cmd
			m.card, cmd = m.card.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m paymentModel) submit() (paymentModel, tea.Cmd) {
	m.busy = true
	m.errMsg = ""

	svc := m.svc
	reservation := m.reservation
	method := paymentMethods[m.method]
	card := ""
	if method == "card" {
		card = m.card.Value()
	}
	return m, func() tea.Msg {
		paid, err := svc.Payments.Pay(context.Background(), reservation, method, card)
		return paymentDoneMsg{payment: paid, err: err}
	}
}

func (m paymentModel) view(st theme.Styles) string {
	out := st.ListTitle.Render("Payment") + "\n"

	if m.reservation == nil {
		out += st.Subtle.Render("Nothing to pay. Pick a reservation first.") + "\n"
		out += st.Subtle.Render("esc back")
		return out
	}

	if m.done != nil {
		out += st.Success.Render("Payment recorded.") + "\n"
		out += st.FormLabel.Render("Amount") + " " + st.PlacePrice.Render(formatPrice(m.done.Amount)) + "\n"
		out += st.FormLabel.Render("Method") + " " + st.FormValue.Render(m.done.Method) + "\n"
		out += st.Subtle.Render("press any key to continue")
		return out
	}

	out += st.FormLabel.Render("Amount due") + " " + st.PlacePrice.Render(formatPrice(m.reservation.Total)) + "\n\n"

	out += st.FormLabel.Render("Method") + " "
	for i, method := range paymentMethods {
		if i == m.method {
			out += st.Highlight.Render("["+method+"]") + " "
		} else {
			out += st.FormValue.Render(method) + " "
		}
	}
	out += "\n"

	if paymentMethods[m.method] == "card" {
		out += m.card.View() + "\n"
	}

	if m.errMsg != "" {
		out += st.Error.Render(m.errMsg) + "\n"
	}
	if m.busy {
		out += st.Subtle.Render("Processing...") + "\n"
	}
	out += st.Subtle.Render("tab method · enter pay · esc back")
	return out
}
