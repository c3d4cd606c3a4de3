// ABOUTME: Login page of the gifbox TUI: email and password inputs with inline validation errors.
// ABOUTME: Enter submits a login, ctrl+r registers, tab moves between the two fields.
package tui

import (
	"strings"

	"github.com/2389-research/gifbox/core"
	tea "github.com/charmbracelet/bubbletea"
)

func (m AppModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.focus == FocusEmail {
			m.setFocus(FocusPassword)
		} else {
			m.setFocus(FocusEmail)
		}
		return m, nil
	case "enter":
		return m.dispatch(core.Login{Event: core.SubmitLogin{}})
	case "ctrl+r":
		return m.dispatch(core.Login{Event: core.SubmitRegister{}})
	}
	return m.editInput(msg)
}

func (m AppModel) viewLogin() string {
	s := m.dispatcher.Model().Login

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Log in"))
	b.WriteString("\n\n")

	b.WriteString(FieldStyle(m.focus == FocusEmail).Render(m.email.View()))
	b.WriteString("\n")
	if s.EmailError != "" {
		b.WriteString(ErrorStyle.Render("  " + s.EmailError))
		b.WriteString("\n")
	}

	b.WriteString(FieldStyle(m.focus == FocusPassword).Render(m.password.View()))
	b.WriteString("\n")
	if s.PasswordError != "" {
		b.WriteString(ErrorStyle.Render("  " + s.PasswordError))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case s.HasNetworkRequest:
		b.WriteString(PendingStyle.Render("Signing in..."))
	case s.CanSubmit():
		b.WriteString(SuccessStyle.Render("[enter] log in   [ctrl+r] register"))
	default:
		b.WriteString(HintStyle.Render("[enter] log in   [ctrl+r] register"))
	}
	if s.NetworkError != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(s.NetworkError))
	}

	return b.String()
}
