// ABOUTME: Implements a single-line status bar for the bottom of the TUI showing the location bar.
// ABOUTME: Displays the current path, the signed-in user, and how many requests are in flight.
package tui

import (
	"fmt"

	"github.com/2389-research/gifbox/wire"
)

// StatusBarModel displays client status in a single line.
type StatusBarModel struct {
	location string
	user     string
	pending  int
	width    int
}

// NewStatusBarModel creates an empty StatusBarModel.
func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{}
}

// SetLocation sets the path shown in the location field.
func (m *StatusBarModel) SetLocation(path string) {
	m.location = path
}

// SetUser sets the signed-in user, or clears it when u is nil.
func (m *StatusBarModel) SetUser(u *wire.User) {
	if u == nil {
		m.user = ""
		return
	}
	m.user = u.Email
}

// SetPending sets the count of requests in flight.
func (m *StatusBarModel) SetPending(n int) {
	m.pending = n
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	user := m.user
	if user == "" {
		user = "signed out"
	}

	activity := "idle"
	if m.pending > 0 {
		activity = fmt.Sprintf("%d pending", m.pending)
	}

	content := fmt.Sprintf("%s | %s | %s | ctrl+n menu  ctrl+g go to  ctrl+c quit",
		m.location, user, activity)

	style := StatusBarStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(content)
}
