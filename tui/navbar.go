// ABOUTME: Navbar overlay for the gifbox TUI, toggled with ctrl+n once logged in.
package tui

import (
	"github.com/2389-research/gifbox/core"
	tea "github.com/charmbracelet/bubbletea"
)

func (m AppModel) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		return m.dispatch(core.RouteTo{Route: core.RouteSearch})
	case "f":
		return m.dispatch(core.RouteTo{Route: core.RouteFavorites})
	case "o":
		return m.dispatch(core.Logout{})
	case "esc", "ctrl+n":
		return m.dispatch(core.UI{Event: core.ToggleNav{}})
	}
	return m, nil
}

func (m AppModel) viewNav() string {
	return NavStyle.Render("[s] search   [f] favorites   [o] log out   [esc] close")
}
