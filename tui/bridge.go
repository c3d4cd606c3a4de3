// ABOUTME: Bridge connecting core Commands and session restore to the Bubble Tea message loop.
// ABOUTME: Each tea.Cmd factory returns exactly one EventMsg when its work settles.
package tui

import (
	"context"
	"time"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/session"
	tea "github.com/charmbracelet/bubbletea"
)

// ExecuteCmd returns a tea.Cmd that runs cmd on the executor and reports
// the resulting event. Bubble Tea runs it off the update goroutine.
func ExecuteCmd(ctx context.Context, x *core.Executor, cmd core.Command) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: x.Execute(ctx, cmd)}
	}
}

// RestoreSessionCmd returns a tea.Cmd that reads the persisted session and
// reports Initialized. It is issued once at startup.
func RestoreSessionCmd(store core.SessionStore, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		return EventMsg{Event: core.Initialized{User: session.Restore(store, now())}}
	}
}
