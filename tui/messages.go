// ABOUTME: Bubble Tea message types used in the TUI message loop.
// ABOUTME: EventMsg carries a core.Event produced by a finished command back into Update.
package tui

import "github.com/2389-research/gifbox/core"

// EventMsg wraps a core.Event for the Bubble Tea message loop.
type EventMsg struct {
	Event core.Event
}
