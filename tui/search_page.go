// ABOUTME: Search page of the gifbox TUI: query input plus a selectable list of results.
// ABOUTME: Enter in the query searches; in the list, enter or s saves the highlighted GIF.
package tui

import (
	"fmt"
	"strings"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/wire"
	tea "github.com/charmbracelet/bubbletea"
)

func (m AppModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "tab" || msg.String() == "shift+tab" {
		if m.focus == FocusQuery {
			m.setFocus(FocusResults)
		} else {
			m.setFocus(FocusQuery)
		}
		return m, nil
	}

	if m.focus == FocusQuery {
		if msg.Type == tea.KeyEnter {
			return m.dispatch(core.Search{Event: core.SubmitSearch{}})
		}
		return m.editInput(msg)
	}

	results := m.dispatcher.Model().Search.Results
	switch msg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < results.Len()-1 {
			m.selected++
		}
	case "enter", "s":
		keys := results.Keys()
		if m.selected < len(keys) {
			return m.dispatch(core.Search{Event: core.SaveGif{ID: keys[m.selected]}})
		}
	}
	return m, nil
}

func (m AppModel) viewSearch() string {
	s := m.dispatcher.Model().Search

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString(FieldStyle(m.focus == FocusQuery).Render(m.query.View()))
	b.WriteString("\n")
	if s.HasSearchRequest {
		b.WriteString(PendingStyle.Render("Searching..."))
		b.WriteString("\n")
	}
	if s.Error != "" {
		b.WriteString(ErrorStyle.Render(s.Error))
		b.WriteString("\n")
	}
	if s.SaveError != "" {
		b.WriteString(ErrorStyle.Render(s.SaveError))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.Results.Len() == 0 {
		b.WriteString(HintStyle.Render("No results."))
		return b.String()
	}

	i := 0
	s.Results.Range(func(id string, g wire.Gif) bool {
		b.WriteString(m.searchRow(i, g, s.Saving.Has(id)))
		b.WriteString("\n")
		i++
		return true
	})
	b.WriteString(HintStyle.Render("[tab] results   [enter/s] save"))
	return b.String()
}

func (m AppModel) searchRow(i int, g wire.Gif, saving bool) string {
	marker := "  "
	style := RowStyle
	if m.focus == FocusResults && i == m.selected {
		marker = "> "
		style = SelectedStyle
	}

	var state string
	switch {
	case saving:
		state = PendingStyle.Render(" saving...")
	case g.IsSaved:
		state = SuccessStyle.Render(" ★ saved")
	}
	return fmt.Sprintf("%s%s %s%s", marker, style.Render(g.Title), URLStyle.Render(g.URL), state)
}
