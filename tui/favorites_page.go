// ABOUTME: Favorites page of the gifbox TUI: filterable saved GIFs with inline category editing.
// ABOUTME: / focuses the filter, e edits a category, enter categorizes, r refetches.
package tui

import (
	"fmt"
	"strings"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/wire"
	tea "github.com/charmbracelet/bubbletea"
)

func (m AppModel) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case FocusCategory:
		switch msg.Type {
		case tea.KeyEnter:
			return m.dispatch(core.Favorites{Event: core.Categorize{ID: m.editing}})
		case tea.KeyEsc:
			m.stopEditing()
			return m, nil
		}
		return m.editInput(msg)

	case FocusFilter:
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc, tea.KeyTab:
			m.setFocus(FocusFavorites)
			return m, nil
		}
		return m.editInput(msg)
	}

	visible := core.FilterFavorites(m.dispatcher.Model().Favorites)
	switch msg.String() {
	case "/", "tab":
		m.setFocus(FocusFilter)
	case "up", "k":
		if m.favCursor > 0 {
			m.favCursor--
		}
	case "down", "j":
		if m.favCursor < len(visible)-1 {
			m.favCursor++
		}
	case "e", "enter":
		if m.favCursor < len(visible) {
			m.startEditing(visible[m.favCursor])
		}
	case "r":
		return m.dispatch(core.Favorites{Event: core.FetchFavorites{}})
	}
	return m, nil
}

// startEditing opens the category input for g, seeded with the pending
// draft or the current category.
func (m *AppModel) startEditing(g wire.Gif) {
	m.editing = g.ID
	value := g.CategoryOr("")
	if draft, ok := m.dispatcher.Model().Favorites.CategoryUpdates[g.ID]; ok {
		value = draft
	}
	m.category.SetValue(value)
	m.category.CursorEnd()
	m.setFocus(FocusCategory)
}

func (m *AppModel) stopEditing() {
	m.editing = ""
	m.category.SetValue("")
	if m.focus == FocusCategory {
		m.setFocus(FocusFavorites)
	}
}

func (m AppModel) viewFavorites() string {
	s := m.dispatcher.Model().Favorites

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Favorites"))
	b.WriteString("\n\n")
	b.WriteString(FieldStyle(m.focus == FocusFilter).Render(m.filter.View()))
	b.WriteString("\n")
	if s.IsFetchingFavorites {
		b.WriteString(PendingStyle.Render("Loading favorites..."))
		b.WriteString("\n")
	}
	if s.FetchError != nil {
		b.WriteString(ErrorStyle.Render(s.FetchError.Description))
		b.WriteString("\n")
	}
	if s.CategorizeError != "" {
		b.WriteString(ErrorStyle.Render(s.CategorizeError))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	visible := core.FilterFavorites(s)
	if len(visible) == 0 {
		b.WriteString(HintStyle.Render("No favorites yet."))
		return b.String()
	}

	for i, g := range visible {
		b.WriteString(m.favoriteRow(i, g, s.SavingCategory.Has(g.ID)))
		b.WriteString("\n")
		if g.ID == m.editing {
			b.WriteString("    ")
			b.WriteString(FieldStyle(m.focus == FocusCategory).Render(m.category.View()))
			b.WriteString("\n")
		}
	}
	b.WriteString(HintStyle.Render("[/] filter   [e] category   [r] refresh"))
	return b.String()
}

func (m AppModel) favoriteRow(i int, g wire.Gif, saving bool) string {
	marker := "  "
	style := RowStyle
	if m.focus != FocusFilter && i == m.favCursor {
		marker = "> "
		style = SelectedStyle
	}

	category := CategoryStyle.Render("[" + g.CategoryOr("uncategorized") + "]")
	if saving {
		category = PendingStyle.Render("[saving...]")
	}
	return fmt.Sprintf("%s%s %s %s", marker, style.Render(g.Title), category, URLStyle.Render(g.URL))
}
