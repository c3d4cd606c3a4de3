// ABOUTME: Tests for AppModel: bootstrap, login and register, search and save, favorites, nav, and the go-to prompt.
// ABOUTME: Runs against the in-process fake backend so every key press exercises the real Executor.
package tui

import (
	"encoding/json"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/rpc/rpctest"
	"github.com/2389-research/gifbox/session"
	"github.com/2389-research/gifbox/wire"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewAppModelStartsInitializing(t *testing.T) {
	m, _ := newTestApp(t, "/ui/favorites")

	if !m.Model().IsInitializing {
		t.Fatal("expected model to be initializing")
	}
	if m.history.Len() != 1 {
		t.Errorf("history length = %d, want 1", m.history.Len())
	}
	if got := m.history.Path(); got != "/ui/favorites" {
		t.Errorf("path = %q, want %q", got, "/ui/favorites")
	}
	if !strings.Contains(m.View(), "Restoring session") {
		t.Errorf("expected initializing view, got %q", m.View())
	}

	m = typeText(t, m, "x")
	if m.Model().Login.Email != "" {
		t.Errorf("keys should be ignored while initializing, email = %q", m.Model().Login.Email)
	}
}

func TestBootWithoutSessionShowsLogin(t *testing.T) {
	m, _ := newTestApp(t, "/ui/search")
	m = boot(t, m)

	if m.Model().IsInitializing {
		t.Fatal("expected initialization to finish")
	}
	if m.Model().Route != core.RouteLogin {
		t.Errorf("route = %v, want %v", m.Model().Route, core.RouteLogin)
	}
	if m.Focus() != FocusEmail {
		t.Errorf("focus = %v, want %v", m.Focus(), FocusEmail)
	}
	if got := m.history.Path(); got != "/ui/login" {
		t.Errorf("path = %q, want %q", got, "/ui/login")
	}
	if m.pending != 0 {
		t.Errorf("pending = %d, want 0", m.pending)
	}
}

func TestBootRestoresSession(t *testing.T) {
	m, store := newTestApp(t, "/ui")
	raw, err := json.Marshal(wire.User{ID: 7, Email: "a@b.com", JWT: "opaque"})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(core.SessionKey, string(raw)); err != nil {
		t.Fatal(err)
	}

	m = boot(t, m)
	if !m.Model().Authenticated() {
		t.Fatal("expected restored user")
	}
	if m.Model().Route != core.RouteSearch {
		t.Errorf("route = %v, want %v", m.Model().Route, core.RouteSearch)
	}
	if m.Focus() != FocusQuery {
		t.Errorf("focus = %v, want %v", m.Focus(), FocusQuery)
	}
	if !strings.Contains(m.View(), "a@b.com") {
		t.Error("status bar should show the signed-in user")
	}
}

func TestLoginValidationShownInline(t *testing.T) {
	m, _ := newTestApp(t, "/")
	m = boot(t, m)

	m = typeText(t, m, "bad")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "123")

	view := m.View()
	if !strings.Contains(view, wire.EmailErrorMessage) {
		t.Errorf("expected email error in view")
	}
	if !strings.Contains(view, wire.PasswordErrorMessage) {
		t.Errorf("expected password error in view")
	}

	m = press(t, m, tea.KeyEnter)
	if m.Model().Login.HasNetworkRequest || m.pending != 0 {
		t.Error("invalid form should not be submitted")
	}
}

func TestLoginWithUnknownAccountShowsNetworkError(t *testing.T) {
	m, _ := newTestApp(t, "/")
	m = boot(t, m)

	m = typeText(t, m, "a@b.com")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "secret1")
	m = press(t, m, tea.KeyEnter)

	if m.Model().Route != core.RouteLogin {
		t.Errorf("route = %v, want %v", m.Model().Route, core.RouteLogin)
	}
	if m.Model().Login.NetworkError == "" {
		t.Fatal("expected a network error")
	}
	if !strings.Contains(m.View(), m.Model().Login.NetworkError) {
		t.Error("network error should be rendered")
	}
}

func TestRegisterSearchSaveAndCategorize(t *testing.T) {
	m, store := newTestApp(t, "/")
	m = boot(t, m)

	m = signUp(t, m)
	if m.Model().Route != core.RouteSearch {
		t.Fatalf("route = %v, want %v", m.Model().Route, core.RouteSearch)
	}
	if m.password.Value() != "" {
		t.Errorf("password input = %q, want empty", m.password.Value())
	}
	if _, err := store.Get(core.SessionKey); err != nil {
		t.Errorf("expected persisted session, got %v", err)
	}

	m = typeText(t, m, "cat")
	m = press(t, m, tea.KeyEnter)
	results := m.Model().Search.Results
	if results.Len() != 3 {
		t.Fatalf("results = %d, want 3", results.Len())
	}

	m = press(t, m, tea.KeyTab)
	m = press(t, m, tea.KeyDown)
	m = typeText(t, m, "s")

	savedID := results.Keys()[1]
	g, _ := m.Model().Search.Results.Get(savedID)
	if !g.IsSaved {
		t.Errorf("expected %s to be saved in results", savedID)
	}
	if !m.Model().Favorites.Favorites.Has(savedID) {
		t.Errorf("expected %s in favorites", savedID)
	}
	if !strings.Contains(m.View(), "saved") {
		t.Error("expected saved marker in view")
	}

	m = press(t, m, tea.KeyCtrlN)
	if !m.Model().UI.NavOpen {
		t.Fatal("expected nav to open")
	}
	m = typeText(t, m, "f")
	if m.Model().Route != core.RouteFavorites {
		t.Fatalf("route = %v, want %v", m.Model().Route, core.RouteFavorites)
	}
	if m.Model().UI.NavOpen {
		t.Error("routing should close the nav")
	}
	if n := m.Model().Favorites.Favorites.Len(); n != 1 {
		t.Fatalf("favorites = %d, want 1", n)
	}

	m = typeText(t, m, "e")
	if m.Focus() != FocusCategory || m.editing != savedID {
		t.Fatalf("expected to edit %s, focus = %v editing = %q", savedID, m.Focus(), m.editing)
	}
	m = typeText(t, m, "funny")
	m = press(t, m, tea.KeyEnter)

	fav, _ := m.Model().Favorites.Favorites.Get(savedID)
	if got := fav.CategoryOr(""); got != "funny" {
		t.Errorf("category = %q, want %q", got, "funny")
	}
	if m.editing != "" || m.Focus() != FocusFavorites {
		t.Errorf("expected editing to end, focus = %v editing = %q", m.Focus(), m.editing)
	}

	m = typeText(t, m, "/")
	m = typeText(t, m, "nothing-matches")
	if n := len(core.FilterFavorites(m.Model().Favorites)); n != 0 {
		t.Errorf("filtered favorites = %d, want 0", n)
	}
	m = press(t, m, tea.KeyEsc)
	if m.Focus() != FocusFavorites {
		t.Errorf("focus = %v, want %v", m.Focus(), FocusFavorites)
	}

	m = press(t, m, tea.KeyCtrlN)
	m = typeText(t, m, "o")
	if m.Model().Authenticated() {
		t.Error("expected logout")
	}
	if m.Model().Route != core.RouteLogin {
		t.Errorf("route = %v, want %v", m.Model().Route, core.RouteLogin)
	}
	if _, err := store.Get(core.SessionKey); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected session to be cleared, got %v", err)
	}
}

func TestExpiredTokenLogsOut(t *testing.T) {
	var skew atomic.Int64
	start := time.Now()
	m, _ := newTestApp(t, "/", rpctest.WithClock(func() time.Time {
		return start.Add(time.Duration(skew.Load()))
	}))
	m = boot(t, m)
	m = signUp(t, m)

	skew.Store(int64(rpctest.TokenTTL + time.Minute))
	m = typeText(t, m, "cat")
	m = press(t, m, tea.KeyEnter)

	if m.Model().Authenticated() {
		t.Error("expected a 401 to log the user out")
	}
	if m.Model().Route != core.RouteLogin {
		t.Errorf("route = %v, want %v", m.Model().Route, core.RouteLogin)
	}
	if m.Model().Search.Query != "" {
		t.Errorf("query = %q, want pristine", m.Model().Search.Query)
	}
}

func TestNavNeedsLogin(t *testing.T) {
	m, _ := newTestApp(t, "/")
	m = boot(t, m)

	m = press(t, m, tea.KeyCtrlN)
	if m.Model().UI.NavOpen {
		t.Error("nav should not open while signed out")
	}
}

func TestNavEscCloses(t *testing.T) {
	m, _ := newTestApp(t, "/")
	m = boot(t, m)
	m = signUp(t, m)

	m = press(t, m, tea.KeyCtrlN)
	if !strings.Contains(m.View(), "log out") {
		t.Error("expected nav in view")
	}
	m = press(t, m, tea.KeyEsc)
	if m.Model().UI.NavOpen {
		t.Error("esc should close the nav")
	}
}

func TestGoToPrompt(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		route core.Route
		push  string
	}{
		{name: "favorites", path: "/ui/favorites", route: core.RouteFavorites, push: "/ui/favorites"},
		{name: "unknown page falls back to search", path: "/ui/nowhere", route: core.RouteSearch, push: "/ui/search"},
		{name: "outside ui", path: "/elsewhere", route: core.RouteInit, push: "/ui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestApp(t, "/")
			m = boot(t, m)
			m = signUp(t, m)

			m = press(t, m, tea.KeyCtrlG)
			if !m.prompting {
				t.Fatal("expected prompt to open")
			}
			if got := m.prompt.Value(); got != "/ui/search" {
				t.Errorf("prompt = %q, want current path", got)
			}
			m.prompt.SetValue(tt.path)
			m = press(t, m, tea.KeyEnter)

			if m.prompting {
				t.Error("expected prompt to close")
			}
			if m.Model().Route != tt.route {
				t.Errorf("route = %v, want %v", m.Model().Route, tt.route)
			}
			if got := m.history.Path(); got != tt.push {
				t.Errorf("path = %q, want %q", got, tt.push)
			}
		})
	}
}

func TestGoToPromptEscCancels(t *testing.T) {
	m, _ := newTestApp(t, "/")
	m = boot(t, m)

	before := m.history.Len()
	m = press(t, m, tea.KeyCtrlG)
	m = press(t, m, tea.KeyEsc)
	if m.prompting {
		t.Error("expected prompt to close")
	}
	if m.history.Len() != before {
		t.Errorf("history length = %d, want %d", m.history.Len(), before)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestApp(t, "/")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestWindowSizeSetsStatusBarWidth(t *testing.T) {
	m, _ := newTestApp(t, "/")
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(AppModel)
	if m.width != 80 || m.height != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.width, m.height)
	}
	if m.statusBar.width != 80 {
		t.Errorf("status bar width = %d, want 80", m.statusBar.width)
	}
}

func TestLogoutEndsCategoryEditing(t *testing.T) {
	m, _ := newTestApp(t, "/")
	m = boot(t, m)
	m = signUp(t, m)

	m = typeText(t, m, "cat")
	m = press(t, m, tea.KeyEnter)
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "s")

	m = press(t, m, tea.KeyCtrlN)
	m = typeText(t, m, "f")
	m = typeText(t, m, "e")
	m = typeText(t, m, "wip")
	if m.editing == "" || m.Focus() != FocusCategory {
		t.Fatalf("expected category editing, focus = %v editing = %q", m.Focus(), m.editing)
	}

	m = press(t, m, tea.KeyCtrlN)
	m = typeText(t, m, "o")

	if m.editing != "" {
		t.Errorf("editing = %q, want empty", m.editing)
	}
	if m.category.Value() != "" {
		t.Errorf("category input = %q, want empty", m.category.Value())
	}
	if m.Focus() != FocusEmail {
		t.Errorf("focus = %v, want %v", m.Focus(), FocusEmail)
	}
}

func TestFilterPlaceholderNamesCategory(t *testing.T) {
	m, _ := newTestApp(t, "/")
	if m.filter.Placeholder != "category" {
		t.Errorf("filter placeholder = %q, want %q", m.filter.Placeholder, "category")
	}
}
