// ABOUTME: Top-level Bubble Tea AppModel that drives the core Dispatcher and renders the gifbox pages.
// ABOUTME: Translates key presses into core Events and core Commands into tea.Cmds run by the Executor.
package tui

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/2389-research/gifbox/core"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FocusTarget indicates which widget currently has keyboard focus.
type FocusTarget int

const (
	FocusEmail FocusTarget = iota
	FocusPassword
	FocusQuery
	FocusResults
	FocusFavorites
	FocusFilter
	FocusCategory
)

// AppModel is the top-level Bubble Tea model. The Dispatcher it points to
// is the single owner of the client state; AppModel only holds view state.
type AppModel struct {
	ctx        context.Context
	dispatcher *core.Dispatcher
	executor   *core.Executor
	store      core.SessionStore
	history    *History
	now        func() time.Time

	email    textinput.Model
	password textinput.Model
	query    textinput.Model
	filter   textinput.Model
	category textinput.Model
	prompt   textinput.Model

	statusBar StatusBarModel

	focus     FocusTarget
	route     core.Route
	selected  int    // cursor in search results
	favCursor int    // cursor in the filtered favorites
	editing   string // id whose category is being edited
	prompting bool
	pending   int // commands in flight
	width     int
	height    int
}

// NewAppModel creates an AppModel for a fresh client. startPath is the
// location the program was launched with; it is routed immediately, which
// is a no-op while the session is still being restored.
func NewAppModel(ctx context.Context, executor *core.Executor, store core.SessionStore, startPath string) AppModel {
	start := core.ParsePath(startPath)
	history := NewHistory(start)

	m := AppModel{
		ctx:        ctx,
		dispatcher: core.NewDispatcher(core.NewModel(), history),
		executor:   executor,
		store:      store,
		history:    history,
		now:        time.Now,
		email:      newInput("email", "you@example.com"),
		password:   newInput("password", "at least 6 characters"),
		query:      newInput("search", "cats"),
		filter:     newInput("filter", "category"),
		category:   newInput("category", "funny"),
		prompt:     newInput("go to", "/ui/search"),
		statusBar:  NewStatusBarModel(),
		focus:      FocusEmail,
		// the session restore issued by Init
		pending: 1,
	}
	m.password.EchoMode = textinput.EchoPassword
	m.password.EchoCharacter = '•'

	m, _ = m.dispatch(core.RouteTo{Route: core.RouteFor(start)})
	return m
}

func newInput(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt + ": "
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	return ti
}

// Model exposes the client state for inspection.
func (m AppModel) Model() *core.Model {
	return m.dispatcher.Model()
}

// Focus returns the widget that has keyboard focus.
func (m AppModel) Focus() FocusTarget {
	return m.focus
}

// Init implements tea.Model. It restores the persisted session.
func (m AppModel) Init() tea.Cmd {
	return RestoreSessionCmd(m.store, m.now)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.SetWidth(msg.Width)
		return m, nil

	case EventMsg:
		if m.pending > 0 {
			m.pending--
		}
		return m.dispatch(msg.Event)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// dispatch reduces ev and turns the emitted Commands into tea.Cmds.
func (m AppModel) dispatch(ev core.Event) (AppModel, tea.Cmd) {
	u := m.dispatcher.Dispatch(ev)
	log.Printf("tui dispatch event=%s processed=%d commands=%d render=%t",
		core.EventName(ev), len(u.Processed), len(u.Commands), u.Render)

	cmds := make([]tea.Cmd, 0, len(u.Commands))
	for _, c := range u.Commands {
		cmds = append(cmds, ExecuteCmd(m.ctx, m.executor, c))
	}
	m.pending += len(u.Commands)

	for _, p := range u.Processed {
		switch p := p.(type) {
		case core.Logout:
			m.stopEditing()
		case core.Favorites:
			if done, ok := p.Event.(core.CategorizeSucceeded); ok && done.Gif.ID == m.editing {
				m.stopEditing()
			}
		}
	}

	if model := m.dispatcher.Model(); model.Route != m.route {
		m.route = model.Route
		m.setFocus(defaultFocus(model.Route))
	}
	m.syncInputs()
	m.clampCursors()

	return m, tea.Batch(cmds...)
}

// syncInputs copies reducer-owned text back into the inputs, so resets
// such as the cleared password after login are visible.
func (m *AppModel) syncInputs() {
	model := m.dispatcher.Model()
	setIfChanged(&m.email, model.Login.Email)
	setIfChanged(&m.password, model.Login.Password)
	setIfChanged(&m.query, model.Search.Query)
	setIfChanged(&m.filter, model.Favorites.Filter)
	if m.editing != "" {
		if draft, ok := model.Favorites.CategoryUpdates[m.editing]; ok {
			setIfChanged(&m.category, draft)
		}
	}
}

func setIfChanged(ti *textinput.Model, v string) {
	if ti.Value() != v {
		ti.SetValue(v)
	}
}

func (m *AppModel) clampCursors() {
	model := m.dispatcher.Model()
	m.selected = clamp(m.selected, model.Search.Results.Len())
	m.favCursor = clamp(m.favCursor, len(core.FilterFavorites(model.Favorites)))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func defaultFocus(r core.Route) FocusTarget {
	switch r {
	case core.RouteSearch:
		return FocusQuery
	case core.RouteFavorites:
		return FocusFavorites
	default:
		return FocusEmail
	}
}

// input returns the text input bound to target, or nil for list focus.
func (m *AppModel) input(target FocusTarget) *textinput.Model {
	switch target {
	case FocusEmail:
		return &m.email
	case FocusPassword:
		return &m.password
	case FocusQuery:
		return &m.query
	case FocusFilter:
		return &m.filter
	case FocusCategory:
		return &m.category
	default:
		return nil
	}
}

func (m *AppModel) setFocus(target FocusTarget) {
	if in := m.input(m.focus); in != nil {
		in.Blur()
	}
	m.focus = target
	if in := m.input(target); in != nil {
		in.Focus()
	}
}

// editInput feeds a key to the focused input and reports the new value to
// the reducer when it changed.
func (m AppModel) editInput(msg tea.KeyMsg) (AppModel, tea.Cmd) {
	in := m.input(m.focus)
	if in == nil {
		return m, nil
	}
	before := in.Value()
	*in, _ = in.Update(msg)
	after := in.Value()
	if after == before {
		return m, nil
	}

	var ev core.Event
	switch m.focus {
	case FocusEmail:
		ev = core.Login{Event: core.UpdateEmail{Value: after}}
	case FocusPassword:
		ev = core.Login{Event: core.UpdatePassword{Value: after}}
	case FocusQuery:
		ev = core.Search{Event: core.UpdateQuery{Value: after}}
	case FocusFilter:
		ev = core.Favorites{Event: core.UpdateFilter{Value: after}}
	case FocusCategory:
		ev = core.Favorites{Event: core.UpdateCategory{ID: m.editing, Value: after}}
	default:
		return m, nil
	}
	return m.dispatch(ev)
}

// handleKeyMsg handles global bindings, then overlays, then the page.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.prompting {
		return m.handlePromptKey(msg)
	}

	model := m.dispatcher.Model()
	if model.IsInitializing {
		return m, nil
	}

	if model.UI.NavOpen {
		return m.handleNavKey(msg)
	}

	switch msg.String() {
	case "ctrl+n":
		if model.Authenticated() {
			return m.dispatch(core.UI{Event: core.ToggleNav{}})
		}
		return m, nil
	case "ctrl+g":
		m.prompting = true
		m.prompt.SetValue(m.history.Path())
		m.prompt.CursorEnd()
		m.prompt.Focus()
		return m, nil
	}

	switch model.Route {
	case core.RouteLogin:
		return m.handleLoginKey(msg)
	case core.RouteSearch:
		return m.handleSearchKey(msg)
	case core.RouteFavorites:
		return m.handleFavoritesKey(msg)
	}
	return m, nil
}

// handlePromptKey edits the go-to-path prompt and routes on enter.
func (m AppModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		path := m.prompt.Value()
		m.closePrompt()
		return m.dispatch(core.RouteTo{Route: core.RouteFor(core.ParsePath(path))})
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	}
	m.prompt, _ = m.prompt.Update(msg)
	return m, nil
}

func (m *AppModel) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}

// View implements tea.Model.
func (m AppModel) View() string {
	model := m.dispatcher.Model()

	var page string
	switch {
	case model.IsInitializing:
		page = PendingStyle.Render("Restoring session...")
	case model.Route == core.RouteLogin:
		page = m.viewLogin()
	case model.Route == core.RouteSearch:
		page = m.viewSearch()
	case model.Route == core.RouteFavorites:
		page = m.viewFavorites()
	default:
		page = HintStyle.Render("Nothing here. Press ctrl+g to go somewhere else.")
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("gifbox"))
	b.WriteString("\n")
	if model.UI.NavOpen {
		b.WriteString(m.viewNav())
		b.WriteString("\n")
	}
	b.WriteString(BorderStyle.Render(page))
	b.WriteString("\n")
	if m.prompting {
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	}

	m.statusBar.SetLocation(m.history.Path())
	m.statusBar.SetUser(model.User)
	m.statusBar.SetPending(m.pending)
	b.WriteString(m.statusBar.View())

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}
