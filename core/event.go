// ABOUTME: Event is the closed union of every state transition trigger the client understands.
// ABOUTME: Root variants handle navigation and session; wrappers carry each feature's own sub-events.
package core

import (
	"fmt"
	"strings"

	"github.com/2389-research/gifbox/wire"
)

// Event is a tagged union of root events. Feature events travel inside the
// Login, Search, Favorites and UI wrappers.
type Event interface {
	EventType() string
	eventSeal()
}

// Noop does nothing and does not trigger a render.
type Noop struct{}

func (Noop) EventType() string { return "Noop" }
func (Noop) eventSeal()        {}

// Logout drops the session, resets all features, and routes to Login.
type Logout struct{}

func (Logout) EventType() string { return "Logout" }
func (Logout) eventSeal()        {}

// RouteTo navigates to Route. Ignored while the model is initializing.
type RouteTo struct {
	Route Route
}

func (RouteTo) EventType() string { return "RouteTo" }
func (RouteTo) eventSeal()        {}

// Initialized is produced once at bootstrap after attempting to restore a
// persisted session. User is nil when no valid session was found.
type Initialized struct {
	User *wire.User
}

func (Initialized) EventType() string { return "Initialized" }
func (Initialized) eventSeal()        {}

// FavoriteSaved merges a freshly saved GIF into both the search results and
// the favorites. It is the only event that writes across features.
type FavoriteSaved struct {
	Gif wire.Gif
}

func (FavoriteSaved) EventType() string { return "FavoriteSaved" }
func (FavoriteSaved) eventSeal()        {}

// Login wraps a login/registration sub-event.
type Login struct {
	Event LoginEvent
}

func (Login) EventType() string { return "Login" }
func (Login) eventSeal()        {}

// Search wraps a search sub-event.
type Search struct {
	Event SearchEvent
}

func (Search) EventType() string { return "Search" }
func (Search) eventSeal()        {}

// Favorites wraps a favorites sub-event.
type Favorites struct {
	Event FavoritesEvent
}

func (Favorites) EventType() string { return "Favorites" }
func (Favorites) eventSeal()        {}

// UI wraps a view-only sub-event.
type UI struct {
	Event UIEvent
}

func (UI) EventType() string { return "UI" }
func (UI) eventSeal()        {}

// EventName renders an event for logs, including the wrapped sub-event,
// e.g. "Search.SaveGifFailed".
func EventName(ev Event) string {
	var inner any
	switch e := ev.(type) {
	case Login:
		inner = e.Event
	case Search:
		inner = e.Event
	case Favorites:
		inner = e.Event
	case UI:
		inner = e.Event
	default:
		return ev.EventType()
	}
	name := fmt.Sprintf("%T", inner)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return ev.EventType() + "." + name
}

// LoginEvent is a sub-event handled by the login reducer.
type LoginEvent interface{ loginEvent() }

// UpdateEmail sets the email field and re-validates it.
type UpdateEmail struct{ Value string }

// UpdatePassword sets the password field and re-validates it.
type UpdatePassword struct{ Value string }

// SubmitLogin sends the form to the login endpoint.
type SubmitLogin struct{}

// SubmitRegister sends the form to the register endpoint.
type SubmitRegister struct{}

// LoginSucceeded carries the authenticated user.
type LoginSucceeded struct{ User wire.User }

// LoginFailed carries the server's error.
type LoginFailed struct{ Err wire.Error }

// RegisterSucceeded carries the newly registered user.
type RegisterSucceeded struct{ User wire.User }

// RegisterFailed carries the server's error.
type RegisterFailed struct{ Err wire.Error }

func (UpdateEmail) loginEvent()       {}
func (UpdatePassword) loginEvent()    {}
func (SubmitLogin) loginEvent()       {}
func (SubmitRegister) loginEvent()    {}
func (LoginSucceeded) loginEvent()    {}
func (LoginFailed) loginEvent()       {}
func (RegisterSucceeded) loginEvent() {}
func (RegisterFailed) loginEvent()    {}

// SearchEvent is a sub-event handled by the search reducer.
type SearchEvent interface{ searchEvent() }

// UpdateQuery sets the query draft.
type UpdateQuery struct{ Value string }

// SubmitSearch runs the current query.
type SubmitSearch struct{}

// SearchSucceeded carries results in provider order. JWT is the token the
// request was sent with, as are the JWT fields of the other result events.
type SearchSucceeded struct {
	JWT  string
	Gifs []wire.Gif
}

// SearchFailed carries the server's error.
type SearchFailed struct {
	JWT string
	Err wire.Error
}

// SaveGif saves a search result to favorites.
type SaveGif struct{ ID string }

// SaveGifSucceeded carries the saved GIF.
type SaveGifSucceeded struct {
	JWT string
	Gif wire.Gif
}

// SaveGifFailed carries the id that failed and the server's error.
type SaveGifFailed struct {
	JWT string
	ID  string
	Err wire.Error
}

func (UpdateQuery) searchEvent()      {}
func (SubmitSearch) searchEvent()     {}
func (SearchSucceeded) searchEvent()  {}
func (SearchFailed) searchEvent()     {}
func (SaveGif) searchEvent()          {}
func (SaveGifSucceeded) searchEvent() {}
func (SaveGifFailed) searchEvent()    {}

// FavoritesEvent is a sub-event handled by the favorites reducer.
type FavoritesEvent interface{ favoritesEvent() }

// FetchFavorites loads the user's saved GIFs.
type FetchFavorites struct{}

// FetchFavoritesSucceeded carries the saved GIFs.
type FetchFavoritesSucceeded struct {
	JWT  string
	Gifs []wire.Gif
}

// FetchFavoritesFailed carries the server's error.
type FetchFavoritesFailed struct {
	JWT string
	Err wire.Error
}

// UpdateFilter sets the category filter used by the view.
type UpdateFilter struct{ Value string }

// UpdateCategory edits the uncommitted category draft for one GIF. An empty
// value discards the draft.
type UpdateCategory struct {
	ID    string
	Value string
}

// Categorize commits the category draft for one GIF.
type Categorize struct{ ID string }

// CategorizeSucceeded carries the updated GIF.
type CategorizeSucceeded struct {
	JWT string
	Gif wire.Gif
}

// CategorizeFailed carries the id that failed and the server's error.
type CategorizeFailed struct {
	JWT string
	ID  string
	Err wire.Error
}

func (FetchFavorites) favoritesEvent()          {}
func (FetchFavoritesSucceeded) favoritesEvent() {}
func (FetchFavoritesFailed) favoritesEvent()    {}
func (UpdateFilter) favoritesEvent()            {}
func (UpdateCategory) favoritesEvent()          {}
func (Categorize) favoritesEvent()              {}
func (CategorizeSucceeded) favoritesEvent()     {}
func (CategorizeFailed) favoritesEvent()        {}

// UIEvent is a sub-event that only touches view flags.
type UIEvent interface{ uiEvent() }

// ToggleNav opens or closes the navigation menu.
type ToggleNav struct{}

func (ToggleNav) uiEvent() {}
