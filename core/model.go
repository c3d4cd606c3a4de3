// ABOUTME: Model is the single application state tree: route, session, and one sub-state per feature.
// ABOUTME: Pristine resets every feature to its default without replacing the root value.
package core

import "github.com/2389-research/gifbox/wire"

// GifMap is an id-keyed, insertion-ordered collection of GIFs.
type GifMap = OrderedMap[string, wire.Gif]

func newGifMap() *GifMap {
	return NewOrderedMap[string, wire.Gif]()
}

// IDSet tracks GIF ids with an outstanding per-item request.
type IDSet map[string]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add inserts id.
func (s IDSet) Add(id string) { s[id] = struct{}{} }

// Remove deletes id. Removing an absent id is a no-op.
func (s IDSet) Remove(id string) { delete(s, id) }

// Model is the root application state. Exactly one exists per running
// client; it is owned by the Dispatcher and mutated only by reducers.
type Model struct {
	Route          Route
	IsInitializing bool
	User           *wire.User

	Login     LoginState
	Search    SearchState
	Favorites FavoritesState
	UI        UIState
}

// LoginState holds the credential form. Empty error strings mean no error.
type LoginState struct {
	Email             string
	EmailError        string
	Password          string
	PasswordError     string
	NetworkError      string
	HasNetworkRequest bool
}

// CanSubmit reports whether the form may be sent: both fields filled, no
// field errors, and no request in flight.
func (s LoginState) CanSubmit() bool {
	return s.Email != "" && s.Password != "" &&
		s.EmailError == "" && s.PasswordError == "" &&
		!s.HasNetworkRequest
}

// SearchState holds the query, its results, and per-GIF save progress.
type SearchState struct {
	Query            string
	Error            string
	Results          *GifMap
	HasSearchRequest bool
	Saving           IDSet
	SaveError        string
}

// FavoritesState holds saved GIFs, uncommitted category edits, and the filter.
type FavoritesState struct {
	Favorites           *GifMap
	CategoryUpdates     map[string]string
	SavingCategory      IDSet
	FetchError          *wire.Error
	IsFetchingFavorites bool
	Filter              string
	CategorizeError     string
}

// UIState holds view-only flags.
type UIState struct {
	NavOpen bool
}

// NewModel returns the bootstrap model. It stays initializing until the
// Initialized event arrives.
func NewModel() *Model {
	m := &Model{IsInitializing: true}
	m.resetFeatures()
	return m
}

// NewSearchState returns an empty SearchState.
func NewSearchState() SearchState {
	return SearchState{Results: newGifMap(), Saving: IDSet{}}
}

// NewFavoritesState returns an empty FavoritesState.
func NewFavoritesState() FavoritesState {
	return FavoritesState{
		Favorites:       newGifMap(),
		CategoryUpdates: map[string]string{},
		SavingCategory:  IDSet{},
	}
}

// Authenticated reports whether a session is present.
func (m *Model) Authenticated() bool {
	return m.User != nil
}

// CurrentSession reports whether jwt belongs to the signed-in user. Results
// of requests sent before a logout fail this check.
func (m *Model) CurrentSession(jwt string) bool {
	return m.User != nil && m.User.JWT == jwt
}

// Pristine drops the session and resets every feature sub-state. The route
// is left for the caller to change.
func (m *Model) Pristine() {
	m.User = nil
	m.IsInitializing = false
	m.resetFeatures()
}

func (m *Model) resetFeatures() {
	m.Login = LoginState{}
	m.Search = NewSearchState()
	m.Favorites = NewFavoritesState()
	m.UI = UIState{}
}
