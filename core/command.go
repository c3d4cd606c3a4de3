// ABOUTME: Command is a tagged union describing asynchronous side effects requested by reducers.
// ABOUTME: Commands carry a snapshot of what they need (e.g. the JWT) and never reference the Model.
package core

import "github.com/2389-research/gifbox/wire"

// Command describes one unit of I/O. The Executor turns each Command into
// exactly one Event.
type Command interface {
	CommandType() string
	commandSeal()
}

// LoginCommand posts credentials to the login endpoint.
type LoginCommand struct {
	Email    string
	Password string
}

func (LoginCommand) CommandType() string { return "Login" }
func (LoginCommand) commandSeal()        {}

// RegisterCommand posts credentials to the register endpoint.
type RegisterCommand struct {
	Email    string
	Password string
}

func (RegisterCommand) CommandType() string { return "Register" }
func (RegisterCommand) commandSeal()        {}

// SearchCommand searches the upstream provider.
type SearchCommand struct {
	Query string
	JWT   string
}

func (SearchCommand) CommandType() string { return "Search" }
func (SearchCommand) commandSeal()        {}

// SaveGifCommand saves one GIF to favorites.
type SaveGifCommand struct {
	ID  string
	JWT string
}

func (SaveGifCommand) CommandType() string { return "SaveGif" }
func (SaveGifCommand) commandSeal()        {}

// FetchFavoritesCommand loads the user's favorites.
type FetchFavoritesCommand struct {
	JWT string
}

func (FetchFavoritesCommand) CommandType() string { return "FetchFavorites" }
func (FetchFavoritesCommand) commandSeal()        {}

// CategorizeCommand sets the category of one saved GIF.
type CategorizeCommand struct {
	ID       string
	Category string
	JWT      string
}

func (CategorizeCommand) CommandType() string { return "Categorize" }
func (CategorizeCommand) commandSeal()        {}

// PersistSessionCommand writes the user to session storage.
type PersistSessionCommand struct {
	User wire.User
}

func (PersistSessionCommand) CommandType() string { return "PersistSession" }
func (PersistSessionCommand) commandSeal()        {}

// ClearSessionCommand deletes the persisted session.
type ClearSessionCommand struct{}

func (ClearSessionCommand) CommandType() string { return "ClearSession" }
func (ClearSessionCommand) commandSeal()        {}
