// ABOUTME: Executor is the only component that performs I/O, turning each Command into one Event.
// ABOUTME: Declares the API and SessionStore collaborators the client core depends on.
package core

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/2389-research/gifbox/wire"
)

// SessionKey is the storage slot holding the JSON-encoded User.
const SessionKey = "user"

// API is the backend. Every error returned is, or wraps, a wire.Error.
type API interface {
	Register(ctx context.Context, req wire.RegisterRequest) (wire.User, error)
	Login(ctx context.Context, req wire.LoginRequest) (wire.User, error)
	SearchGiphy(ctx context.Context, req wire.SearchGiphyRequest, jwt string) (wire.SearchGiphyResponse, error)
	SaveGif(ctx context.Context, req wire.SaveGifRequest, jwt string) (wire.SaveGifResponse, error)
	Favorites(ctx context.Context, jwt string) (wire.FetchFavoritesResponse, error)
	Categorize(ctx context.Context, req wire.CategorizeGifRequest, jwt string) (wire.CategorizeGifResponse, error)
}

// SessionStore is string-keyed durable client storage.
type SessionStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Executor runs Commands against the API and session storage.
type Executor struct {
	api   API
	store SessionStore
}

// NewExecutor creates an Executor.
func NewExecutor(api API, store SessionStore) *Executor {
	return &Executor{api: api, store: store}
}

// Execute runs cmd and returns the single event describing its outcome.
// It never returns nil.
func (x *Executor) Execute(ctx context.Context, cmd Command) Event {
	id := NewULID()
	start := time.Now()
	log.Printf("command start id=%s type=%s", id, cmd.CommandType())

	ev := x.execute(ctx, cmd)

	log.Printf("command done id=%s type=%s event=%s duration=%s",
		id, cmd.CommandType(), EventName(ev), time.Since(start).Round(time.Microsecond))
	return ev
}

func (x *Executor) execute(ctx context.Context, cmd Command) Event {
	switch c := cmd.(type) {
	case LoginCommand:
		u, err := x.api.Login(ctx, wire.LoginRequest{Email: c.Email, Password: c.Password})
		if err != nil {
			return Login{Event: LoginFailed{Err: wire.AsError(err)}}
		}
		return Login{Event: LoginSucceeded{User: u}}

	case RegisterCommand:
		u, err := x.api.Register(ctx, wire.RegisterRequest{Email: c.Email, Password: c.Password})
		if err != nil {
			return Login{Event: RegisterFailed{Err: wire.AsError(err)}}
		}
		return Login{Event: RegisterSucceeded{User: u}}

	case SearchCommand:
		resp, err := x.api.SearchGiphy(ctx, wire.SearchGiphyRequest{Query: c.Query}, c.JWT)
		if err != nil {
			return Search{Event: SearchFailed{JWT: c.JWT, Err: wire.AsError(err)}}
		}
		return Search{Event: SearchSucceeded{JWT: c.JWT, Gifs: resp.Gifs}}

	case SaveGifCommand:
		resp, err := x.api.SaveGif(ctx, wire.SaveGifRequest{ID: c.ID}, c.JWT)
		if err != nil {
			we := wire.AsError(err)
			log.Printf("save gif failed id=%s status=%d description=%q", c.ID, we.Status, we.Description)
			return Search{Event: SaveGifFailed{JWT: c.JWT, ID: c.ID, Err: we}}
		}
		return Search{Event: SaveGifSucceeded{JWT: c.JWT, Gif: resp.Gif}}

	case FetchFavoritesCommand:
		resp, err := x.api.Favorites(ctx, c.JWT)
		if err != nil {
			return Favorites{Event: FetchFavoritesFailed{JWT: c.JWT, Err: wire.AsError(err)}}
		}
		return Favorites{Event: FetchFavoritesSucceeded{JWT: c.JWT, Gifs: resp.Gifs}}

	case CategorizeCommand:
		resp, err := x.api.Categorize(ctx, wire.CategorizeGifRequest{ID: c.ID, Category: c.Category}, c.JWT)
		if err != nil {
			we := wire.AsError(err)
			log.Printf("categorize failed id=%s status=%d description=%q", c.ID, we.Status, we.Description)
			return Favorites{Event: CategorizeFailed{JWT: c.JWT, ID: c.ID, Err: we}}
		}
		return Favorites{Event: CategorizeSucceeded{JWT: c.JWT, Gif: resp.Gif}}

	case PersistSessionCommand:
		data, err := json.Marshal(c.User)
		if err != nil {
			log.Printf("session persist failed err=%v", err)
			return Noop{}
		}
		if err := x.store.Set(SessionKey, string(data)); err != nil {
			log.Printf("session persist failed err=%v", err)
		}
		return Noop{}

	case ClearSessionCommand:
		if err := x.store.Delete(SessionKey); err != nil {
			log.Printf("session clear failed err=%v", err)
		}
		return Noop{}

	default:
		log.Printf("command unknown type=%T", cmd)
		return Noop{}
	}
}
