// ABOUTME: In-process gifbox backend used by tests and the -demo mode of the CLI.
// ABOUTME: Holds accounts, a seeded GIF catalogue, and per-user favorites in memory behind a chi router.
package rpctest

import (
	"crypto/rand"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/2389-research/gifbox/wire"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Messages returned by the backend.
const (
	msgInvalidInput       = "Invalid input."
	msgInvalidCredentials = "Invalid credentials provided."
	msgEmailTaken         = "That email address is already taken."
	msgUnknownGif         = "Specified GIF does not seem to exist in Giphy."
	msgNotSaved           = "Could not find target GIF saved by user."
)

// TokenTTL is how long issued JWTs stay valid.
const TokenTTL = 30 * time.Minute

type account struct {
	id           int64
	email        string
	passwordHash []byte
}

type favorite struct {
	id       string
	category *string
}

// Server is a fake backend implementing the six gifbox operations. It is safe
// for concurrent use.
type Server struct {
	mu        sync.Mutex
	accounts  map[string]*account
	nextID    int64
	catalogue []wire.Gif
	saved     map[int64][]*favorite

	secret []byte
	now    func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithSecret sets the HMAC key used to sign JWTs.
func WithSecret(secret []byte) Option {
	return func(s *Server) { s.secret = secret }
}

// WithClock replaces the clock used for issuing and checking tokens.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithCatalogue replaces the seeded GIF catalogue.
func WithCatalogue(gifs []wire.Gif) Option {
	return func(s *Server) { s.catalogue = gifs }
}

// New creates a Server with a random signing key and the default catalogue.
func New(opts ...Option) *Server {
	s := &Server{
		accounts:  map[string]*account{},
		nextID:    1,
		catalogue: DefaultCatalogue(),
		saved:     map[int64][]*favorite{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.secret) == 0 {
		s.secret = make([]byte, 32)
		_, _ = rand.Read(s.secret)
	}
	return s
}

// DefaultCatalogue returns the GIFs the fake provider knows about.
func DefaultCatalogue() []wire.Gif {
	titles := []struct{ id, title string }{
		{"xT9IgG50Fb7Mi0prBC", "cat typing furiously"},
		{"JIX9t2j0ZTN9S", "cat falls off table"},
		{"3oriO0OEd9QIDdllqo", "dog wearing sunglasses"},
		{"4Zo41lhzKt6iZ8xff9", "excited dog zoomies"},
		{"l0MYt5jPR6QX5pnqM", "party parrot"},
		{"26ufdipQqU2lhNA4g", "thumbs up office"},
		{"3o7abKhOpu0NwenH3O", "mind blown"},
		{"l3q2K5jinAlChoCLS", "cat in a box"},
	}
	gifs := make([]wire.Gif, 0, len(titles))
	for _, t := range titles {
		gifs = append(gifs, wire.Gif{
			ID:    t.id,
			Title: t.title,
			URL:   "https://media.giphy.com/media/" + t.id + "/giphy.gif",
		})
	}
	return gifs
}

// Handler returns the HTTP handler serving the API under /api.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/"+wire.EndpointRegister, s.handleRegister)
		r.Post("/"+wire.EndpointLogin, s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.bearerAuth)
			r.Post("/"+wire.EndpointSearchGiphy, s.handleSearch)
			r.Post("/"+wire.EndpointSaveGif, s.handleSaveGif)
			r.Post("/"+wire.EndpointFavorites, s.handleFavorites)
			r.Post("/"+wire.EndpointCategorize, s.handleCategorize)
		})
	})
	return r
}

// writeData replies 200 with a data envelope.
func writeData[T any](w http.ResponseWriter, data T) {
	writeEnvelope(w, wire.DataResponse(data))
}

// writeError replies 200 with an error envelope; the status lives in the payload.
func writeError(w http.ResponseWriter, err wire.Error) {
	writeEnvelope(w, wire.ErrorResponse[struct{}](err))
}

func writeEnvelope(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("rpctest encode failed err=%v", err)
	}
}

// decodeBody reads a JSON request body, replying with a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, wire.NewError(msgInvalidInput, http.StatusBadRequest, map[string]string{"body": err.Error()}))
		return false
	}
	return true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
