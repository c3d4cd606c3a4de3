// ABOUTME: Handlers for the six fake backend operations, mirroring the real server's error semantics.
package rpctest

import (
	"net/http"
	"strings"

	"github.com/2389-research/gifbox/wire"
	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt cost for stored passwords. Accounts only live
// as long as the process.
const passwordCost = bcrypt.MinCost

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req wire.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateCredentials(req.Email, req.Password); fields != nil {
		writeError(w, wire.NewError(msgInvalidInput, http.StatusBadRequest, fields))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		writeError(w, wire.InternalError())
		return
	}

	email := normalizeEmail(req.Email)
	s.mu.Lock()
	if _, taken := s.accounts[email]; taken {
		s.mu.Unlock()
		writeError(w, wire.NewError(msgEmailTaken, http.StatusBadRequest, nil))
		return
	}
	acct := &account{id: s.nextID, email: email, passwordHash: hash}
	s.nextID++
	s.accounts[email] = acct
	s.mu.Unlock()

	s.writeSession(w, acct)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req wire.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if fields := validateCredentials(req.Email, req.Password); fields != nil {
		writeError(w, wire.NewError(msgInvalidInput, http.StatusBadRequest, fields))
		return
	}

	s.mu.Lock()
	acct, ok := s.accounts[normalizeEmail(req.Email)]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)) != nil {
		writeError(w, wire.NewError(msgInvalidCredentials, http.StatusUnauthorized, nil))
		return
	}
	s.writeSession(w, acct)
}

func (s *Server) writeSession(w http.ResponseWriter, acct *account) {
	token, err := s.IssueToken(acct.id, TokenTTL)
	if err != nil {
		writeError(w, wire.InternalError())
		return
	}
	writeData(w, wire.User{ID: acct.id, Email: acct.email, JWT: token})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req wire.SearchGiphyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	uid := userID(r)
	query := strings.ToLower(strings.TrimSpace(req.Query))

	s.mu.Lock()
	defer s.mu.Unlock()
	gifs := []wire.Gif{}
	for _, g := range s.catalogue {
		if query != "" && !strings.Contains(strings.ToLower(g.Title), query) {
			continue
		}
		gifs = append(gifs, s.decorate(uid, g))
	}
	writeData(w, wire.SearchGiphyResponse{Gifs: gifs})
}

func (s *Server) handleSaveGif(w http.ResponseWriter, r *http.Request) {
	var req wire.SaveGifRequest
	if !decodeBody(w, r, &req) {
		return
	}
	uid := userID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.lookup(req.ID)
	if !ok {
		writeError(w, wire.NewError(msgUnknownGif, http.StatusBadRequest, nil))
		return
	}
	if s.findFavorite(uid, g.ID) == nil {
		s.saved[uid] = append(s.saved[uid], &favorite{id: g.ID})
	}
	writeData(w, wire.SaveGifResponse{Gif: s.decorate(uid, g)})
}

func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	gifs := []wire.Gif{}
	for _, f := range s.saved[uid] {
		if g, ok := s.lookup(f.id); ok {
			gifs = append(gifs, s.decorate(uid, g))
		}
	}
	writeData(w, wire.FetchFavoritesResponse{Gifs: gifs})
}

func (s *Server) handleCategorize(w http.ResponseWriter, r *http.Request) {
	var req wire.CategorizeGifRequest
	if !decodeBody(w, r, &req) {
		return
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		writeError(w, wire.NewError(msgInvalidInput, http.StatusBadRequest, map[string]string{"category": "Category must not be empty."}))
		return
	}
	uid := userID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.findFavorite(uid, req.ID)
	g, ok := s.lookup(req.ID)
	if f == nil || !ok {
		writeError(w, wire.NewError(msgNotSaved, http.StatusBadRequest, nil))
		return
	}
	f.category = &category
	writeData(w, wire.CategorizeGifResponse{Gif: s.decorate(uid, g)})
}

// decorate marks g with the user's saved state. Callers hold s.mu.
func (s *Server) decorate(uid int64, g wire.Gif) wire.Gif {
	if f := s.findFavorite(uid, g.ID); f != nil {
		g.IsSaved = true
		if f.category != nil {
			c := *f.category
			g.Category = &c
		}
	}
	return g
}

// findFavorite returns the user's favorite entry for id. Callers hold s.mu.
func (s *Server) findFavorite(uid int64, id string) *favorite {
	for _, f := range s.saved[uid] {
		if f.id == id {
			return f
		}
	}
	return nil
}

// lookup finds a GIF in the catalogue. Callers hold s.mu.
func (s *Server) lookup(id string) (wire.Gif, bool) {
	for _, g := range s.catalogue {
		if g.ID == id {
			return g, true
		}
	}
	return wire.Gif{}, false
}

func validateCredentials(email, password string) map[string]string {
	fields := map[string]string{}
	if !wire.ValidEmail(strings.TrimSpace(email)) {
		fields["email"] = wire.EmailErrorMessage
	}
	if !wire.ValidPassword(password) {
		fields["password"] = wire.PasswordErrorMessage
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
