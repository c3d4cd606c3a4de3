// ABOUTME: Tests for the fake backend's envelope, auth, and per-user favorites behavior.
package rpctest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/2389-research/gifbox/rpc/rpctest"
	"github.com/2389-research/gifbox/wire"
)

func post(t *testing.T, h http.Handler, path, body, auth string) (*httptest.ResponseRecorder, wire.Response[json.RawMessage]) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env wire.Response[json.RawMessage]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %s: %v (%s)", path, err, rec.Body.String())
	}
	return rec, env
}

func TestServer_ErrorsAreHTTP200(t *testing.T) {
	h := rpctest.New().Handler()

	rec, env := post(t, h, "/api/favorites", `{}`, "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected HTTP 200, got %d", rec.Code)
	}
	if env.Err == nil || env.Err.Status != 401 {
		t.Fatalf("expected 401 error envelope, got %+v", env)
	}
	if env.Err.Description != "No credentials provided in request." {
		t.Errorf("unexpected description %q", env.Err.Description)
	}
}

func TestServer_RejectsNonBearerScheme(t *testing.T) {
	s := rpctest.New()
	token, err := s.IssueToken(1, time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	_, env := post(t, s.Handler(), "/api/favorites", `{}`, "Basic "+token)
	if env.Err == nil || !strings.Contains(env.Err.Description, "bearer") {
		t.Errorf("expected scheme error, got %+v", env.Err)
	}
}

func TestServer_TokenForUnknownAccount(t *testing.T) {
	s := rpctest.New()
	token, err := s.IssueToken(99, time.Minute)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	_, env := post(t, s.Handler(), "/api/favorites", `{}`, "bearer "+token)
	if env.Err == nil || env.Err.Status != 401 {
		t.Errorf("expected 401 for unknown account, got %+v", env.Err)
	}
}

func TestServer_TokenSignedWithOtherKey(t *testing.T) {
	other := rpctest.New(rpctest.WithSecret([]byte("other-secret")))
	s := rpctest.New(rpctest.WithSecret([]byte("secret")))
	h := s.Handler()

	_, reg := post(t, h, "/api/register", `{"email":"a@b.com","password":"secret1"}`, "")
	if reg.Err != nil {
		t.Fatalf("register: %+v", reg.Err)
	}
	forged, _ := other.IssueToken(1, time.Minute)

	_, env := post(t, h, "/api/favorites", `{}`, "bearer "+forged)
	if env.Err == nil || env.Err.Description != "Unauthorized. Invalid credentials provided." {
		t.Errorf("expected invalid credentials, got %+v", env.Err)
	}
}

func TestServer_FavoritesArePerUser(t *testing.T) {
	s := rpctest.New(rpctest.WithCatalogue([]wire.Gif{{ID: "g1", Title: "one"}, {ID: "g2", Title: "two"}}))
	h := s.Handler()

	session := func(email string) string {
		_, env := post(t, h, "/api/register", `{"email":"`+email+`","password":"secret1"}`, "")
		var u wire.User
		if err := json.Unmarshal(env.Data, &u); err != nil {
			t.Fatalf("decode user: %v", err)
		}
		return "bearer " + u.JWT
	}
	alice, bob := session("alice@x.io"), session("bob@x.io")

	post(t, h, "/api/save_gif", `{"id":"g2"}`, alice)

	_, env := post(t, h, "/api/favorites", `{}`, alice)
	var favs wire.FetchFavoritesResponse
	_ = json.Unmarshal(env.Data, &favs)
	if len(favs.Gifs) != 1 || favs.Gifs[0].ID != "g2" || !favs.Gifs[0].IsSaved {
		t.Errorf("expected alice to have g2 saved, got %+v", favs.Gifs)
	}

	_, env = post(t, h, "/api/favorites", `{}`, bob)
	favs = wire.FetchFavoritesResponse{}
	_ = json.Unmarshal(env.Data, &favs)
	if len(favs.Gifs) != 0 {
		t.Errorf("expected bob to have no favorites, got %+v", favs.Gifs)
	}
}

func TestServer_MalformedBody(t *testing.T) {
	_, env := post(t, rpctest.New().Handler(), "/api/login", `{not json`, "")
	if env.Err == nil || env.Err.Status != 400 || env.Err.Description != "Invalid input." {
		t.Errorf("expected invalid input, got %+v", env.Err)
	}
}
