// ABOUTME: JWT issuing and bearer-token middleware for the fake backend.
// ABOUTME: Invalid or expired tokens are answered with a 401 error envelope, not an HTTP 401.
package rpctest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2389-research/gifbox/wire"
	"github.com/golang-jwt/jwt/v5"
)

const (
	msgNoCredentials = "No credentials provided in request."
	msgBadScheme     = "Invalid authorization scheme specified, must be 'bearer'."
	msgTokenInvalid  = "Unauthorized. Invalid credentials provided."
	msgTokenExpired  = "Unauthorized. Given credentials have expired."
)

type ctxKey int

const userIDKey ctxKey = iota

// Claims is the JWT body issued to users.
type Claims struct {
	jwt.RegisteredClaims
}

// IssueToken signs a token for userID valid for ttl from the server's clock.
func (s *Server) IssueToken(userID int64, ttl time.Duration) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// userFromToken validates raw and returns the user id it was issued to.
func (s *Server) userFromToken(raw string) (int64, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, wire.NewError(msgTokenExpired, http.StatusUnauthorized, nil)
		}
		return 0, wire.NewError(msgTokenInvalid, http.StatusUnauthorized, nil)
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, wire.NewError(msgTokenInvalid, http.StatusUnauthorized, nil)
	}
	return id, nil
}

// bearerAuth requires "Authorization: bearer <jwt>" and stores the user id
// in the request context.
func (s *Server) bearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, wire.NewError(msgNoCredentials, http.StatusUnauthorized, nil))
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") {
			writeError(w, wire.NewError(msgBadScheme, http.StatusUnauthorized, nil))
			return
		}
		id, err := s.userFromToken(strings.TrimSpace(token))
		if err != nil {
			writeError(w, wire.AsError(err))
			return
		}
		if !s.accountExists(id) {
			writeError(w, wire.NewError(msgTokenInvalid, http.StatusUnauthorized, nil))
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, id)))
	})
}

func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

func (s *Server) accountExists(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.id == id {
			return true
		}
	}
	return false
}
