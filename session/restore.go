// ABOUTME: Restore reads the persisted user at bootstrap and drops sessions whose JWT has expired.
// ABOUTME: The token is decoded without verification; the server remains the authority on validity.
package session

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/2389-research/gifbox/core"
	"github.com/2389-research/gifbox/wire"
	"github.com/golang-jwt/jwt/v5"
)

// Restore returns the persisted user, or nil when there is none, it cannot
// be decoded, or its token expired before now. Unusable sessions are deleted.
func Restore(store core.SessionStore, now time.Time) *wire.User {
	raw, err := store.Get(core.SessionKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		log.Printf("session restore failed err=%v", err)
		return nil
	}

	var u wire.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.JWT == "" {
		log.Printf("session restore discarded reason=undecodable err=%v", err)
		discard(store)
		return nil
	}

	if exp, ok := tokenExpiry(u.JWT); ok && !now.Before(exp) {
		log.Printf("session restore discarded reason=expired user_id=%d expired_at=%s", u.ID, exp.Format(time.RFC3339))
		discard(store)
		return nil
	}
	return &u
}

// tokenExpiry reads the exp claim without checking the signature. ok is
// false when the token has no readable expiry.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func discard(store core.SessionStore) {
	if err := store.Delete(core.SessionKey); err != nil {
		log.Printf("session discard failed err=%v", err)
	}
}
