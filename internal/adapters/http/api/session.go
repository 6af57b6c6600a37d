// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// sessionHandler is a handler that additionally receives the caller's
// session id.
type sessionHandler func(w http.ResponseWriter, r *http.Request, sessionID string)

// SessionMinter mints fresh session ids.
type SessionMinter interface {
	NewSession(ctx context.Context) string
}

// sessionCookie assigns and validates the session cookie. Every session
// owns an independent ledger, so the cookie is the only session scoping
// the HTTP layer needs.
type sessionCookie struct {
	name   string
	minter SessionMinter
}

func newSessionCookie(name string, minter SessionMinter) *sessionCookie {
	return &sessionCookie{name: name, minter: minter}
}

// wrap ensures the request carries a valid session cookie, minting one when
// absent or malformed, and passes the session id to the next handler.
func (s *sessionCookie) wrap(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(s.name); err == nil {
			// Reject junk cookie values so they cannot mint arbitrary
			// sessions in the registry.
			if _, err := uuid.Parse(c.Value); err == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = s.minter.NewSession(r.Context())
			http.SetCookie(w, &http.Cookie{
				Name:     s.name,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next(w, r, id)
	}
}
