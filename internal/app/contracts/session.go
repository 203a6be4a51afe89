package contracts

import (
	"net/http"
)

// SessionStore persists the opaque bearer token in a client-held, HTTP-only
// cookie. The token is never parsed; only its presence matters.
type SessionStore interface {
	// Token returns the stored token. An absent or empty cookie yields an
	// Unauthenticated error.
	Token(r *http.Request) (string, error)
	Set(w http.ResponseWriter, token string)
	// Clear removes the session unconditionally, present or not.
	Clear(w http.ResponseWriter)
}
