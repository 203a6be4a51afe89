package session

import (
	"context"
	"net/http"
	"tutorbook-service/internal/app/config"
	"tutorbook-service/internal/app/contracts"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/exceptions"
)

// cookieSessionStore keeps the opaque bearer token in an HTTP-only cookie on
// the client. Nothing is held server-side; every request carries its own
// token copy.
type cookieSessionStore struct {
	secure bool
}

func NewCookieSessionStore(internalConfig *config.InternalConfig) contracts.SessionStore {
	return &cookieSessionStore{
		secure: internalConfig.Session.CookieSecure,
	}
}

func (s *cookieSessionStore) Token(r *http.Request) (string, error) {
	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", exceptions.ErrSessionTokenMissing(err)
	}
	return cookie.Value, nil
}

func (s *cookieSessionStore) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     constvars.SessionCookiePath,
		MaxAge:   constvars.SessionCookieMaxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *cookieSessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     constvars.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromContext returns the token the session gate stored for this request.
// Handlers behind the gate treat a missing value as Unauthenticated rather
// than proceeding without credentials.
func FromContext(ctx context.Context) (string, error) {
	token, ok := ctx.Value(constvars.CONTEXT_SESSION_TOKEN_KEY).(string)
	if !ok || token == "" {
		return "", exceptions.ErrSessionTokenNotInContext(nil)
	}
	return token, nil
}

// NewContext threads the token into the request context for downstream
// handlers and usecases.
func NewContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_TOKEN_KEY, token)
}
