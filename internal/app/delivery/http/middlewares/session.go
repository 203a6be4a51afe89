package middlewares

import (
	"net/http"
	"tutorbook-service/internal/app/services/core/session"
	"tutorbook-service/internal/pkg/constvars"
	"tutorbook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireSession gates protected pages. A request without a usable session
// cookie never reaches the handler; it is sent to the login page instead.
func (m *Middlewares) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.SessionStore.Token(r)
		if err != nil {
			m.Log.Info("unauthenticated request redirected to login",
				zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.Redirect(w, r, constvars.RouteLogin)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.NewContext(r.Context(), token)))
	})
}

// RedirectIfAuthenticated keeps logged-in users off the auth pages.
func (m *Middlewares) RedirectIfAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := m.SessionStore.Token(r); err == nil {
			utils.Redirect(w, r, constvars.RouteDashboard)
			return
		}

		next.ServeHTTP(w, r)
	})
}
