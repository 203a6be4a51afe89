package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"tutorbook-service/internal/app/config"
	"tutorbook-service/internal/app/services/core/session"
	"tutorbook-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	internalConfig := &config.InternalConfig{}
	return NewMiddlewares(zap.NewNop(), session.NewCookieSessionStore(internalConfig), internalConfig)
}

func TestRequireSession_RedirectsWithoutCookie(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, constvars.RouteLogin, w.Header().Get(constvars.HeaderLocation))
}

func TestRequireSession_RedirectsOnEmptyCookie(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an empty session cookie")
	}))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: ""})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, constvars.RouteLogin, w.Header().Get(constvars.HeaderLocation))
}

func TestRequireSession_ThreadsTokenIntoContext(t *testing.T) {
	m := newTestMiddlewares()

	var handlerRan bool
	handler := m.RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
		token, err := session.FromContext(r.Context())
		assert.NoError(t, err)
		assert.Equal(t, "opaque-token", token)
	}))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "opaque-token"})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.True(t, handlerRan)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.RedirectIfAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("auth pages must not render for a logged-in user")
	}))

	r := httptest.NewRequest(http.MethodGet, constvars.RouteLogin, nil)
	r.AddCookie(&http.Cookie{Name: constvars.SessionCookieName, Value: "opaque-token"})

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, constvars.RouteDashboard, w.Header().Get(constvars.HeaderLocation))
}

func TestRedirectIfAuthenticated_PassesThroughAnonymous(t *testing.T) {
	m := newTestMiddlewares()

	var handlerRan bool
	handler := m.RedirectIfAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, constvars.RouteLogin, nil))

	assert.True(t, handlerRan)
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(constvars.HeaderXRequestID))
}

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(constvars.HeaderXRequestID, "client-supplied")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, "client-supplied", w.Header().Get(constvars.HeaderXRequestID))
}
