package middleware

import (
	"context"
	"net/http"

	"leaguedesk/internal/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// SessionCookieName is the browser session cookie.
const SessionCookieName = "leaguedesk_session"

// Session returns middleware that resolves the browser session and puts its
// State in the request context. Requests without a valid cookie get a fresh
// guest session. The once-per-session startup refresh runs here, so handlers
// downstream always see settled token state.
func Session(manager *session.Manager, refresher session.Refresher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st, ok := sessionFromCookie(r, manager)
			if !ok {
				created, err := manager.Create(r.Context())
				if err != nil {
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
				st = created
				SetSessionCookie(w, st.ID)
			}

			manager.EnsureRefreshed(r.Context(), st, refresher)

			ctx := context.WithValue(r.Context(), sessionContextKey, st)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAccount returns middleware that guards signed-in-only routes. The
// check is the session's word alone: it keeps guests off account pages, while
// the league API remains the authority on every actual operation.
func RequireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st, ok := SessionFromContext(r.Context())
		if !ok || !st.IsAuthenticated() {
			http.Redirect(w, r, "/?auth=login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionFromContext extracts the session state from the request context.
func SessionFromContext(ctx context.Context) (*session.State, bool) {
	st, ok := ctx.Value(sessionContextKey).(*session.State)
	return st, ok
}

// ContextWithSession returns a context with the given session state set.
// Intended for use in tests.
func ContextWithSession(ctx context.Context, st *session.State) context.Context {
	return context.WithValue(ctx, sessionContextKey, st)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		HttpOnly: true,
		Secure:   false, // Allow HTTP for local development
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(session.TTL.Seconds()),
	})
}

func sessionFromCookie(r *http.Request, manager *session.Manager) (*session.State, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return manager.Get(r.Context(), cookie.Value)
}
