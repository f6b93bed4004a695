package orchestrators

import (
	"context"
	"log/slog"

	"leaguedesk/internal/adapters/api"
	accountAPI "leaguedesk/internal/adapters/api/account"
	"leaguedesk/internal/session"
)

// LogoutDeps holds dependencies for Logout.
type LogoutDeps struct {
	Accounts accountAPI.Client
	Sessions *session.Manager
}

// ExecuteLogout invalidates the upstream refresh token and clears the local
// session. The local token is cleared even when the upstream call fails; the
// error is still returned so the UI can report it.
// PRE: st is a live session
// POST: st.IsAuthenticated() is false
func ExecuteLogout(ctx context.Context, st *session.State, deps LogoutDeps) error {
	callCtx := api.WithRefreshToken(api.WithBearer(ctx, st.AccessToken()), st.RefreshToken())
	upstreamErr := deps.Accounts.Logout(callCtx)

	if err := deps.Sessions.ClearAuthenticated(ctx, st); err != nil {
		slog.Warn("session_save_failed", "error", err)
	}

	if upstreamErr != nil {
		slog.Warn("auth_event", "event", "logout_upstream_failed", "error", upstreamErr)
		return upstreamErr
	}
	slog.Info("auth_event", "event", "logout")
	return nil
}

// AccountRefresher adapts the account client to the session.Refresher
// interface used by the startup refresh gate.
type AccountRefresher struct {
	Accounts accountAPI.Client
}

// RefreshSession exchanges a held refresh token for a fresh access token.
// POST: ok=false means "no session" (guest), not an error
func (r AccountRefresher) RefreshSession(ctx context.Context, refreshToken string) (string, string, bool, error) {
	auth, ok, err := r.Accounts.Refresh(api.WithRefreshToken(ctx, refreshToken))
	if err != nil || !ok {
		return "", "", false, err
	}
	return auth.AccessToken, auth.RefreshToken, true, nil
}
