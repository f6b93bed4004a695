package orchestrators

import (
	"context"
	"log/slog"

	accountAPI "leaguedesk/internal/adapters/api/account"
	"leaguedesk/internal/domain/user"
	"leaguedesk/internal/session"
)

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Email    string
	Password string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	Accounts accountAPI.Client
	Sessions *session.Manager
}

// ExecuteLogin normalises the email, exchanges credentials with the API, and
// on success stores the token pair and closes the auth overlay.
// PRE: st is a live session
// POST: On failure the session's token and overlay state are unchanged
func ExecuteLogin(ctx context.Context, st *session.State, input LoginInput, deps LoginDeps) error {
	creds := user.Credentials{
		Email:    user.NormalizeEmail(input.Email),
		Password: input.Password,
	}
	if err := creds.ValidateLogin(); err != nil {
		return err
	}

	auth, err := deps.Accounts.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", creds.Email)
		return err
	}

	if err := deps.Sessions.SetAuthenticated(ctx, st, auth.AccessToken, auth.RefreshToken); err != nil {
		return err
	}
	st.CloseAuthOverlay()

	slog.Info("auth_event", "event", "login_success", "email", creds.Email)
	return nil
}
