package orchestrators

import (
	"context"
	"log/slog"

	accountAPI "leaguedesk/internal/adapters/api/account"
	"leaguedesk/internal/domain/user"
	"leaguedesk/internal/session"
)

// SignupInput carries input for the signup orchestrator.
type SignupInput struct {
	Email           string
	Password        string
	PasswordConfirm string
}

// SignupDeps holds dependencies for Signup.
type SignupDeps struct {
	Accounts accountAPI.Client
	Sessions *session.Manager
}

// ExecuteSignup registers a new account and signs it straight in.
// PRE: st is a live session
// POST: On failure the session's token and overlay state are unchanged
func ExecuteSignup(ctx context.Context, st *session.State, input SignupInput, deps SignupDeps) error {
	creds := user.Credentials{
		Email:           user.NormalizeEmail(input.Email),
		Password:        input.Password,
		PasswordConfirm: input.PasswordConfirm,
	}
	if err := creds.ValidateRegistration(); err != nil {
		return err
	}

	auth, err := deps.Accounts.Register(ctx, creds.Email, creds.Password)
	if err != nil {
		slog.Info("auth_event", "event", "signup_failed", "email", creds.Email)
		return err
	}

	if err := deps.Sessions.SetAuthenticated(ctx, st, auth.AccessToken, auth.RefreshToken); err != nil {
		return err
	}
	st.CloseAuthOverlay()

	slog.Info("auth_event", "event", "signup_success", "email", creds.Email)
	return nil
}
