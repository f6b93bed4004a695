package account

import (
	"context"

	domain "leaguedesk/internal/domain/user"
)

// Auth is the outcome of a successful login, registration, or refresh.
// RefreshToken is the upstream refresh-cookie value; this app stores it per
// browser session and replays it on refresh/logout; the browser never sees
// it.
type Auth struct {
	AccessToken  string
	RefreshToken string
}

// Client talks to the auth and account endpoints of the league API.
type Client interface {
	// Login exchanges credentials for tokens. The email must already be
	// normalised.
	Login(ctx context.Context, email, password string) (Auth, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, email, password string) (Auth, error)

	// Refresh exchanges the refresh cookie (from ctx) for a new access
	// token. ok=false means the server answered "no session" (204), which
	// is a guest, not an error.
	Refresh(ctx context.Context) (auth Auth, ok bool, err error)

	// Logout invalidates the refresh cookie server-side.
	Logout(ctx context.Context) error

	// Account fetches the signed-in user's profile.
	Account(ctx context.Context) (domain.User, error)
}
