package account

import (
	"context"
	"net/http"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/user"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenReply struct {
	AccessToken string `json:"accessToken"`
}

type wireUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Login exchanges credentials for tokens.
// PRE: email is normalised, password non-empty
// POST: On success Auth carries the access token and the refresh-cookie value
func (c *HTTPClient) Login(ctx context.Context, email, password string) (Auth, error) {
	return c.exchange(ctx, "/login", email, password)
}

// Register creates an account and signs it in.
// PRE: credentials passed ValidateRegistration
// POST: Same contract as Login
func (c *HTTPClient) Register(ctx context.Context, email, password string) (Auth, error) {
	return c.exchange(ctx, "/register", email, password)
}

func (c *HTTPClient) exchange(ctx context.Context, path, email, password string) (Auth, error) {
	resp, err := c.api.Do(ctx, http.MethodPost, path, credentialsPayload{Email: email, Password: password})
	if err != nil {
		return Auth{}, err
	}
	var reply tokenReply
	if err := resp.Decode(&reply); err != nil {
		return Auth{}, err
	}
	return Auth{
		AccessToken:  reply.AccessToken,
		RefreshToken: refreshCookieValue(resp.Cookies),
	}, nil
}

// Refresh exchanges the refresh cookie for a new access token.
// PRE: ctx carries the refresh-cookie value when one is held
// POST: ok=false on a 204 "no session" reply; err only on real failures
func (c *HTTPClient) Refresh(ctx context.Context) (Auth, bool, error) {
	resp, err := c.api.Do(ctx, http.MethodPost, "/refresh-token", nil)
	if err != nil {
		return Auth{}, false, err
	}
	if resp.NoContent() {
		return Auth{}, false, nil
	}
	var reply tokenReply
	if err := resp.Decode(&reply); err != nil {
		return Auth{}, false, err
	}
	auth := Auth{
		AccessToken:  reply.AccessToken,
		RefreshToken: refreshCookieValue(resp.Cookies),
	}
	// The server may rotate the cookie or leave it alone; keep the old one
	// when no new cookie arrived.
	if auth.RefreshToken == "" {
		auth.RefreshToken = api.RefreshTokenFromContext(ctx)
	}
	return auth, auth.AccessToken != "", nil
}

// Logout invalidates the refresh cookie server-side.
func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.api.Do(ctx, http.MethodPost, "/logout", nil)
	return err
}

// Account fetches the signed-in user's profile.
func (c *HTTPClient) Account(ctx context.Context) (domain.User, error) {
	var w wireUser
	if err := c.api.Get(ctx, "/account", &w); err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: w.ID, Email: w.Email, Role: w.Role, CreatedAt: w.CreatedAt}, nil
}

func refreshCookieValue(cookies []*http.Cookie) string {
	for _, ck := range cookies {
		if ck.Name == api.RefreshCookieName {
			return ck.Value
		}
	}
	return ""
}
