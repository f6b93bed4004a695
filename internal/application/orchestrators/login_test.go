package orchestrators

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"leaguedesk/internal/adapters/api"
	accountAPI "leaguedesk/internal/adapters/api/account"
	"leaguedesk/internal/domain/user"
	"leaguedesk/internal/session"
)

// memSessionStore is an in-memory session.Store for orchestrator tests.
type memSessionStore struct {
	mu   sync.Mutex
	recs map[string]session.Record
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{recs: make(map[string]session.Record)}
}

func (s *memSessionStore) Get(_ context.Context, id string) (session.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return session.Record{}, session.ErrNotFound
	}
	return rec, nil
}

func (s *memSessionStore) Save(_ context.Context, rec session.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.ID] = rec
	return nil
}

func (s *memSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, id)
	return nil
}

func (s *memSessionStore) DeleteExpired(context.Context, time.Time) error { return nil }

// fakeAccounts is a hand mock of the account API client.
type fakeAccounts struct {
	loginFn    func(email, password string) (accountAPI.Auth, error)
	registerFn func(email, password string) (accountAPI.Auth, error)
	refreshFn  func(ctx context.Context) (accountAPI.Auth, bool, error)
	logoutErr  error
	logoutCtx  context.Context
}

func (f *fakeAccounts) Login(_ context.Context, email, password string) (accountAPI.Auth, error) {
	return f.loginFn(email, password)
}
func (f *fakeAccounts) Register(_ context.Context, email, password string) (accountAPI.Auth, error) {
	return f.registerFn(email, password)
}
func (f *fakeAccounts) Refresh(ctx context.Context) (accountAPI.Auth, bool, error) {
	return f.refreshFn(ctx)
}
func (f *fakeAccounts) Logout(ctx context.Context) error {
	f.logoutCtx = ctx
	return f.logoutErr
}
func (f *fakeAccounts) Account(context.Context) (user.User, error) { return user.User{}, nil }

func guestSession(t *testing.T, m *session.Manager) *session.State {
	t.Helper()
	st, err := m.Create(context.Background())
	if err != nil {
		t.Fatalf("Create session: %v", err)
	}
	return st
}

// TestExecuteLogin_Success verifies tokens are stored and the overlay closes.
func TestExecuteLogin_Success(t *testing.T) {
	m := session.NewManager(newMemSessionStore())
	st := guestSession(t, m)
	st.OpenAuthOverlay(session.TabLogin)

	accounts := &fakeAccounts{
		loginFn: func(email, password string) (accountAPI.Auth, error) {
			if email != "pat@example.com" {
				t.Errorf("email = %q, want the normalised address", email)
			}
			return accountAPI.Auth{AccessToken: "access", RefreshToken: "refresh"}, nil
		},
	}
	deps := LoginDeps{Accounts: accounts, Sessions: m}

	input := LoginInput{Email: "  Pat@Example.COM ", Password: "hunter2!"}
	if err := ExecuteLogin(context.Background(), st, input, deps); err != nil {
		t.Fatalf("ExecuteLogin: %v", err)
	}
	if !st.IsAuthenticated() {
		t.Error("session should be authenticated")
	}
	if st.Overlay().Open {
		t.Error("overlay should close on success")
	}
}

// TestExecuteLogin_FailureLeavesSessionUnchanged verifies a rejected login
// keeps the guest state and the overlay as they were.
func TestExecuteLogin_FailureLeavesSessionUnchanged(t *testing.T) {
	m := session.NewManager(newMemSessionStore())
	st := guestSession(t, m)
	st.OpenAuthOverlay(session.TabLogin)

	wantErr := errors.New("invalid email or password")
	accounts := &fakeAccounts{
		loginFn: func(string, string) (accountAPI.Auth, error) {
			return accountAPI.Auth{}, wantErr
		},
	}
	deps := LoginDeps{Accounts: accounts, Sessions: m}

	input := LoginInput{Email: "pat@example.com", Password: "wrong"}
	if err := ExecuteLogin(context.Background(), st, input, deps); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want the login error", err)
	}
	if st.IsAuthenticated() {
		t.Error("session should still be a guest")
	}
	if ov := st.Overlay(); !ov.Open || ov.Tab != session.TabLogin {
		t.Errorf("overlay = %+v, want still open on the login tab", ov)
	}
}

// TestExecuteLogin_ValidationStopsBeforeAPI verifies malformed credentials
// never reach the wire.
func TestExecuteLogin_ValidationStopsBeforeAPI(t *testing.T) {
	m := session.NewManager(newMemSessionStore())
	st := guestSession(t, m)

	accounts := &fakeAccounts{
		loginFn: func(string, string) (accountAPI.Auth, error) {
			t.Fatal("API must not be called for invalid input")
			return accountAPI.Auth{}, nil
		},
	}
	deps := LoginDeps{Accounts: accounts, Sessions: m}

	err := ExecuteLogin(context.Background(), st, LoginInput{Email: "not-an-email", Password: "x"}, deps)
	if !errors.Is(err, user.ErrInvalidEmail) {
		t.Errorf("err = %v, want ErrInvalidEmail", err)
	}
}

// TestExecuteSignup_ConfirmMismatch verifies the cross-field check.
func TestExecuteSignup_ConfirmMismatch(t *testing.T) {
	m := session.NewManager(newMemSessionStore())
	st := guestSession(t, m)

	accounts := &fakeAccounts{
		registerFn: func(string, string) (accountAPI.Auth, error) {
			t.Fatal("API must not be called for mismatched passwords")
			return accountAPI.Auth{}, nil
		},
	}
	deps := SignupDeps{Accounts: accounts, Sessions: m}

	input := SignupInput{Email: "pat@example.com", Password: "longenough", PasswordConfirm: "different"}
	if err := ExecuteSignup(context.Background(), st, input, deps); !errors.Is(err, user.ErrPasswordConfirm) {
		t.Errorf("err = %v, want ErrPasswordConfirm", err)
	}
}

// TestExecuteLogout_ClearsEvenWhenUpstreamFails verifies local logout always
// happens and the upstream error is still reported.
func TestExecuteLogout_ClearsEvenWhenUpstreamFails(t *testing.T) {
	m := session.NewManager(newMemSessionStore())
	st := guestSession(t, m)
	if err := m.SetAuthenticated(context.Background(), st, "access", "refresh"); err != nil {
		t.Fatalf("SetAuthenticated: %v", err)
	}

	upstream := errors.New("connection refused")
	accounts := &fakeAccounts{logoutErr: upstream}
	deps := LogoutDeps{Accounts: accounts, Sessions: m}

	if err := ExecuteLogout(context.Background(), st, deps); !errors.Is(err, upstream) {
		t.Fatalf("err = %v, want the upstream error", err)
	}
	if st.IsAuthenticated() {
		t.Error("session should be a guest regardless of the upstream failure")
	}
	if got := api.RefreshTokenFromContext(accounts.logoutCtx); got != "refresh" {
		t.Errorf("logout refresh cookie = %q, want the held token", got)
	}
}

// TestAccountRefresher verifies the adapter's three outcomes and that the
// held token rides the context as the upstream cookie.
func TestAccountRefresher(t *testing.T) {
	t.Run("exchanged", func(t *testing.T) {
		accounts := &fakeAccounts{
			refreshFn: func(ctx context.Context) (accountAPI.Auth, bool, error) {
				if got := api.RefreshTokenFromContext(ctx); got != "held" {
					t.Errorf("refresh cookie = %q, want held", got)
				}
				return accountAPI.Auth{AccessToken: "new-access", RefreshToken: "new-refresh"}, true, nil
			},
		}
		access, refresh, ok, err := AccountRefresher{Accounts: accounts}.RefreshSession(context.Background(), "held")
		if err != nil || !ok {
			t.Fatalf("RefreshSession = ok=%v err=%v, want ok", ok, err)
		}
		if access != "new-access" || refresh != "new-refresh" {
			t.Errorf("tokens = %q/%q, want new-access/new-refresh", access, refresh)
		}
	})

	t.Run("guest", func(t *testing.T) {
		accounts := &fakeAccounts{
			refreshFn: func(context.Context) (accountAPI.Auth, bool, error) {
				return accountAPI.Auth{}, false, nil
			},
		}
		_, _, ok, err := AccountRefresher{Accounts: accounts}.RefreshSession(context.Background(), "revoked")
		if err != nil || ok {
			t.Errorf("RefreshSession = ok=%v err=%v, want ok=false err=nil", ok, err)
		}
	})

	t.Run("error", func(t *testing.T) {
		wantErr := errors.New("boom")
		accounts := &fakeAccounts{
			refreshFn: func(context.Context) (accountAPI.Auth, bool, error) {
				return accountAPI.Auth{}, false, wantErr
			},
		}
		_, _, ok, err := AccountRefresher{Accounts: accounts}.RefreshSession(context.Background(), "held")
		if ok || !errors.Is(err, wantErr) {
			t.Errorf("RefreshSession = ok=%v err=%v, want the error through", ok, err)
		}
	})
}
