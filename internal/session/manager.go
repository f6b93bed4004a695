package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// TTL is how long a browser session lives. Matches the cookie MaxAge set by
// the web layer.
const TTL = 7 * 24 * time.Hour

// Record is the durable part of a session. View state (dialogs, drawer,
// flashes) is process-local and rebuilt empty after a restart; tokens
// survive so users stay signed in.
type Record struct {
	ID           string
	AccessToken  string
	RefreshToken string
	CreatedAt    time.Time
}

// Store persists session Records.
type Store interface {
	Get(ctx context.Context, id string) (Record, error)
	Save(ctx context.Context, rec Record) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, before time.Time) error
}

// ErrNotFound is returned by Store implementations for unknown session ids.
var ErrNotFound = errors.New("session not found")

// Refresher obtains a fresh access token from a held refresh token. It is
// the account API client, narrowed to what the startup gate needs.
type Refresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (access, refresh string, ok bool, err error)
}

// Manager is the single source of truth for browser sessions. It layers
// process-local State over the persistent Store and runs the once-per-session
// startup refresh gate.
type Manager struct {
	mu    sync.RWMutex
	live  map[string]*State
	store Store
	now   func() time.Time
}

// NewManager creates a Manager over the given persistent store.
func NewManager(store Store) *Manager {
	return &Manager{
		live:  make(map[string]*State),
		store: store,
		now:   time.Now,
	}
}

// Create starts a new guest session and persists its record.
// POST: the returned State is live and its ID is a fresh random token
func (m *Manager) Create(ctx context.Context) (*State, error) {
	id, err := generateToken()
	if err != nil {
		return nil, err
	}
	st := newState(id, m.now())
	if err := m.store.Save(ctx, Record{ID: id, CreatedAt: st.CreatedAt}); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.live[id] = st
	m.mu.Unlock()
	return st, nil
}

// Get returns the live State for a session id, reviving it from the store
// after a restart. Expired or unknown sessions return ok=false.
func (m *Manager) Get(ctx context.Context, id string) (*State, bool) {
	if id == "" {
		return nil, false
	}
	m.mu.RLock()
	st, ok := m.live[id]
	m.mu.RUnlock()
	if ok {
		if m.expired(st.CreatedAt) {
			m.Destroy(ctx, id)
			return nil, false
		}
		return st, true
	}

	rec, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, false
	}
	if m.expired(rec.CreatedAt) {
		_ = m.store.Delete(ctx, id)
		return nil, false
	}

	st = newState(rec.ID, rec.CreatedAt)
	st.accessToken = rec.AccessToken
	st.refreshToken = rec.RefreshToken
	st.identity = IdentityFromToken(rec.AccessToken)
	// A revived session re-runs the startup refresh so a stale access token
	// gets replaced before the first authorised call.
	st.refreshed = false

	m.mu.Lock()
	if existing, raced := m.live[id]; raced {
		st = existing
	} else {
		m.live[id] = st
	}
	m.mu.Unlock()
	return st, true
}

// Destroy removes a session everywhere.
func (m *Manager) Destroy(ctx context.Context, id string) {
	m.mu.Lock()
	delete(m.live, id)
	m.mu.Unlock()
	if err := m.store.Delete(ctx, id); err != nil {
		slog.Warn("session_delete_failed", "error", err)
	}
}

// SetAuthenticated stores the token pair after a successful login, signup,
// or refresh, and persists the record.
// POST: st.IsAuthenticated() is true; identity reflects the token claims
func (m *Manager) SetAuthenticated(ctx context.Context, st *State, access, refresh string) error {
	st.setTokens(access, refresh, IdentityFromToken(access))
	return m.store.Save(ctx, Record{
		ID:           st.ID,
		AccessToken:  access,
		RefreshToken: refresh,
		CreatedAt:    st.CreatedAt,
	})
}

// ClearAuthenticated drops the token pair (logout, failed refresh) and
// persists the now-guest record.
// POST: st.IsAuthenticated() is false
func (m *Manager) ClearAuthenticated(ctx context.Context, st *State) error {
	st.clearTokens()
	st.Dialogs.CloseAll()
	return m.store.Save(ctx, Record{ID: st.ID, CreatedAt: st.CreatedAt})
}

// EnsureRefreshed runs the once-per-session startup refresh: if the session
// holds a refresh token but no verified access token yet, exchange it before
// the request proceeds. Concurrent requests for the same session block on
// the same gate, so the exchange happens exactly once.
// POST: st.refreshed is true; token state reflects the refresh outcome
func (m *Manager) EnsureRefreshed(ctx context.Context, st *State, refresher Refresher) {
	st.mu.RLock()
	done := st.refreshed
	st.mu.RUnlock()
	if done {
		return
	}

	st.refreshGate.Lock()
	defer st.refreshGate.Unlock()

	st.mu.RLock()
	done = st.refreshed
	refreshToken := st.refreshToken
	st.mu.RUnlock()
	if done {
		return
	}
	if refreshToken == "" {
		// Guest with nothing to exchange; mark the gate passed.
		st.mu.Lock()
		st.refreshed = true
		st.mu.Unlock()
		return
	}

	access, refresh, ok, err := refresher.RefreshSession(ctx, refreshToken)
	switch {
	case err != nil:
		slog.Warn("session_refresh_failed", "error", err)
		if err := m.ClearAuthenticated(ctx, st); err != nil {
			slog.Warn("session_save_failed", "error", err)
		}
	case !ok:
		// 204: the server no longer recognises the refresh token.
		if err := m.ClearAuthenticated(ctx, st); err != nil {
			slog.Warn("session_save_failed", "error", err)
		}
	default:
		if err := m.SetAuthenticated(ctx, st, access, refresh); err != nil {
			slog.Warn("session_save_failed", "error", err)
		}
		slog.Info("auth_event", "event", "session_refreshed", "session", st.ID[:8])
	}
}

// PurgeExpired deletes expired session records, returning silently on error.
func (m *Manager) PurgeExpired(ctx context.Context) {
	cutoff := m.now().Add(-TTL)
	if err := m.store.DeleteExpired(ctx, cutoff); err != nil {
		slog.Warn("session_purge_failed", "error", err)
	}
	m.mu.Lock()
	for id, st := range m.live {
		if m.expired(st.CreatedAt) {
			delete(m.live, id)
		}
	}
	m.mu.Unlock()
}

func (m *Manager) expired(createdAt time.Time) bool {
	return m.now().Sub(createdAt) > TTL
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
