// Package session owns the browser session: the bearer token obtained from
// the league API, the auth overlay, the dialog registry, and the mobile
// drawer flag. Every other component reads through accessors and mutates
// only via the operations here and in the auth orchestrators.
package session

import (
	"sync"
	"time"
)

// Auth overlay tabs.
const (
	TabLogin    = "login"
	TabRegister = "register"
)

// AuthOverlay is the login/registration overlay state.
type AuthOverlay struct {
	Open bool
	Tab  string // TabLogin or TabRegister
}

// Flash is a transient corner notice consumed on the next render.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// Identity is what the UI knows about the signed-in user, parsed from the
// access token's claims. UI hint only; the API re-checks every call.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

// State is one browser session. Token fields are mutated only through the
// Manager; view state is mutated through the methods below.
type State struct {
	ID        string
	CreatedAt time.Time

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	identity     Identity
	refreshed    bool       // startup refresh already attempted
	refreshGate  sync.Mutex // serialises the startup refresh

	overlay    AuthOverlay
	drawerOpen bool
	flashes    []Flash
	busy       map[DialogTarget]bool // form submissions in flight

	Dialogs *DialogRegistry
}

func newState(id string, createdAt time.Time) *State {
	return &State{
		ID:        id,
		CreatedAt: createdAt,
		overlay:   AuthOverlay{Tab: TabLogin},
		busy:      make(map[DialogTarget]bool),
		Dialogs:   NewDialogRegistry(),
	}
}

// IsAuthenticated is derived: a session is authenticated iff it holds an
// access token.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

// AccessToken returns the current bearer token ("" for guests).
func (s *State) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the held upstream refresh-cookie value.
func (s *State) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Identity returns the claims-derived identity of the signed-in user.
func (s *State) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Overlay returns the auth overlay state.
func (s *State) Overlay() AuthOverlay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overlay
}

// OpenAuthOverlay shows the overlay with the given tab preselected.
// PRE: tab is TabLogin or TabRegister; anything else falls back to login
func (s *State) OpenAuthOverlay(tab string) {
	if tab != TabLogin && tab != TabRegister {
		tab = TabLogin
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay = AuthOverlay{Open: true, Tab: tab}
}

// CloseAuthOverlay hides the overlay.
func (s *State) CloseAuthOverlay() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay.Open = false
}

// DrawerOpen reports the mobile navigation drawer state.
func (s *State) DrawerOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drawerOpen
}

// OpenDrawer opens the mobile navigation drawer.
func (s *State) OpenDrawer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawerOpen = true
}

// CloseDrawer closes the mobile navigation drawer.
func (s *State) CloseDrawer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawerOpen = false
}

// AddFlash queues a transient notice for the next render.
func (s *State) AddFlash(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, Flash{Kind: kind, Message: message})
}

// TakeFlashes returns and clears the queued notices.
func (s *State) TakeFlashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}

// BeginSubmit marks a form submission in flight for the given dialog target.
// Returns false when one is already in flight, which blocks resubmission.
func (s *State) BeginSubmit(target DialogTarget) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy[target] {
		return false
	}
	s.busy[target] = true
	return true
}

// EndSubmit clears the in-flight mark for the given dialog target.
func (s *State) EndSubmit(target DialogTarget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, target)
}

// setTokens replaces the token pair and identity atomically.
func (s *State) setTokens(access, refresh string, id Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = access
	s.refreshToken = refresh
	s.identity = id
	s.refreshed = true
}

// clearTokens drops the token pair and identity.
func (s *State) clearTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = ""
	s.refreshToken = ""
	s.identity = Identity{}
	s.refreshed = true
}
