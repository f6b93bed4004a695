package session

import "sync"

// DialogKind names one dialog type in the UI. A dialog instance is
// identified by kind plus the entity it targets, so two "edit team" dialogs
// for different teams never collide, and neither do an "edit league" and an
// "edit team" dialog that happen to share an entity id.
type DialogKind string

const (
	DialogEditLeague     DialogKind = "edit_league"
	DialogAddConference  DialogKind = "add_conference"
	DialogEditConference DialogKind = "edit_conference"
	DialogAddDivision    DialogKind = "add_division"
	DialogEditDivision   DialogKind = "edit_division"
	DialogAddTeam        DialogKind = "add_team"
	DialogEditTeam       DialogKind = "edit_team"
	DialogAddPlayer      DialogKind = "add_player"
	DialogEditPlayer     DialogKind = "edit_player"
	DialogAddSeason      DialogKind = "add_season"
	DialogEditSeason     DialogKind = "edit_season"
	DialogAddGame        DialogKind = "add_game"
	DialogEditGame       DialogKind = "edit_game"
	DialogEditGameResult DialogKind = "edit_game_result"
	DialogAddVenue       DialogKind = "add_venue"
	DialogEditVenue      DialogKind = "edit_venue"
	DialogAddNews        DialogKind = "add_news"
	DialogEditNews       DialogKind = "edit_news"
)

// ValidDialogKinds contains every kind the open/close endpoints accept.
var ValidDialogKinds = map[DialogKind]bool{
	DialogEditLeague: true, DialogAddConference: true, DialogEditConference: true,
	DialogAddDivision: true, DialogEditDivision: true,
	DialogAddTeam: true, DialogEditTeam: true,
	DialogAddPlayer: true, DialogEditPlayer: true,
	DialogAddSeason: true, DialogEditSeason: true,
	DialogAddGame: true, DialogEditGame: true, DialogEditGameResult: true,
	DialogAddVenue: true, DialogEditVenue: true,
	DialogAddNews: true, DialogEditNews: true,
}

// DialogTarget identifies one dialog instance. EntityID is the targeted
// entity for edit dialogs and the parent scope for add dialogs (e.g. the
// season id for an "add game" dialog). It may be empty for dialogs with a
// single instance per page.
type DialogTarget struct {
	Kind     DialogKind
	EntityID string
}

// DialogRegistry tracks which dialogs are open for one browser session.
// Multiple dialogs may be open at once; opening or closing one target never
// affects any other. Safe for concurrent use.
type DialogRegistry struct {
	mu   sync.RWMutex
	open map[DialogTarget]bool
}

// NewDialogRegistry creates an empty registry (everything closed).
func NewDialogRegistry() *DialogRegistry {
	return &DialogRegistry{open: make(map[DialogTarget]bool)}
}

// Open marks the target open.
// POST: IsOpen(target) is true; no other target changes
func (r *DialogRegistry) Open(target DialogTarget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open[target] = true
}

// Close marks the target closed. Closing an already-closed target is a no-op.
func (r *DialogRegistry) Close(target DialogTarget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.open, target)
}

// IsOpen reports whether the target is open. Absent targets are closed.
func (r *DialogRegistry) IsOpen(target DialogTarget) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.open[target]
}

// OpenTargets returns every open target, in no particular order.
func (r *DialogRegistry) OpenTargets() []DialogTarget {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]DialogTarget, 0, len(r.open))
	for t := range r.open {
		out = append(out, t)
	}
	return out
}

// CloseAll closes every dialog (used on logout).
func (r *DialogRegistry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open = make(map[DialogTarget]bool)
}
