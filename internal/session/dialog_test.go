package session

import "testing"

// TestDialogRegistry_TargetsAreIsolated verifies that opening or closing one
// dialog instance never affects another, whether they share a kind or an
// entity id.
func TestDialogRegistry_TargetsAreIsolated(t *testing.T) {
	r := NewDialogRegistry()
	teamA := DialogTarget{Kind: DialogEditTeam, EntityID: "a"}
	teamB := DialogTarget{Kind: DialogEditTeam, EntityID: "b"}
	leagueA := DialogTarget{Kind: DialogEditLeague, EntityID: "a"}

	r.Open(teamA)
	r.Open(teamB)
	r.Open(leagueA)

	if !r.IsOpen(teamA) || !r.IsOpen(teamB) || !r.IsOpen(leagueA) {
		t.Fatal("all three targets should be open")
	}

	r.Close(teamA)
	if r.IsOpen(teamA) {
		t.Error("teamA should be closed")
	}
	if !r.IsOpen(teamB) {
		t.Error("closing teamA must not close teamB (same kind, different entity)")
	}
	if !r.IsOpen(leagueA) {
		t.Error("closing teamA must not close leagueA (same entity, different kind)")
	}
}

// TestDialogRegistry_CloseIdempotent verifies closing a closed target is a
// no-op.
func TestDialogRegistry_CloseIdempotent(t *testing.T) {
	r := NewDialogRegistry()
	target := DialogTarget{Kind: DialogAddVenue, EntityID: "l1"}

	r.Close(target)
	if r.IsOpen(target) {
		t.Error("never-opened target should report closed")
	}

	r.Open(target)
	r.Close(target)
	r.Close(target)
	if r.IsOpen(target) {
		t.Error("target should stay closed")
	}
}

// TestDialogRegistry_CloseAll verifies the logout sweep.
func TestDialogRegistry_CloseAll(t *testing.T) {
	r := NewDialogRegistry()
	r.Open(DialogTarget{Kind: DialogAddTeam, EntityID: "l1"})
	r.Open(DialogTarget{Kind: DialogEditPlayer, EntityID: "p1"})

	r.CloseAll()
	if got := r.OpenTargets(); len(got) != 0 {
		t.Errorf("open targets after CloseAll = %d, want 0", len(got))
	}
}
