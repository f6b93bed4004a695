package session

import (
	"testing"
	"time"
)

func testState() *State {
	return newState("test-session", time.Now())
}

// TestBeginSubmit_BlocksDuplicate verifies the per-target busy gate: one
// submission in flight per dialog target, independent across targets.
func TestBeginSubmit_BlocksDuplicate(t *testing.T) {
	st := testState()
	target := DialogTarget{Kind: DialogEditTeam, EntityID: "t1"}
	other := DialogTarget{Kind: DialogEditTeam, EntityID: "t2"}

	if !st.BeginSubmit(target) {
		t.Fatal("first BeginSubmit should succeed")
	}
	if st.BeginSubmit(target) {
		t.Error("second BeginSubmit on the same target should be blocked")
	}
	if !st.BeginSubmit(other) {
		t.Error("a different target should not be blocked")
	}

	st.EndSubmit(target)
	if !st.BeginSubmit(target) {
		t.Error("BeginSubmit should succeed again after EndSubmit")
	}
}

// TestTakeFlashes_Clears verifies flashes are consumed on read.
func TestTakeFlashes_Clears(t *testing.T) {
	st := testState()
	st.AddFlash("success", "saved")
	st.AddFlash("error", "nope")

	got := st.TakeFlashes()
	if len(got) != 2 {
		t.Fatalf("flashes = %d, want 2", len(got))
	}
	if got[0].Kind != "success" || got[0].Message != "saved" {
		t.Errorf("first flash = %+v, want success/saved", got[0])
	}
	if rest := st.TakeFlashes(); len(rest) != 0 {
		t.Errorf("second take = %d flashes, want 0", len(rest))
	}
}

// TestOpenAuthOverlay_UnknownTabFallsBackToLogin verifies tab validation.
func TestOpenAuthOverlay_UnknownTabFallsBackToLogin(t *testing.T) {
	st := testState()

	st.OpenAuthOverlay("bogus")
	ov := st.Overlay()
	if !ov.Open || ov.Tab != TabLogin {
		t.Errorf("overlay = %+v, want open on the login tab", ov)
	}

	st.OpenAuthOverlay(TabRegister)
	if ov := st.Overlay(); ov.Tab != TabRegister {
		t.Errorf("tab = %q, want register", ov.Tab)
	}

	st.CloseAuthOverlay()
	if st.Overlay().Open {
		t.Error("overlay should be closed")
	}
}

// TestDrawer_Toggles verifies the drawer flag.
func TestDrawer_Toggles(t *testing.T) {
	st := testState()
	if st.DrawerOpen() {
		t.Error("drawer should start closed")
	}
	st.OpenDrawer()
	if !st.DrawerOpen() {
		t.Error("drawer should be open")
	}
	st.CloseDrawer()
	if st.DrawerOpen() {
		t.Error("drawer should be closed")
	}
}
