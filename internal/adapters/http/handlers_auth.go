package web

import (
	"net/http"
	"time"

	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/application/projections"
	"leaguedesk/internal/session"
)

// handleHome handles GET / (the dashboard). A ?auth=login or ?auth=register
// query opens the auth overlay on that tab, which is how guarded routes and
// nav links summon it.
func (app *App) handleHome(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	if tab := r.URL.Query().Get("auth"); tab != "" {
		st.OpenAuthOverlay(tab)
	}

	result, err := projections.QueryGetDashboard(apiCtx(r, st), projections.GetDashboardQuery{
		AccountID: st.Identity().UserID,
		Refresh:   r.URL.Query().Get("refresh") == "1",
	}, projections.GetDashboardDeps{Leagues: app.Leagues, LeagueCache: app.LeagueCache})
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, result)
		return
	}
	renderTemplate(w, r, "dashboard.html", map[string]any{
		"Leagues":    result.Leagues,
		"OwnedCount": result.OwnedCount,
		"Sports":     sportOptions(),
	})
}

// handleLogin handles POST /auth/login.
func (app *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	input := orchestrators.LoginInput{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	deps := orchestrators.LoginDeps{Accounts: app.Accounts, Sessions: app.Sessions}
	if err := orchestrators.ExecuteLogin(r.Context(), st, input, deps); err != nil {
		st.OpenAuthOverlay(session.TabLogin)
		failForm(w, r, st, err, backTo(r))
		return
	}

	st.AddFlash("success", "Signed in")
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleRegister handles POST /auth/register.
func (app *App) handleRegister(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	input := orchestrators.SignupInput{
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		PasswordConfirm: r.FormValue("password_confirm"),
	}
	deps := orchestrators.SignupDeps{Accounts: app.Accounts, Sessions: app.Sessions}
	if err := orchestrators.ExecuteSignup(r.Context(), st, input, deps); err != nil {
		st.OpenAuthOverlay(session.TabRegister)
		failForm(w, r, st, err, backTo(r))
		return
	}

	st.AddFlash("success", "Welcome! Your account is ready")
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleLogout handles POST /auth/logout. The session cookie stays; the
// session simply becomes a guest again.
func (app *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	deps := orchestrators.LogoutDeps{Accounts: app.Accounts, Sessions: app.Sessions}
	if err := orchestrators.ExecuteLogout(r.Context(), st, deps); err != nil {
		// Local state is already guest; tell the user the upstream part failed.
		st.AddFlash("error", "Signed out locally, but the server could not be reached")
	} else {
		st.AddFlash("success", "Signed out")
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleCloseAuthOverlay handles POST /auth/overlay/close.
func (app *App) handleCloseAuthOverlay(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	st.CloseAuthOverlay()
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleDrawerOpen handles POST /drawer/open.
func (app *App) handleDrawerOpen(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	st.OpenDrawer()
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleDrawerClose handles POST /drawer/close.
func (app *App) handleDrawerClose(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	st.CloseDrawer()
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleDialogOpen handles POST /dialogs/open. Unknown kinds are rejected;
// opening never touches any other dialog's state.
func (app *App) handleDialogOpen(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	target, ok := dialogTargetFromForm(r)
	if !ok {
		http.Error(w, "unknown dialog kind", http.StatusBadRequest)
		return
	}
	st.Dialogs.Open(target)
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleDialogClose handles POST /dialogs/close.
func (app *App) handleDialogClose(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	target, ok := dialogTargetFromForm(r)
	if !ok {
		http.Error(w, "unknown dialog kind", http.StatusBadRequest)
		return
	}
	st.Dialogs.Close(target)
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleAccount handles GET /account, behind the signed-in guard.
func (app *App) handleAccount(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}

	profile, err := app.Accounts.Account(apiCtx(r, st))
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, profile)
		return
	}
	renderTemplate(w, r, "account.html", map[string]any{
		"User": profile,
	})
}

// handleFeedback handles POST /feedback (the "report a problem" form).
func (app *App) handleFeedback(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	input := orchestrators.FeedbackInput{
		Summary:     r.FormValue("summary"),
		Description: r.FormValue("description"),
		Route:       r.FormValue("route"),
		UserAgent:   r.UserAgent(),
		Email:       r.FormValue("email"),
	}
	deps := orchestrators.FeedbackDeps{
		Sender:     app.Email,
		OperatorTo: app.FeedbackTo,
		Now:        app.Now,
		GenerateID: app.GenerateID,
	}
	if _, err := orchestrators.ExecuteSubmitFeedback(r.Context(), input, deps); err != nil {
		failForm(w, r, st, err, backTo(r))
		return
	}

	st.AddFlash("success", "Thanks, your report is on its way")
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handlePerfDashboard handles GET /perf.
func (app *App) handlePerfDashboard(w http.ResponseWriter, r *http.Request) {
	if app.Collector == nil {
		renderNotFound(w, r)
		return
	}
	snap := app.Collector.Snapshot(app.Now().Add(-time.Hour), 15)
	if !isHTMLRequest(r) {
		writeJSON(w, snap)
		return
	}
	renderTemplate(w, r, "perf.html", map[string]any{
		"Snapshot": snap,
	})
}

// dialogTargetFromForm builds and validates the typed dialog target.
func dialogTargetFromForm(r *http.Request) (session.DialogTarget, bool) {
	kind := session.DialogKind(r.FormValue("kind"))
	if !session.ValidDialogKinds[kind] {
		return session.DialogTarget{}, false
	}
	return session.DialogTarget{Kind: kind, EntityID: r.FormValue("entity_id")}, true
}

// backTo picks the redirect target for view-state and form endpoints: the
// submitting page when known, the dashboard otherwise.
func backTo(r *http.Request) string {
	if back := r.FormValue("back"); back != "" && back[0] == '/' {
		return back
	}
	if ref := r.Referer(); ref != "" {
		return ref
	}
	return "/"
}

// beginSubmit gates one in-flight submission per dialog target. A second
// submit while the first is still talking to the API bounces with a notice
// instead of firing a duplicate mutation.
func beginSubmit(w http.ResponseWriter, r *http.Request, st *session.State, target session.DialogTarget) bool {
	if !st.BeginSubmit(target) {
		st.AddFlash("error", "Still saving, give it a second")
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return false
	}
	return true
}
