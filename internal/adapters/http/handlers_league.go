package web

import (
	"net/http"

	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/application/projections"
	"leaguedesk/internal/domain/league"
	"leaguedesk/internal/session"
)

func sportOptions() []string { return league.ValidSports }

// handleLeagueDetail handles GET /leagues/{id}: the league with its
// conferences, divisions, and teams.
func (app *App) handleLeagueDetail(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	leagueID := r.PathValue("id")

	result, err := projections.QueryGetLeagueDetail(apiCtx(r, st), projections.GetLeagueDetailQuery{
		LeagueID:  leagueID,
		AccountID: st.Identity().UserID,
		Refresh:   r.URL.Query().Get("refresh") == "1",
	}, projections.GetLeagueDetailDeps{
		Leagues:          app.Leagues,
		Conferences:      app.Conferences,
		Divisions:        app.Divisions,
		Teams:            app.Teams,
		ConferenceCaches: app.ConferenceCaches,
		DivisionCaches:   app.DivisionCaches,
		TeamCaches:       app.TeamCaches,
	})
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, result)
		return
	}
	renderTemplate(w, r, "league_detail.html", map[string]any{
		"League":      result.League,
		"Owned":       result.Owned,
		"Conferences": result.Conferences,
		"Groups":      result.Groups,
		"Unassigned":  result.Unassigned,
		"Teams":       result.Teams,
		"Sports":      sportOptions(),
	})
}

// handleCreateLeague handles POST /leagues.
func (app *App) handleCreateLeague(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	input := orchestrators.CreateLeagueInput{
		Name:        r.FormValue("name"),
		Abbrev:      r.FormValue("abbrev"),
		Sport:       r.FormValue("sport"),
		Description: r.FormValue("description"),
	}
	created, err := orchestrators.ExecuteCreateLeague(apiCtx(r, st), input, app.leagueDeps())
	if err != nil {
		failForm(w, r, st, err, backTo(r))
		return
	}

	st.AddFlash("success", "League created")
	http.Redirect(w, r, "/leagues/"+created.ID, http.StatusSeeOther)
}

// handleUpdateLeague handles POST /leagues/{id}.
func (app *App) handleUpdateLeague(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")

	target := session.DialogTarget{Kind: session.DialogEditLeague, EntityID: leagueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.UpdateLeagueInput{
		ID:          leagueID,
		Name:        r.FormValue("name"),
		Abbrev:      r.FormValue("abbrev"),
		Sport:       r.FormValue("sport"),
		Description: r.FormValue("description"),
	}
	if _, err := orchestrators.ExecuteUpdateLeague(apiCtx(r, st), input, app.leagueDeps()); err != nil {
		failForm(w, r, st, err, backTo(r))
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "League saved")
	http.Redirect(w, r, "/leagues/"+leagueID, http.StatusSeeOther)
}

// handleDeleteLeague handles POST /leagues/{id}/delete.
func (app *App) handleDeleteLeague(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")

	if err := orchestrators.ExecuteDeleteLeague(apiCtx(r, st), leagueID, app.leagueDeps()); err != nil {
		failForm(w, r, st, err, "/")
		return
	}

	st.AddFlash("success", "League deleted")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
