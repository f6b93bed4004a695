package web

import (
	"net/http"
	"strconv"

	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/application/projections"
	"leaguedesk/internal/domain/player"
	"leaguedesk/internal/session"
)

// Team mutations live on the league detail page; the roster has its own page.

func (app *App) handleCreateTeam(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	back := "/leagues/" + leagueID

	target := session.DialogTarget{Kind: session.DialogAddTeam, EntityID: leagueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveTeamInput{
		LeagueID:   leagueID,
		DivisionID: r.FormValue("division_id"),
		Name:       r.FormValue("name"),
		City:       r.FormValue("city"),
		Abbrev:     r.FormValue("abbrev"),
		LogoURL:    r.FormValue("logo_url"),
	}
	if _, err := orchestrators.ExecuteCreateTeam(apiCtx(r, st), input, app.teamDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Team added")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	teamID := r.PathValue("teamID")
	back := "/leagues/" + leagueID

	target := session.DialogTarget{Kind: session.DialogEditTeam, EntityID: teamID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveTeamInput{
		ID:         teamID,
		LeagueID:   leagueID,
		DivisionID: r.FormValue("division_id"),
		Name:       r.FormValue("name"),
		City:       r.FormValue("city"),
		Abbrev:     r.FormValue("abbrev"),
		LogoURL:    r.FormValue("logo_url"),
	}
	if _, err := orchestrators.ExecuteUpdateTeam(apiCtx(r, st), input, app.teamDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Team saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	teamID := r.PathValue("teamID")
	back := "/leagues/" + leagueID

	if err := orchestrators.ExecuteDeleteTeam(apiCtx(r, st), leagueID, teamID, app.teamDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Team removed")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// handleTeamRoster handles GET /teams/{id}/players?league={leagueID}.
func (app *App) handleTeamRoster(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	teamID := r.PathValue("id")
	leagueID := r.URL.Query().Get("league")
	if leagueID == "" {
		http.Error(w, "league query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetTeamRoster(apiCtx(r, st), projections.GetTeamRosterQuery{
		LeagueID: leagueID,
		TeamID:   teamID,
		Refresh:  r.URL.Query().Get("refresh") == "1",
	}, projections.GetTeamRosterDeps{
		Teams:        app.Teams,
		Players:      app.Players,
		PlayerCaches: app.PlayerCaches,
	})
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, result)
		return
	}
	renderTemplate(w, r, "team_roster.html", map[string]any{
		"Team":      result.Team,
		"Players":   result.Players,
		"LeagueID":  leagueID,
		"Positions": player.ValidPositions,
	})
}

func (app *App) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	teamID := r.PathValue("id")
	back := rosterPath(teamID, r.FormValue("league_id"))

	target := session.DialogTarget{Kind: session.DialogAddPlayer, EntityID: teamID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := playerInputFromForm(r)
	input.TeamID = teamID
	if _, err := orchestrators.ExecuteCreatePlayer(apiCtx(r, st), input, app.playerDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Player added")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	teamID := r.PathValue("id")
	playerID := r.PathValue("playerID")
	back := rosterPath(teamID, r.FormValue("league_id"))

	target := session.DialogTarget{Kind: session.DialogEditPlayer, EntityID: playerID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := playerInputFromForm(r)
	input.ID = playerID
	input.TeamID = teamID
	if _, err := orchestrators.ExecuteUpdatePlayer(apiCtx(r, st), input, app.playerDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Player saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	teamID := r.PathValue("id")
	playerID := r.PathValue("playerID")
	back := rosterPath(teamID, r.FormValue("league_id"))

	if err := orchestrators.ExecuteDeletePlayer(apiCtx(r, st), teamID, playerID, app.playerDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Player removed")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func playerInputFromForm(r *http.Request) orchestrators.SavePlayerInput {
	number, _ := strconv.Atoi(r.FormValue("number"))
	heightCm, _ := strconv.Atoi(r.FormValue("height_cm"))
	weightKg, _ := strconv.Atoi(r.FormValue("weight_kg"))
	return orchestrators.SavePlayerInput{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Number:    number,
		Position:  r.FormValue("position"),
		HeightCm:  heightCm,
		WeightKg:  weightKg,
	}
}

func rosterPath(teamID, leagueID string) string {
	p := "/teams/" + teamID + "/players"
	if leagueID != "" {
		p += "?league=" + leagueID
	}
	return p
}
