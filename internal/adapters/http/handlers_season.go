package web

import (
	"net/http"
	"strconv"
	"time"

	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/application/projections"
	"leaguedesk/internal/session"
)

// Season and schedule handlers. Seasons live on their own page under the
// league; the schedule page hangs off the season and needs the league id as a
// query parameter, like the roster page.

// handleLeagueSeasons handles GET /leagues/{id}/seasons.
func (app *App) handleLeagueSeasons(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	leagueID := r.PathValue("id")

	result, err := projections.QueryGetLeagueSeasons(apiCtx(r, st), projections.GetLeagueSeasonsQuery{
		LeagueID: leagueID,
		Refresh:  r.URL.Query().Get("refresh") == "1",
	}, projections.GetLeagueSeasonsDeps{
		Seasons:      app.Seasons,
		SeasonCaches: app.SeasonCaches,
	})
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, result)
		return
	}
	renderTemplate(w, r, "seasons.html", map[string]any{
		"LeagueID": leagueID,
		"Seasons":  result.Seasons,
		"Current":  result.Current,
	})
}

func (app *App) handleCreateSeason(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	back := "/leagues/" + leagueID + "/seasons"

	target := session.DialogTarget{Kind: session.DialogAddSeason, EntityID: leagueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := seasonInputFromForm(r)
	input.LeagueID = leagueID
	if _, err := orchestrators.ExecuteCreateSeason(apiCtx(r, st), input, app.seasonDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Season added")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleUpdateSeason(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	seasonID := r.PathValue("seasonID")
	back := "/leagues/" + leagueID + "/seasons"

	target := session.DialogTarget{Kind: session.DialogEditSeason, EntityID: seasonID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := seasonInputFromForm(r)
	input.ID = seasonID
	input.LeagueID = leagueID
	if _, err := orchestrators.ExecuteUpdateSeason(apiCtx(r, st), input, app.seasonDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Season saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeleteSeason(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	seasonID := r.PathValue("seasonID")
	back := "/leagues/" + leagueID + "/seasons"

	if err := orchestrators.ExecuteDeleteSeason(apiCtx(r, st), leagueID, seasonID, app.seasonDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Season removed")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// handleSeasonGames handles GET /seasons/{id}/games?league={leagueID}.
func (app *App) handleSeasonGames(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	seasonID := r.PathValue("id")
	leagueID := r.URL.Query().Get("league")
	if leagueID == "" {
		http.Error(w, "league query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := projections.QueryGetSeasonGames(apiCtx(r, st), projections.GetSeasonGamesQuery{
		LeagueID: leagueID,
		SeasonID: seasonID,
		Refresh:  r.URL.Query().Get("refresh") == "1",
	}, projections.GetSeasonGamesDeps{
		Seasons:     app.Seasons,
		Games:       app.Games,
		Teams:       app.Teams,
		Venues:      app.Venues,
		GameCaches:  app.GameCaches,
		TeamCaches:  app.TeamCaches,
		VenueCaches: app.VenueCaches,
	})
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, result)
		return
	}
	renderTemplate(w, r, "season_games.html", map[string]any{
		"Season":   result.Season,
		"Rows":     result.Rows,
		"Teams":    result.Teams,
		"Venues":   result.Venues,
		"LeagueID": leagueID,
	})
}

func (app *App) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	seasonID := r.PathValue("id")
	back := schedulePath(seasonID, r.FormValue("league_id"))

	target := session.DialogTarget{Kind: session.DialogAddGame, EntityID: seasonID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := gameInputFromForm(r)
	input.SeasonID = seasonID
	if _, err := orchestrators.ExecuteCreateGame(apiCtx(r, st), input, app.gameDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Game scheduled")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	seasonID := r.PathValue("id")
	gameID := r.PathValue("gameID")
	back := schedulePath(seasonID, r.FormValue("league_id"))

	target := session.DialogTarget{Kind: session.DialogEditGame, EntityID: gameID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := gameInputFromForm(r)
	input.ID = gameID
	input.SeasonID = seasonID
	if _, err := orchestrators.ExecuteUpdateGame(apiCtx(r, st), input, app.gameDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Game saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	seasonID := r.PathValue("id")
	gameID := r.PathValue("gameID")
	back := schedulePath(seasonID, r.FormValue("league_id"))

	if err := orchestrators.ExecuteDeleteGame(apiCtx(r, st), seasonID, gameID, app.gameDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Game removed")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// handleSaveGameResult handles POST /games/{id}/result. The season id rides
// in the form because the route doesn't carry it.
func (app *App) handleSaveGameResult(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	gameID := r.PathValue("id")
	seasonID := r.FormValue("season_id")
	back := schedulePath(seasonID, r.FormValue("league_id"))

	target := session.DialogTarget{Kind: session.DialogEditGameResult, EntityID: gameID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	home, _ := strconv.Atoi(r.FormValue("home_score"))
	away, _ := strconv.Atoi(r.FormValue("away_score"))
	input := orchestrators.SaveResultInput{
		SeasonID:  seasonID,
		GameID:    gameID,
		HomeScore: home,
		AwayScore: away,
	}
	if _, err := orchestrators.ExecuteSaveGameResult(apiCtx(r, st), input, app.gameDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Final score recorded")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func seasonInputFromForm(r *http.Request) orchestrators.SaveSeasonInput {
	start, _ := time.Parse("2006-01-02", r.FormValue("start_date"))
	end, _ := time.Parse("2006-01-02", r.FormValue("end_date"))
	return orchestrators.SaveSeasonInput{
		Name:      r.FormValue("name"),
		StartDate: start,
		EndDate:   end,
		Current:   r.FormValue("current") == "on",
	}
}

func gameInputFromForm(r *http.Request) orchestrators.SaveGameInput {
	// datetime-local inputs post without a zone; treat them as local time.
	scheduled, _ := time.ParseInLocation("2006-01-02T15:04", r.FormValue("scheduled_at"), time.Local)
	return orchestrators.SaveGameInput{
		HomeTeamID:  r.FormValue("home_team_id"),
		AwayTeamID:  r.FormValue("away_team_id"),
		VenueID:     r.FormValue("venue_id"),
		ScheduledAt: scheduled,
		Status:      r.FormValue("status"),
	}
}

func schedulePath(seasonID, leagueID string) string {
	p := "/seasons/" + seasonID + "/games"
	if leagueID != "" {
		p += "?league=" + leagueID
	}
	return p
}
