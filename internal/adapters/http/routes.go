package web

import (
	"net/http"

	"leaguedesk/internal/adapters/http/middleware"
)

// registerRoutes wires every page and form endpoint. Mutations are all POST
// so plain HTML forms work without script; deletes use a /delete suffix.
func (app *App) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", app.handleHome)

	// Auth overlay and session
	mux.HandleFunc("POST /auth/login", app.handleLogin)
	mux.HandleFunc("POST /auth/register", app.handleRegister)
	mux.HandleFunc("POST /auth/logout", app.handleLogout)
	mux.HandleFunc("POST /auth/overlay/close", app.handleCloseAuthOverlay)

	// Per-session view state
	mux.HandleFunc("POST /drawer/open", app.handleDrawerOpen)
	mux.HandleFunc("POST /drawer/close", app.handleDrawerClose)
	mux.HandleFunc("POST /dialogs/open", app.handleDialogOpen)
	mux.HandleFunc("POST /dialogs/close", app.handleDialogClose)

	// Leagues
	mux.HandleFunc("POST /leagues", app.handleCreateLeague)
	mux.HandleFunc("GET /leagues/{id}", app.handleLeagueDetail)
	mux.HandleFunc("POST /leagues/{id}", app.handleUpdateLeague)
	mux.HandleFunc("POST /leagues/{id}/delete", app.handleDeleteLeague)

	// League structure
	mux.HandleFunc("POST /leagues/{id}/conferences", app.handleCreateConference)
	mux.HandleFunc("POST /leagues/{id}/conferences/{conferenceID}", app.handleUpdateConference)
	mux.HandleFunc("POST /leagues/{id}/conferences/{conferenceID}/delete", app.handleDeleteConference)
	mux.HandleFunc("POST /leagues/{id}/divisions", app.handleCreateDivision)
	mux.HandleFunc("POST /leagues/{id}/divisions/{divisionID}", app.handleUpdateDivision)
	mux.HandleFunc("POST /leagues/{id}/divisions/{divisionID}/delete", app.handleDeleteDivision)

	// Teams and rosters
	mux.HandleFunc("POST /leagues/{id}/teams", app.handleCreateTeam)
	mux.HandleFunc("POST /leagues/{id}/teams/{teamID}", app.handleUpdateTeam)
	mux.HandleFunc("POST /leagues/{id}/teams/{teamID}/delete", app.handleDeleteTeam)
	mux.HandleFunc("GET /teams/{id}/players", app.handleTeamRoster)
	mux.HandleFunc("POST /teams/{id}/players", app.handleCreatePlayer)
	mux.HandleFunc("POST /teams/{id}/players/{playerID}", app.handleUpdatePlayer)
	mux.HandleFunc("POST /teams/{id}/players/{playerID}/delete", app.handleDeletePlayer)

	// Seasons and schedules
	mux.HandleFunc("GET /leagues/{id}/seasons", app.handleLeagueSeasons)
	mux.HandleFunc("POST /leagues/{id}/seasons", app.handleCreateSeason)
	mux.HandleFunc("POST /leagues/{id}/seasons/{seasonID}", app.handleUpdateSeason)
	mux.HandleFunc("POST /leagues/{id}/seasons/{seasonID}/delete", app.handleDeleteSeason)
	mux.HandleFunc("GET /seasons/{id}/games", app.handleSeasonGames)
	mux.HandleFunc("POST /seasons/{id}/games", app.handleCreateGame)
	mux.HandleFunc("POST /seasons/{id}/games/{gameID}", app.handleUpdateGame)
	mux.HandleFunc("POST /seasons/{id}/games/{gameID}/delete", app.handleDeleteGame)
	mux.HandleFunc("POST /games/{id}/result", app.handleSaveGameResult)

	// Venues
	mux.HandleFunc("GET /leagues/{id}/venues", app.handleLeagueVenues)
	mux.HandleFunc("POST /leagues/{id}/venues", app.handleCreateVenue)
	mux.HandleFunc("POST /leagues/{id}/venues/{venueID}", app.handleUpdateVenue)
	mux.HandleFunc("POST /leagues/{id}/venues/{venueID}/delete", app.handleDeleteVenue)

	// News
	mux.HandleFunc("GET /leagues/{id}/news", app.handleNewsFeed)
	mux.HandleFunc("GET /leagues/{id}/news/{postID}", app.handleNewsPost)
	mux.HandleFunc("POST /leagues/{id}/news", app.handleCreateNewsPost)
	mux.HandleFunc("POST /leagues/{id}/news/{postID}", app.handleUpdateNewsPost)
	mux.HandleFunc("POST /leagues/{id}/news/{postID}/delete", app.handleDeleteNewsPost)

	// Account (signed-in only)
	mux.Handle("GET /account", middleware.RequireAccount(http.HandlerFunc(app.handleAccount)))

	// Problem reports and ops
	mux.HandleFunc("POST /feedback", app.handleFeedback)
	mux.HandleFunc("GET /perf", app.handlePerfDashboard)

	// Everything else is a 404 page
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		renderNotFound(w, r)
	})
}
