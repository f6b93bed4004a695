package web

import (
	"net/http"
	"strconv"

	"leaguedesk/internal/application/listutil"
	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/application/projections"
	"leaguedesk/internal/session"
)

// handleLeagueVenues handles GET /leagues/{id}/venues with search and paging.
func (app *App) handleLeagueVenues(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	leagueID := r.PathValue("id")
	params := listutil.ParseListParams(r.URL.Query(), nil)

	result, err := projections.QueryGetLeagueVenues(apiCtx(r, st), projections.GetLeagueVenuesQuery{
		LeagueID: leagueID,
		Refresh:  r.URL.Query().Get("refresh") == "1",
		Params:   params,
	}, projections.GetLeagueVenuesDeps{
		Venues:      app.Venues,
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
	renderTemplate(w, r, "venues.html", map[string]any{
		"LeagueID":       leagueID,
		"Venues":         result.Venues,
		"PageInfo":       result.PageInfo,
		"Search":         params.Search,
		"PerPageOptions": listutil.PerPageOptions,
	})
}

func (app *App) handleCreateVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	back := "/leagues/" + leagueID + "/venues"

	target := session.DialogTarget{Kind: session.DialogAddVenue, EntityID: leagueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := venueInputFromForm(r)
	input.LeagueID = leagueID
	if _, err := orchestrators.ExecuteCreateVenue(apiCtx(r, st), input, app.venueDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Venue added")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleUpdateVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	venueID := r.PathValue("venueID")
	back := "/leagues/" + leagueID + "/venues"

	target := session.DialogTarget{Kind: session.DialogEditVenue, EntityID: venueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := venueInputFromForm(r)
	input.ID = venueID
	input.LeagueID = leagueID
	if _, err := orchestrators.ExecuteUpdateVenue(apiCtx(r, st), input, app.venueDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Venue saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeleteVenue(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	venueID := r.PathValue("venueID")
	back := "/leagues/" + leagueID + "/venues"

	if err := orchestrators.ExecuteDeleteVenue(apiCtx(r, st), leagueID, venueID, app.venueDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Venue removed")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func venueInputFromForm(r *http.Request) orchestrators.SaveVenueInput {
	capacity, _ := strconv.Atoi(r.FormValue("capacity"))
	return orchestrators.SaveVenueInput{
		Name:     r.FormValue("name"),
		Address:  r.FormValue("address"),
		City:     r.FormValue("city"),
		Capacity: capacity,
	}
}
