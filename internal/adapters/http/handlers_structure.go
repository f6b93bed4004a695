package web

import (
	"net/http"

	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/session"
)

// Conference and division handlers. Both live on the league detail page, so
// every mutation redirects back there.

func (app *App) handleCreateConference(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	back := "/leagues/" + leagueID

	target := session.DialogTarget{Kind: session.DialogAddConference, EntityID: leagueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveConferenceInput{
		LeagueID: leagueID,
		Name:     r.FormValue("name"),
	}
	if _, err := orchestrators.ExecuteCreateConference(apiCtx(r, st), input, app.conferenceDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Conference added")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleUpdateConference(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	conferenceID := r.PathValue("conferenceID")
	back := "/leagues/" + leagueID

	target := session.DialogTarget{Kind: session.DialogEditConference, EntityID: conferenceID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveConferenceInput{
		ID:       conferenceID,
		LeagueID: leagueID,
		Name:     r.FormValue("name"),
	}
	if _, err := orchestrators.ExecuteUpdateConference(apiCtx(r, st), input, app.conferenceDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Conference saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeleteConference(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	conferenceID := r.PathValue("conferenceID")
	back := "/leagues/" + leagueID

	if err := orchestrators.ExecuteDeleteConference(apiCtx(r, st), leagueID, conferenceID, app.conferenceDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Conference removed")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleCreateDivision(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	back := "/leagues/" + leagueID

	target := session.DialogTarget{Kind: session.DialogAddDivision, EntityID: leagueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveDivisionInput{
		LeagueID:     leagueID,
		ConferenceID: r.FormValue("conference_id"),
		Name:         r.FormValue("name"),
	}
	if _, err := orchestrators.ExecuteCreateDivision(apiCtx(r, st), input, app.divisionDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Division added")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleUpdateDivision(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	divisionID := r.PathValue("divisionID")
	back := "/leagues/" + leagueID

	target := session.DialogTarget{Kind: session.DialogEditDivision, EntityID: divisionID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveDivisionInput{
		ID:           divisionID,
		LeagueID:     leagueID,
		ConferenceID: r.FormValue("conference_id"),
		Name:         r.FormValue("name"),
	}
	if _, err := orchestrators.ExecuteUpdateDivision(apiCtx(r, st), input, app.divisionDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Division saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeleteDivision(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	divisionID := r.PathValue("divisionID")
	back := "/leagues/" + leagueID

	if err := orchestrators.ExecuteDeleteDivision(apiCtx(r, st), leagueID, divisionID, app.divisionDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Division removed")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
