package web

import (
	"net/http"

	"leaguedesk/internal/application/orchestrators"
	"leaguedesk/internal/application/projections"
	"leaguedesk/internal/domain/news"
	"leaguedesk/internal/session"
)

// handleNewsFeed handles GET /leagues/{id}/news: published posts plus the
// viewer's own drafts.
func (app *App) handleNewsFeed(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	leagueID := r.PathValue("id")

	result, err := projections.QueryGetNewsFeed(apiCtx(r, st), projections.GetNewsFeedQuery{
		LeagueID:  leagueID,
		AccountID: st.Identity().UserID,
		Refresh:   r.URL.Query().Get("refresh") == "1",
	}, projections.GetNewsFeedDeps{
		News:       app.News,
		NewsCaches: app.NewsCaches,
	})
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, result)
		return
	}
	renderTemplate(w, r, "news_feed.html", map[string]any{
		"LeagueID":  leagueID,
		"Published": result.Published,
		"Drafts":    result.Drafts,
		"Statuses":  news.ValidStatuses,
	})
}

// handleNewsPost handles GET /leagues/{id}/news/{postID}: one post with its
// body rendered as markdown.
func (app *App) handleNewsPost(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok {
		return
	}
	leagueID := r.PathValue("id")
	postID := r.PathValue("postID")

	post, err := app.News.GetByID(apiCtx(r, st), leagueID, postID)
	if err != nil {
		failPage(w, r, err)
		return
	}

	if !isHTMLRequest(r) {
		writeJSON(w, post)
		return
	}
	renderTemplate(w, r, "news_post.html", map[string]any{
		"LeagueID": leagueID,
		"Post":     post,
		"Owned":    post.OwnedBy(st.Identity().UserID),
		"Statuses": news.ValidStatuses,
	})
}

func (app *App) handleCreateNewsPost(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	back := "/leagues/" + leagueID + "/news"

	target := session.DialogTarget{Kind: session.DialogAddNews, EntityID: leagueID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveNewsInput{
		LeagueID: leagueID,
		Title:    r.FormValue("title"),
		Body:     r.FormValue("body"),
		Status:   r.FormValue("status"),
	}
	created, err := orchestrators.ExecuteCreateNewsPost(apiCtx(r, st), input, app.newsDeps())
	if err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Post created")
	http.Redirect(w, r, back+"/"+created.ID, http.StatusSeeOther)
}

func (app *App) handleUpdateNewsPost(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	postID := r.PathValue("postID")
	back := "/leagues/" + leagueID + "/news/" + postID

	target := session.DialogTarget{Kind: session.DialogEditNews, EntityID: postID}
	if !beginSubmit(w, r, st, target) {
		return
	}
	defer st.EndSubmit(target)

	input := orchestrators.SaveNewsInput{
		ID:       postID,
		LeagueID: leagueID,
		Title:    r.FormValue("title"),
		Body:     r.FormValue("body"),
		Status:   r.FormValue("status"),
	}
	if _, err := orchestrators.ExecuteUpdateNewsPost(apiCtx(r, st), input, app.newsDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.Dialogs.Close(target)
	st.AddFlash("success", "Post saved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func (app *App) handleDeleteNewsPost(w http.ResponseWriter, r *http.Request) {
	st, ok := sessionOrError(w, r)
	if !ok || !parseForm(w, r) {
		return
	}
	leagueID := r.PathValue("id")
	postID := r.PathValue("postID")
	back := "/leagues/" + leagueID + "/news"

	if err := orchestrators.ExecuteDeleteNewsPost(apiCtx(r, st), leagueID, postID, app.newsDeps()); err != nil {
		failForm(w, r, st, err, back)
		return
	}

	st.AddFlash("success", "Post deleted")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
