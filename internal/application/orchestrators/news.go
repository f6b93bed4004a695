package orchestrators

import (
	"context"
	"log/slog"
	"time"

	newsAPI "leaguedesk/internal/adapters/api/news"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/news"
)

// NewsDeps holds dependencies for the news orchestrators. Caches are scoped
// per league.
type NewsDeps struct {
	News   newsAPI.Client
	Caches *listcache.Registry[news.Post]
	Now    func() time.Time
}

// SaveNewsInput carries the add/edit form fields. ID is empty in add mode.
type SaveNewsInput struct {
	ID       string
	LeagueID string
	Title    string
	Body     string
	Status   string
}

// ExecuteCreateNewsPost validates and posts a new news post. A post created
// with the published status gets PublishedAt from the server.
// POST: On success the league's cache contains the server's row
func ExecuteCreateNewsPost(ctx context.Context, input SaveNewsInput, deps NewsDeps) (news.Post, error) {
	candidate := news.Post{
		LeagueID: input.LeagueID,
		Title:    input.Title,
		Body:     input.Body,
		Status:   input.Status,
	}
	if candidate.Status == "" {
		candidate.Status = news.StatusDraft
	}
	if err := candidate.Validate(); err != nil {
		return news.Post{}, err
	}
	created, err := deps.News.Create(ctx, candidate)
	if err != nil {
		return news.Post{}, err
	}
	deps.Caches.Scope(input.LeagueID).Apply(created)
	slog.Info("news_created", "id", created.ID, "league", input.LeagueID, "status", created.Status)
	return created, nil
}

// ExecuteUpdateNewsPost applies the edit optimistically and reconciles.
// Author fields are preserved from the cached pre-image; the server decides
// PublishedAt when a draft transitions to published.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateNewsPost(ctx context.Context, input SaveNewsInput, deps NewsDeps) (news.Post, error) {
	cache := deps.Caches.Scope(input.LeagueID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.LeagueID = input.LeagueID
	candidate.Title = input.Title
	candidate.Body = input.Body
	if input.Status != "" {
		candidate.Status = input.Status
	}
	if err := candidate.Validate(); err != nil {
		return news.Post{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.News.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return news.Post{}, err
	}
	txn.Commit(updated)
	return updated, nil
}

// ExecuteDeleteNewsPost removes optimistically with rollback on failure.
func ExecuteDeleteNewsPost(ctx context.Context, leagueID, id string, deps NewsDeps) error {
	cache := deps.Caches.Scope(leagueID)
	txn := cache.StageRemove(id)
	if err := deps.News.Delete(ctx, leagueID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(news.Post{})
	return nil
}
