package orchestrators

import (
	"context"
	"log/slog"
	"time"

	conferenceAPI "leaguedesk/internal/adapters/api/conference"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/conference"
)

// ConferenceDeps holds dependencies for the conference orchestrators.
// Caches are scoped per league.
type ConferenceDeps struct {
	Conferences conferenceAPI.Client
	Caches      *listcache.Registry[conference.Conference]
	Now         func() time.Time
}

// SaveConferenceInput carries the add/edit form fields. ID is empty in add
// mode.
type SaveConferenceInput struct {
	ID       string
	LeagueID string
	Name     string
}

// ExecuteCreateConference validates and posts a new conference.
// POST: On success the league's cache contains the server's row
func ExecuteCreateConference(ctx context.Context, input SaveConferenceInput, deps ConferenceDeps) (conference.Conference, error) {
	candidate := conference.Conference{LeagueID: input.LeagueID, Name: input.Name}
	if err := candidate.Validate(); err != nil {
		return conference.Conference{}, err
	}
	created, err := deps.Conferences.Create(ctx, candidate)
	if err != nil {
		return conference.Conference{}, err
	}
	deps.Caches.Scope(input.LeagueID).Apply(created)
	slog.Info("conference_created", "id", created.ID, "league", input.LeagueID)
	return created, nil
}

// ExecuteUpdateConference applies the edit optimistically and reconciles.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateConference(ctx context.Context, input SaveConferenceInput, deps ConferenceDeps) (conference.Conference, error) {
	cache := deps.Caches.Scope(input.LeagueID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.LeagueID = input.LeagueID
	candidate.Name = input.Name
	if err := candidate.Validate(); err != nil {
		return conference.Conference{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.Conferences.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return conference.Conference{}, err
	}
	txn.Commit(updated)
	return updated, nil
}

// ExecuteDeleteConference removes optimistically with rollback on failure.
func ExecuteDeleteConference(ctx context.Context, leagueID, id string, deps ConferenceDeps) error {
	cache := deps.Caches.Scope(leagueID)
	txn := cache.StageRemove(id)
	if err := deps.Conferences.Delete(ctx, leagueID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(conference.Conference{})
	return nil
}
