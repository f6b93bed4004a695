package orchestrators

import (
	"context"
	"log/slog"
	"time"

	divisionAPI "leaguedesk/internal/adapters/api/division"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/division"
)

// DivisionDeps holds dependencies for the division orchestrators.
// Caches are scoped per league.
type DivisionDeps struct {
	Divisions divisionAPI.Client
	Caches    *listcache.Registry[division.Division]
	Now       func() time.Time
}

// SaveDivisionInput carries the add/edit form fields. ID is empty in add mode.
type SaveDivisionInput struct {
	ID           string
	LeagueID     string
	ConferenceID string
	Name         string
}

// ExecuteCreateDivision validates and posts a new division.
// POST: On success the league's cache contains the server's row
func ExecuteCreateDivision(ctx context.Context, input SaveDivisionInput, deps DivisionDeps) (division.Division, error) {
	candidate := division.Division{
		LeagueID:     input.LeagueID,
		ConferenceID: input.ConferenceID,
		Name:         input.Name,
	}
	if err := candidate.Validate(); err != nil {
		return division.Division{}, err
	}
	created, err := deps.Divisions.Create(ctx, candidate)
	if err != nil {
		return division.Division{}, err
	}
	deps.Caches.Scope(input.LeagueID).Apply(created)
	slog.Info("division_created", "id", created.ID, "league", input.LeagueID)
	return created, nil
}

// ExecuteUpdateDivision applies the edit optimistically and reconciles.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateDivision(ctx context.Context, input SaveDivisionInput, deps DivisionDeps) (division.Division, error) {
	cache := deps.Caches.Scope(input.LeagueID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.LeagueID = input.LeagueID
	candidate.ConferenceID = input.ConferenceID
	candidate.Name = input.Name
	if err := candidate.Validate(); err != nil {
		return division.Division{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.Divisions.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return division.Division{}, err
	}
	txn.Commit(updated)
	return updated, nil
}

// ExecuteDeleteDivision removes optimistically with rollback on failure.
func ExecuteDeleteDivision(ctx context.Context, leagueID, id string, deps DivisionDeps) error {
	cache := deps.Caches.Scope(leagueID)
	txn := cache.StageRemove(id)
	if err := deps.Divisions.Delete(ctx, leagueID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(division.Division{})
	return nil
}
