package orchestrators

import (
	"context"
	"log/slog"
	"time"

	seasonAPI "leaguedesk/internal/adapters/api/season"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/season"
)

// SeasonDeps holds dependencies for the season orchestrators. Caches are
// scoped per league.
type SeasonDeps struct {
	Seasons seasonAPI.Client
	Caches  *listcache.Registry[season.Season]
	Now     func() time.Time
}

// SaveSeasonInput carries the add/edit form fields. ID is empty in add mode.
type SaveSeasonInput struct {
	ID        string
	LeagueID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Current   bool
}

// ExecuteCreateSeason validates and posts a new season.
// POST: On success the league's cache contains the server's row
func ExecuteCreateSeason(ctx context.Context, input SaveSeasonInput, deps SeasonDeps) (season.Season, error) {
	candidate := season.Season{
		LeagueID:  input.LeagueID,
		Name:      input.Name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Current:   input.Current,
	}
	if err := candidate.Validate(); err != nil {
		return season.Season{}, err
	}
	created, err := deps.Seasons.Create(ctx, candidate)
	if err != nil {
		return season.Season{}, err
	}
	deps.Caches.Scope(input.LeagueID).Apply(created)
	slog.Info("season_created", "id", created.ID, "league", input.LeagueID)
	return created, nil
}

// ExecuteUpdateSeason applies the edit optimistically and reconciles.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateSeason(ctx context.Context, input SaveSeasonInput, deps SeasonDeps) (season.Season, error) {
	cache := deps.Caches.Scope(input.LeagueID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.LeagueID = input.LeagueID
	candidate.Name = input.Name
	candidate.StartDate = input.StartDate
	candidate.EndDate = input.EndDate
	candidate.Current = input.Current
	if err := candidate.Validate(); err != nil {
		return season.Season{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.Seasons.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return season.Season{}, err
	}
	txn.Commit(updated)
	return updated, nil
}

// ExecuteDeleteSeason removes optimistically with rollback on failure.
func ExecuteDeleteSeason(ctx context.Context, leagueID, id string, deps SeasonDeps) error {
	cache := deps.Caches.Scope(leagueID)
	txn := cache.StageRemove(id)
	if err := deps.Seasons.Delete(ctx, leagueID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(season.Season{})
	return nil
}
