package orchestrators

import (
	"context"
	"log/slog"
	"time"

	leagueAPI "leaguedesk/internal/adapters/api/league"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/league"
)

// LeagueDeps holds dependencies for the league orchestrators.
type LeagueDeps struct {
	Leagues leagueAPI.Client
	Cache   *listcache.Collection[league.League]
	Now     func() time.Time
}

// CreateLeagueInput carries the league form fields.
type CreateLeagueInput struct {
	Name        string
	Abbrev      string
	Sport       string
	Description string
}

// ExecuteCreateLeague validates the form, posts the new league, and appends
// the server's row to the local list.
// PRE: caller is authenticated (ctx carries the bearer token)
// POST: On success the cache contains the server's row; on failure it is untouched
func ExecuteCreateLeague(ctx context.Context, input CreateLeagueInput, deps LeagueDeps) (league.League, error) {
	candidate := league.League{
		Name:        input.Name,
		Abbrev:      input.Abbrev,
		Sport:       input.Sport,
		Description: input.Description,
	}
	if err := candidate.Validate(); err != nil {
		return league.League{}, err
	}

	created, err := deps.Leagues.Create(ctx, candidate)
	if err != nil {
		return league.League{}, err
	}
	deps.Cache.Apply(created)
	slog.Info("league_created", "id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateLeagueInput carries the edit form fields.
type UpdateLeagueInput struct {
	ID          string
	Name        string
	Abbrev      string
	Sport       string
	Description string
}

// ExecuteUpdateLeague validates the form, applies the change optimistically,
// and reconciles with the server's row, rolling back if the server rejects.
// PRE: input.ID is non-empty
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateLeague(ctx context.Context, input UpdateLeagueInput, deps LeagueDeps) (league.League, error) {
	candidate, _ := deps.Cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.Name = input.Name
	candidate.Abbrev = input.Abbrev
	candidate.Sport = input.Sport
	candidate.Description = input.Description
	if err := candidate.Validate(); err != nil {
		return league.League{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := deps.Cache.StageUpdate(candidate)
	updated, err := deps.Leagues.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return league.League{}, err
	}
	txn.Commit(updated)
	slog.Info("league_updated", "id", updated.ID)
	return updated, nil
}

// ExecuteDeleteLeague removes the league optimistically and rolls the local
// list back when the server rejects the delete.
// PRE: id is non-empty
// POST: Cache excludes the row on success and is unchanged on failure
func ExecuteDeleteLeague(ctx context.Context, id string, deps LeagueDeps) error {
	txn := deps.Cache.StageRemove(id)
	if err := deps.Leagues.Delete(ctx, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(league.League{})
	slog.Info("league_deleted", "id", id)
	return nil
}
