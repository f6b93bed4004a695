package orchestrators

import (
	"context"
	"log/slog"
	"time"

	teamAPI "leaguedesk/internal/adapters/api/team"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/team"
)

// TeamDeps holds dependencies for the team orchestrators. Caches are scoped
// per league.
type TeamDeps struct {
	Teams  teamAPI.Client
	Caches *listcache.Registry[team.Team]
	Now    func() time.Time
}

// SaveTeamInput carries the add/edit form fields. ID is empty in add mode.
type SaveTeamInput struct {
	ID         string
	LeagueID   string
	DivisionID string
	Name       string
	City       string
	Abbrev     string
	LogoURL    string
}

// ExecuteCreateTeam validates and posts a new team.
// POST: On success the league's cache contains the server's row
func ExecuteCreateTeam(ctx context.Context, input SaveTeamInput, deps TeamDeps) (team.Team, error) {
	candidate := team.Team{
		LeagueID:   input.LeagueID,
		DivisionID: input.DivisionID,
		Name:       input.Name,
		City:       input.City,
		Abbrev:     input.Abbrev,
		LogoURL:    input.LogoURL,
	}
	if err := candidate.Validate(); err != nil {
		return team.Team{}, err
	}
	created, err := deps.Teams.Create(ctx, candidate)
	if err != nil {
		return team.Team{}, err
	}
	deps.Caches.Scope(input.LeagueID).Apply(created)
	slog.Info("team_created", "id", created.ID, "league", input.LeagueID)
	return created, nil
}

// ExecuteUpdateTeam applies the edit optimistically and reconciles with the
// server's row, rolling back if the server rejects.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateTeam(ctx context.Context, input SaveTeamInput, deps TeamDeps) (team.Team, error) {
	cache := deps.Caches.Scope(input.LeagueID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.LeagueID = input.LeagueID
	candidate.DivisionID = input.DivisionID
	candidate.Name = input.Name
	candidate.City = input.City
	candidate.Abbrev = input.Abbrev
	candidate.LogoURL = input.LogoURL
	if err := candidate.Validate(); err != nil {
		return team.Team{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.Teams.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return team.Team{}, err
	}
	txn.Commit(updated)
	slog.Info("team_updated", "id", updated.ID)
	return updated, nil
}

// ExecuteDeleteTeam removes optimistically with rollback on failure.
// POST: Cache excludes the row on success and is unchanged on failure
func ExecuteDeleteTeam(ctx context.Context, leagueID, id string, deps TeamDeps) error {
	cache := deps.Caches.Scope(leagueID)
	txn := cache.StageRemove(id)
	if err := deps.Teams.Delete(ctx, leagueID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(team.Team{})
	slog.Info("team_deleted", "id", id)
	return nil
}
