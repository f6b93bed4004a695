package orchestrators

import (
	"context"
	"log/slog"
	"time"

	playerAPI "leaguedesk/internal/adapters/api/player"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/player"
)

// PlayerDeps holds dependencies for the player orchestrators. Caches are
// scoped per team.
type PlayerDeps struct {
	Players playerAPI.Client
	Caches  *listcache.Registry[player.Player]
	Now     func() time.Time
}

// SavePlayerInput carries the add/edit form fields. ID is empty in add mode.
type SavePlayerInput struct {
	ID        string
	TeamID    string
	FirstName string
	LastName  string
	Number    int
	Position  string
	HeightCm  int
	WeightKg  int
}

// ExecuteCreatePlayer validates and posts a new player.
// POST: On success the team's roster cache contains the server's row
func ExecuteCreatePlayer(ctx context.Context, input SavePlayerInput, deps PlayerDeps) (player.Player, error) {
	candidate := player.Player{
		TeamID:    input.TeamID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Number:    input.Number,
		Position:  input.Position,
		HeightCm:  input.HeightCm,
		WeightKg:  input.WeightKg,
	}
	if err := candidate.Validate(); err != nil {
		return player.Player{}, err
	}
	created, err := deps.Players.Create(ctx, candidate)
	if err != nil {
		return player.Player{}, err
	}
	deps.Caches.Scope(input.TeamID).Apply(created)
	slog.Info("player_created", "id", created.ID, "team", input.TeamID)
	return created, nil
}

// ExecuteUpdatePlayer applies the edit optimistically and reconciles.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdatePlayer(ctx context.Context, input SavePlayerInput, deps PlayerDeps) (player.Player, error) {
	cache := deps.Caches.Scope(input.TeamID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.TeamID = input.TeamID
	candidate.FirstName = input.FirstName
	candidate.LastName = input.LastName
	candidate.Number = input.Number
	candidate.Position = input.Position
	candidate.HeightCm = input.HeightCm
	candidate.WeightKg = input.WeightKg
	if err := candidate.Validate(); err != nil {
		return player.Player{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.Players.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return player.Player{}, err
	}
	txn.Commit(updated)
	return updated, nil
}

// ExecuteDeletePlayer removes optimistically with rollback on failure.
func ExecuteDeletePlayer(ctx context.Context, teamID, id string, deps PlayerDeps) error {
	cache := deps.Caches.Scope(teamID)
	txn := cache.StageRemove(id)
	if err := deps.Players.Delete(ctx, teamID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(player.Player{})
	return nil
}
