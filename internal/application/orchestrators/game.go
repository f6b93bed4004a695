package orchestrators

import (
	"context"
	"log/slog"
	"time"

	gameAPI "leaguedesk/internal/adapters/api/game"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/game"
)

// GameDeps holds dependencies for the game orchestrators. Caches are scoped
// per season.
type GameDeps struct {
	Games  gameAPI.Client
	Caches *listcache.Registry[game.Game]
	Now    func() time.Time
}

// SaveGameInput carries the add/edit form fields. ID is empty in add mode.
type SaveGameInput struct {
	ID          string
	SeasonID    string
	HomeTeamID  string
	AwayTeamID  string
	VenueID     string
	ScheduledAt time.Time
	Status      string
}

// ExecuteCreateGame validates and posts a new game. The home-vs-away
// cross-field check lives in game.Validate.
// POST: On success the season's cache contains the server's row
func ExecuteCreateGame(ctx context.Context, input SaveGameInput, deps GameDeps) (game.Game, error) {
	candidate := game.Game{
		SeasonID:    input.SeasonID,
		HomeTeamID:  input.HomeTeamID,
		AwayTeamID:  input.AwayTeamID,
		VenueID:     input.VenueID,
		ScheduledAt: input.ScheduledAt,
		Status:      input.Status,
	}
	if candidate.Status == "" {
		candidate.Status = game.StatusScheduled
	}
	if err := candidate.Validate(); err != nil {
		return game.Game{}, err
	}
	created, err := deps.Games.Create(ctx, candidate)
	if err != nil {
		return game.Game{}, err
	}
	deps.Caches.Scope(input.SeasonID).Apply(created)
	slog.Info("game_created", "id", created.ID, "season", input.SeasonID)
	return created, nil
}

// ExecuteUpdateGame applies the edit optimistically and reconciles.
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteUpdateGame(ctx context.Context, input SaveGameInput, deps GameDeps) (game.Game, error) {
	cache := deps.Caches.Scope(input.SeasonID)
	candidate, _ := cache.Get(input.ID)
	candidate.ID = input.ID
	candidate.SeasonID = input.SeasonID
	candidate.HomeTeamID = input.HomeTeamID
	candidate.AwayTeamID = input.AwayTeamID
	candidate.VenueID = input.VenueID
	candidate.ScheduledAt = input.ScheduledAt
	if input.Status != "" {
		candidate.Status = input.Status
	}
	if err := candidate.Validate(); err != nil {
		return game.Game{}, err
	}
	candidate.UpdatedAt = deps.Now()

	txn := cache.StageUpdate(candidate)
	updated, err := deps.Games.Update(ctx, candidate)
	if err != nil {
		txn.Rollback()
		return game.Game{}, err
	}
	txn.Commit(updated)
	return updated, nil
}

// ExecuteDeleteGame removes optimistically with rollback on failure.
func ExecuteDeleteGame(ctx context.Context, seasonID, id string, deps GameDeps) error {
	cache := deps.Caches.Scope(seasonID)
	txn := cache.StageRemove(id)
	if err := deps.Games.Delete(ctx, seasonID, id); err != nil {
		txn.Rollback()
		return err
	}
	txn.Commit(game.Game{})
	return nil
}

// SaveResultInput carries the score form fields.
type SaveResultInput struct {
	SeasonID  string
	GameID    string
	HomeScore int
	AwayScore int
}

// ExecuteSaveGameResult records a final score. The staged optimistic row
// flips the game to final locally; the server's row wins on success and the
// pre-image returns on failure.
// PRE: the game exists in the season's cache or on the server
// POST: Cache matches the server on success and the pre-image on failure
func ExecuteSaveGameResult(ctx context.Context, input SaveResultInput, deps GameDeps) (game.Game, error) {
	result := game.Result{GameID: input.GameID, HomeScore: input.HomeScore, AwayScore: input.AwayScore}
	if err := result.Validate(); err != nil {
		return game.Game{}, err
	}

	cache := deps.Caches.Scope(input.SeasonID)
	optimistic, ok := cache.Get(input.GameID)
	if ok {
		optimistic.HomeScore = input.HomeScore
		optimistic.AwayScore = input.AwayScore
		optimistic.Status = game.StatusFinal
		optimistic.UpdatedAt = deps.Now()
	}

	var txn *listcache.Txn[game.Game]
	if ok {
		txn = cache.StageUpdate(optimistic)
	}
	updated, err := deps.Games.SaveResult(ctx, result)
	if err != nil {
		if txn != nil {
			txn.Rollback()
		}
		return game.Game{}, err
	}
	if txn != nil {
		txn.Commit(updated)
	} else {
		cache.Apply(updated)
	}
	slog.Info("game_result_saved", "id", input.GameID, "home", input.HomeScore, "away", input.AwayScore)
	return updated, nil
}
