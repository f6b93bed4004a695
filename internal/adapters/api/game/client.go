package game

import (
	"context"

	domain "leaguedesk/internal/domain/game"
)

// Client fetches and mutates games and their results via the league API.
type Client interface {
	ListBySeason(ctx context.Context, seasonID string) ([]domain.Game, error)
	GetByID(ctx context.Context, seasonID, id string) (domain.Game, error)
	Create(ctx context.Context, value domain.Game) (domain.Game, error)
	Update(ctx context.Context, value domain.Game) (domain.Game, error)
	Delete(ctx context.Context, seasonID, id string) error

	// SaveResult records a final score; the server flips the game to final.
	SaveResult(ctx context.Context, value domain.Result) (domain.Game, error)
}
