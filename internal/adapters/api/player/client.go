package player

import (
	"context"

	domain "leaguedesk/internal/domain/player"
)

// Client fetches and mutates players via the league API.
type Client interface {
	ListByTeam(ctx context.Context, teamID string) ([]domain.Player, error)
	GetByID(ctx context.Context, teamID, id string) (domain.Player, error)
	Create(ctx context.Context, value domain.Player) (domain.Player, error)
	Update(ctx context.Context, value domain.Player) (domain.Player, error)
	Delete(ctx context.Context, teamID, id string) error
}
