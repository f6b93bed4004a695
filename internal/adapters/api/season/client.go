package season

import (
	"context"

	domain "leaguedesk/internal/domain/season"
)

// Client fetches and mutates seasons via the league API.
type Client interface {
	ListByLeague(ctx context.Context, leagueID string) ([]domain.Season, error)
	GetByID(ctx context.Context, leagueID, id string) (domain.Season, error)
	Create(ctx context.Context, value domain.Season) (domain.Season, error)
	Update(ctx context.Context, value domain.Season) (domain.Season, error)
	Delete(ctx context.Context, leagueID, id string) error
}
