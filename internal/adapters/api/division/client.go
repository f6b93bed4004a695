package division

import (
	"context"

	domain "leaguedesk/internal/domain/division"
)

// Client fetches and mutates divisions via the league API.
type Client interface {
	ListByLeague(ctx context.Context, leagueID string) ([]domain.Division, error)
	GetByID(ctx context.Context, leagueID, id string) (domain.Division, error)
	Create(ctx context.Context, value domain.Division) (domain.Division, error)
	Update(ctx context.Context, value domain.Division) (domain.Division, error)
	Delete(ctx context.Context, leagueID, id string) error
}
