package conference

import (
	"context"

	domain "leaguedesk/internal/domain/conference"
)

// Client fetches and mutates conferences via the league API.
type Client interface {
	ListByLeague(ctx context.Context, leagueID string) ([]domain.Conference, error)
	GetByID(ctx context.Context, leagueID, id string) (domain.Conference, error)
	Create(ctx context.Context, value domain.Conference) (domain.Conference, error)
	Update(ctx context.Context, value domain.Conference) (domain.Conference, error)
	Delete(ctx context.Context, leagueID, id string) error
}
