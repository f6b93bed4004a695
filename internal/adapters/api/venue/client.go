package venue

import (
	"context"

	domain "leaguedesk/internal/domain/venue"
)

// Client fetches and mutates venues via the league API.
type Client interface {
	ListByLeague(ctx context.Context, leagueID string) ([]domain.Venue, error)
	GetByID(ctx context.Context, leagueID, id string) (domain.Venue, error)
	Create(ctx context.Context, value domain.Venue) (domain.Venue, error)
	Update(ctx context.Context, value domain.Venue) (domain.Venue, error)
	Delete(ctx context.Context, leagueID, id string) error
}
