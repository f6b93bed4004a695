package team

import (
	"context"

	domain "leaguedesk/internal/domain/team"
)

// Client fetches and mutates teams via the league API.
type Client interface {
	ListByLeague(ctx context.Context, leagueID string) ([]domain.Team, error)
	GetByID(ctx context.Context, leagueID, id string) (domain.Team, error)
	Create(ctx context.Context, value domain.Team) (domain.Team, error)
	Update(ctx context.Context, value domain.Team) (domain.Team, error)
	Delete(ctx context.Context, leagueID, id string) error
}
