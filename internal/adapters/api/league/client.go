package league

import (
	"context"

	domain "leaguedesk/internal/domain/league"
)

// Client fetches and mutates leagues via the league API.
type Client interface {
	List(ctx context.Context) ([]domain.League, error)
	GetByID(ctx context.Context, id string) (domain.League, error)
	Create(ctx context.Context, value domain.League) (domain.League, error)
	Update(ctx context.Context, value domain.League) (domain.League, error)
	Delete(ctx context.Context, id string) error
}
