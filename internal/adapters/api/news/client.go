package news

import (
	"context"

	domain "leaguedesk/internal/domain/news"
)

// Client fetches and mutates news posts via the league API.
type Client interface {
	ListByLeague(ctx context.Context, leagueID string) ([]domain.Post, error)
	GetByID(ctx context.Context, leagueID, id string) (domain.Post, error)
	Create(ctx context.Context, value domain.Post) (domain.Post, error)
	Update(ctx context.Context, value domain.Post) (domain.Post, error)
	Delete(ctx context.Context, leagueID, id string) error
}
