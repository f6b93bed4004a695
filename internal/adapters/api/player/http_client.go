package player

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/player"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wirePlayer struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Number    int       `json:"number"`
	Position  string    `json:"position"`
	HeightCm  int       `json:"heightCm"`
	WeightKg  int       `json:"weightKg"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type payload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Number    int    `json:"number"`
	Position  string `json:"position"`
	HeightCm  int    `json:"heightCm"`
	WeightKg  int    `json:"weightKg"`
}

// ListByTeam returns the roster of a team.
func (c *HTTPClient) ListByTeam(ctx context.Context, teamID string) ([]domain.Player, error) {
	var wires []wirePlayer
	if err := c.api.Get(ctx, "/teams/"+teamID+"/players", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Player, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a player by ID.
func (c *HTTPClient) GetByID(ctx context.Context, teamID, id string) (domain.Player, error) {
	var w wirePlayer
	if err := c.api.Get(ctx, "/teams/"+teamID+"/players/"+id, &w); err != nil {
		return domain.Player{}, err
	}
	return toDomain(w), nil
}

// Create posts a new player under their team.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Player) (domain.Player, error) {
	var w wirePlayer
	if err := c.api.Post(ctx, "/teams/"+value.TeamID+"/players", fromDomain(value), &w); err != nil {
		return domain.Player{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing player.
func (c *HTTPClient) Update(ctx context.Context, value domain.Player) (domain.Player, error) {
	var w wirePlayer
	if err := c.api.Patch(ctx, "/teams/"+value.TeamID+"/players/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.Player{}, err
	}
	return toDomain(w), nil
}

// Delete removes a player by ID.
func (c *HTTPClient) Delete(ctx context.Context, teamID, id string) error {
	return c.api.Delete(ctx, "/teams/"+teamID+"/players/"+id)
}

func toDomain(w wirePlayer) domain.Player {
	return domain.Player{
		ID:        w.ID,
		TeamID:    w.TeamID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		Number:    w.Number,
		Position:  w.Position,
		HeightCm:  w.HeightCm,
		WeightKg:  w.WeightKg,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func fromDomain(p domain.Player) payload {
	return payload{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Number:    p.Number,
		Position:  p.Position,
		HeightCm:  p.HeightCm,
		WeightKg:  p.WeightKg,
	}
}
