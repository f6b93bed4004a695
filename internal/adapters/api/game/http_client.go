package game

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/game"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wireGame struct {
	ID          string    `json:"id"`
	SeasonID    string    `json:"seasonId"`
	HomeTeamID  string    `json:"homeTeamId"`
	AwayTeamID  string    `json:"awayTeamId"`
	VenueID     string    `json:"venueId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	HomeScore   int       `json:"homeScore"`
	AwayScore   int       `json:"awayScore"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type payload struct {
	HomeTeamID  string    `json:"homeTeamId"`
	AwayTeamID  string    `json:"awayTeamId"`
	VenueID     string    `json:"venueId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
}

type resultPayload struct {
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
}

// ListBySeason returns the games of a season.
func (c *HTTPClient) ListBySeason(ctx context.Context, seasonID string) ([]domain.Game, error) {
	var wires []wireGame
	if err := c.api.Get(ctx, "/seasons/"+seasonID+"/games", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Game, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a game by ID.
func (c *HTTPClient) GetByID(ctx context.Context, seasonID, id string) (domain.Game, error) {
	var w wireGame
	if err := c.api.Get(ctx, "/seasons/"+seasonID+"/games/"+id, &w); err != nil {
		return domain.Game{}, err
	}
	return toDomain(w), nil
}

// Create posts a new game under its season.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Game) (domain.Game, error) {
	var w wireGame
	if err := c.api.Post(ctx, "/seasons/"+value.SeasonID+"/games", fromDomain(value), &w); err != nil {
		return domain.Game{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing game.
func (c *HTTPClient) Update(ctx context.Context, value domain.Game) (domain.Game, error) {
	var w wireGame
	if err := c.api.Patch(ctx, "/seasons/"+value.SeasonID+"/games/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.Game{}, err
	}
	return toDomain(w), nil
}

// Delete removes a game by ID.
func (c *HTTPClient) Delete(ctx context.Context, seasonID, id string) error {
	return c.api.Delete(ctx, "/seasons/"+seasonID+"/games/"+id)
}

// SaveResult records the final score of a game.
// PRE: value has been validated
// POST: Returns the updated game with Status final
func (c *HTTPClient) SaveResult(ctx context.Context, value domain.Result) (domain.Game, error) {
	var w wireGame
	body := resultPayload{HomeScore: value.HomeScore, AwayScore: value.AwayScore}
	if err := c.api.Patch(ctx, "/games/"+value.GameID+"/result", body, &w); err != nil {
		return domain.Game{}, err
	}
	return toDomain(w), nil
}

func toDomain(w wireGame) domain.Game {
	return domain.Game{
		ID:          w.ID,
		SeasonID:    w.SeasonID,
		HomeTeamID:  w.HomeTeamID,
		AwayTeamID:  w.AwayTeamID,
		VenueID:     w.VenueID,
		ScheduledAt: w.ScheduledAt,
		Status:      w.Status,
		HomeScore:   w.HomeScore,
		AwayScore:   w.AwayScore,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func fromDomain(g domain.Game) payload {
	return payload{
		HomeTeamID:  g.HomeTeamID,
		AwayTeamID:  g.AwayTeamID,
		VenueID:     g.VenueID,
		ScheduledAt: g.ScheduledAt,
		Status:      g.Status,
	}
}
