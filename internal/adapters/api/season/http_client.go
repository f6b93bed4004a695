package season

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/season"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wireSeason struct {
	ID        string    `json:"id"`
	LeagueID  string    `json:"leagueId"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Current   bool      `json:"current"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type payload struct {
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Current   bool      `json:"current"`
}

// ListByLeague returns the seasons of a league.
func (c *HTTPClient) ListByLeague(ctx context.Context, leagueID string) ([]domain.Season, error) {
	var wires []wireSeason
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/seasons", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Season, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a season by ID.
func (c *HTTPClient) GetByID(ctx context.Context, leagueID, id string) (domain.Season, error) {
	var w wireSeason
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/seasons/"+id, &w); err != nil {
		return domain.Season{}, err
	}
	return toDomain(w), nil
}

// Create posts a new season under its league.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Season) (domain.Season, error) {
	var w wireSeason
	if err := c.api.Post(ctx, "/leagues/"+value.LeagueID+"/seasons", fromDomain(value), &w); err != nil {
		return domain.Season{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing season.
func (c *HTTPClient) Update(ctx context.Context, value domain.Season) (domain.Season, error) {
	var w wireSeason
	if err := c.api.Patch(ctx, "/leagues/"+value.LeagueID+"/seasons/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.Season{}, err
	}
	return toDomain(w), nil
}

// Delete removes a season by ID.
func (c *HTTPClient) Delete(ctx context.Context, leagueID, id string) error {
	return c.api.Delete(ctx, "/leagues/"+leagueID+"/seasons/"+id)
}

func toDomain(w wireSeason) domain.Season {
	return domain.Season{
		ID:        w.ID,
		LeagueID:  w.LeagueID,
		Name:      w.Name,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		Current:   w.Current,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func fromDomain(s domain.Season) payload {
	return payload{
		Name:      s.Name,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Current:   s.Current,
	}
}
