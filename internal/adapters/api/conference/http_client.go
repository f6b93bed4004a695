package conference

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/conference"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wireConference struct {
	ID        string    `json:"id"`
	LeagueID  string    `json:"leagueId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type payload struct {
	Name string `json:"name"`
}

// ListByLeague returns the conferences of a league.
func (c *HTTPClient) ListByLeague(ctx context.Context, leagueID string) ([]domain.Conference, error) {
	var wires []wireConference
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/conferences", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Conference, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a conference by ID.
func (c *HTTPClient) GetByID(ctx context.Context, leagueID, id string) (domain.Conference, error) {
	var w wireConference
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/conferences/"+id, &w); err != nil {
		return domain.Conference{}, err
	}
	return toDomain(w), nil
}

// Create posts a new conference under its league.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Conference) (domain.Conference, error) {
	var w wireConference
	if err := c.api.Post(ctx, "/leagues/"+value.LeagueID+"/conferences", payload{Name: value.Name}, &w); err != nil {
		return domain.Conference{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing conference.
func (c *HTTPClient) Update(ctx context.Context, value domain.Conference) (domain.Conference, error) {
	var w wireConference
	if err := c.api.Patch(ctx, "/leagues/"+value.LeagueID+"/conferences/"+value.ID, payload{Name: value.Name}, &w); err != nil {
		return domain.Conference{}, err
	}
	return toDomain(w), nil
}

// Delete removes a conference by ID.
func (c *HTTPClient) Delete(ctx context.Context, leagueID, id string) error {
	return c.api.Delete(ctx, "/leagues/"+leagueID+"/conferences/"+id)
}

func toDomain(w wireConference) domain.Conference {
	return domain.Conference{
		ID:        w.ID,
		LeagueID:  w.LeagueID,
		Name:      w.Name,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
