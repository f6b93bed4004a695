package division

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/division"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wireDivision struct {
	ID           string    `json:"id"`
	LeagueID     string    `json:"leagueId"`
	ConferenceID string    `json:"conferenceId"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type payload struct {
	Name         string `json:"name"`
	ConferenceID string `json:"conferenceId"`
}

// ListByLeague returns the divisions of a league.
func (c *HTTPClient) ListByLeague(ctx context.Context, leagueID string) ([]domain.Division, error) {
	var wires []wireDivision
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/divisions", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Division, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a division by ID.
func (c *HTTPClient) GetByID(ctx context.Context, leagueID, id string) (domain.Division, error) {
	var w wireDivision
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/divisions/"+id, &w); err != nil {
		return domain.Division{}, err
	}
	return toDomain(w), nil
}

// Create posts a new division under its league.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Division) (domain.Division, error) {
	var w wireDivision
	if err := c.api.Post(ctx, "/leagues/"+value.LeagueID+"/divisions", fromDomain(value), &w); err != nil {
		return domain.Division{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing division.
func (c *HTTPClient) Update(ctx context.Context, value domain.Division) (domain.Division, error) {
	var w wireDivision
	if err := c.api.Patch(ctx, "/leagues/"+value.LeagueID+"/divisions/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.Division{}, err
	}
	return toDomain(w), nil
}

// Delete removes a division by ID.
func (c *HTTPClient) Delete(ctx context.Context, leagueID, id string) error {
	return c.api.Delete(ctx, "/leagues/"+leagueID+"/divisions/"+id)
}

func toDomain(w wireDivision) domain.Division {
	return domain.Division{
		ID:           w.ID,
		LeagueID:     w.LeagueID,
		ConferenceID: w.ConferenceID,
		Name:         w.Name,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func fromDomain(d domain.Division) payload {
	return payload{Name: d.Name, ConferenceID: d.ConferenceID}
}
