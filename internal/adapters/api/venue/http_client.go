package venue

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/venue"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wireVenue struct {
	ID        string    `json:"id"`
	LeagueID  string    `json:"leagueId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type payload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

// ListByLeague returns the venues of a league.
func (c *HTTPClient) ListByLeague(ctx context.Context, leagueID string) ([]domain.Venue, error) {
	var wires []wireVenue
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/venues", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Venue, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a venue by ID.
func (c *HTTPClient) GetByID(ctx context.Context, leagueID, id string) (domain.Venue, error) {
	var w wireVenue
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/venues/"+id, &w); err != nil {
		return domain.Venue{}, err
	}
	return toDomain(w), nil
}

// Create posts a new venue under its league.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Venue) (domain.Venue, error) {
	var w wireVenue
	if err := c.api.Post(ctx, "/leagues/"+value.LeagueID+"/venues", fromDomain(value), &w); err != nil {
		return domain.Venue{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing venue.
func (c *HTTPClient) Update(ctx context.Context, value domain.Venue) (domain.Venue, error) {
	var w wireVenue
	if err := c.api.Patch(ctx, "/leagues/"+value.LeagueID+"/venues/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.Venue{}, err
	}
	return toDomain(w), nil
}

// Delete removes a venue by ID.
func (c *HTTPClient) Delete(ctx context.Context, leagueID, id string) error {
	return c.api.Delete(ctx, "/leagues/"+leagueID+"/venues/"+id)
}

func toDomain(w wireVenue) domain.Venue {
	return domain.Venue{
		ID:        w.ID,
		LeagueID:  w.LeagueID,
		Name:      w.Name,
		Address:   w.Address,
		City:      w.City,
		Capacity:  w.Capacity,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func fromDomain(v domain.Venue) payload {
	return payload{Name: v.Name, Address: v.Address, City: v.City, Capacity: v.Capacity}
}
