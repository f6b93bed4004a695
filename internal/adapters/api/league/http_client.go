package league

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/league"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

// wireLeague is the JSON shape served by the API.
type wireLeague struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Abbrev      string    `json:"abbrev"`
	Sport       string    `json:"sport"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// payload carries only the fields the server accepts on create/update.
type payload struct {
	Name        string `json:"name"`
	Abbrev      string `json:"abbrev"`
	Sport       string `json:"sport"`
	Description string `json:"description"`
}

// List returns every league visible to the caller.
// PRE: none
// POST: Returns leagues in server order; empty slice when none
func (c *HTTPClient) List(ctx context.Context) ([]domain.League, error) {
	var wires []wireLeague
	if err := c.api.Get(ctx, "/leagues", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.League, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a league by ID.
// PRE: id is non-empty
// POST: Returns the league, or api.ErrNotFound when missing
func (c *HTTPClient) GetByID(ctx context.Context, id string) (domain.League, error) {
	var w wireLeague
	if err := c.api.Get(ctx, "/leagues/"+id, &w); err != nil {
		return domain.League{}, err
	}
	return toDomain(w), nil
}

// Create posts a new league.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.League) (domain.League, error) {
	var w wireLeague
	if err := c.api.Post(ctx, "/leagues", fromDomain(value), &w); err != nil {
		return domain.League{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing league.
// PRE: value.ID is non-empty and value has been validated
// POST: Returns the server's updated row
func (c *HTTPClient) Update(ctx context.Context, value domain.League) (domain.League, error) {
	var w wireLeague
	if err := c.api.Patch(ctx, "/leagues/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.League{}, err
	}
	return toDomain(w), nil
}

// Delete removes a league by ID.
func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	return c.api.Delete(ctx, "/leagues/"+id)
}

func toDomain(w wireLeague) domain.League {
	return domain.League{
		ID:          w.ID,
		Name:        w.Name,
		Abbrev:      w.Abbrev,
		Sport:       w.Sport,
		Description: w.Description,
		OwnerID:     w.OwnerID,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func fromDomain(l domain.League) payload {
	return payload{
		Name:        l.Name,
		Abbrev:      l.Abbrev,
		Sport:       l.Sport,
		Description: l.Description,
	}
}
