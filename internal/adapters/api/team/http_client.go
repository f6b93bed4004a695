package team

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/team"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wireTeam struct {
	ID         string    `json:"id"`
	LeagueID   string    `json:"leagueId"`
	DivisionID string    `json:"divisionId"`
	Name       string    `json:"name"`
	City       string    `json:"city"`
	Abbrev     string    `json:"abbrev"`
	LogoURL    string    `json:"logoUrl"`
	OwnerID    string    `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type payload struct {
	Name       string `json:"name"`
	City       string `json:"city"`
	Abbrev     string `json:"abbrev"`
	LogoURL    string `json:"logoUrl"`
	DivisionID string `json:"divisionId"`
}

// ListByLeague returns the teams of a league.
func (c *HTTPClient) ListByLeague(ctx context.Context, leagueID string) ([]domain.Team, error) {
	var wires []wireTeam
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/teams", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Team, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a team by ID.
func (c *HTTPClient) GetByID(ctx context.Context, leagueID, id string) (domain.Team, error) {
	var w wireTeam
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/teams/"+id, &w); err != nil {
		return domain.Team{}, err
	}
	return toDomain(w), nil
}

// Create posts a new team under its league.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Team) (domain.Team, error) {
	var w wireTeam
	if err := c.api.Post(ctx, "/leagues/"+value.LeagueID+"/teams", fromDomain(value), &w); err != nil {
		return domain.Team{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing team.
func (c *HTTPClient) Update(ctx context.Context, value domain.Team) (domain.Team, error) {
	var w wireTeam
	if err := c.api.Patch(ctx, "/leagues/"+value.LeagueID+"/teams/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.Team{}, err
	}
	return toDomain(w), nil
}

// Delete removes a team by ID.
func (c *HTTPClient) Delete(ctx context.Context, leagueID, id string) error {
	return c.api.Delete(ctx, "/leagues/"+leagueID+"/teams/"+id)
}

func toDomain(w wireTeam) domain.Team {
	return domain.Team{
		ID:         w.ID,
		LeagueID:   w.LeagueID,
		DivisionID: w.DivisionID,
		Name:       w.Name,
		City:       w.City,
		Abbrev:     w.Abbrev,
		LogoURL:    w.LogoURL,
		OwnerID:    w.OwnerID,
		CreatedAt:  w.CreatedAt,
		UpdatedAt:  w.UpdatedAt,
	}
}

func fromDomain(t domain.Team) payload {
	return payload{
		Name:       t.Name,
		City:       t.City,
		Abbrev:     t.Abbrev,
		LogoURL:    t.LogoURL,
		DivisionID: t.DivisionID,
	}
}
