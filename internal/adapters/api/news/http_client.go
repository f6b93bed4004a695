package news

import (
	"context"
	"time"

	"leaguedesk/internal/adapters/api"
	domain "leaguedesk/internal/domain/news"
)

// HTTPClient implements Client against the REST API.
type HTTPClient struct {
	api *api.Client
}

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(base *api.Client) *HTTPClient {
	return &HTTPClient{api: base}
}

type wirePost struct {
	ID          string    `json:"id"`
	LeagueID    string    `json:"leagueId"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Status      string    `json:"status"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type payload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status"`
}

// ListByLeague returns the news posts of a league, newest first.
func (c *HTTPClient) ListByLeague(ctx context.Context, leagueID string) ([]domain.Post, error) {
	var wires []wirePost
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/news", &wires); err != nil {
		return nil, err
	}
	out := make([]domain.Post, 0, len(wires))
	for _, w := range wires {
		out = append(out, toDomain(w))
	}
	return out, nil
}

// GetByID retrieves a news post by ID.
func (c *HTTPClient) GetByID(ctx context.Context, leagueID, id string) (domain.Post, error) {
	var w wirePost
	if err := c.api.Get(ctx, "/leagues/"+leagueID+"/news/"+id, &w); err != nil {
		return domain.Post{}, err
	}
	return toDomain(w), nil
}

// Create posts a new news post under its league.
// PRE: value has been validated
// POST: Returns the server's row including id and timestamps
func (c *HTTPClient) Create(ctx context.Context, value domain.Post) (domain.Post, error) {
	var w wirePost
	if err := c.api.Post(ctx, "/leagues/"+value.LeagueID+"/news", fromDomain(value), &w); err != nil {
		return domain.Post{}, err
	}
	return toDomain(w), nil
}

// Update patches an existing news post.
func (c *HTTPClient) Update(ctx context.Context, value domain.Post) (domain.Post, error) {
	var w wirePost
	if err := c.api.Patch(ctx, "/leagues/"+value.LeagueID+"/news/"+value.ID, fromDomain(value), &w); err != nil {
		return domain.Post{}, err
	}
	return toDomain(w), nil
}

// Delete removes a news post by ID.
func (c *HTTPClient) Delete(ctx context.Context, leagueID, id string) error {
	return c.api.Delete(ctx, "/leagues/"+leagueID+"/news/"+id)
}

func toDomain(w wirePost) domain.Post {
	return domain.Post{
		ID:          w.ID,
		LeagueID:    w.LeagueID,
		Title:       w.Title,
		Body:        w.Body,
		Status:      w.Status,
		AuthorID:    w.AuthorID,
		AuthorName:  w.AuthorName,
		PublishedAt: w.PublishedAt,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func fromDomain(p domain.Post) payload {
	return payload{Title: p.Title, Body: p.Body, Status: p.Status}
}
