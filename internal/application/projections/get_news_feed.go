package projections

import (
	"context"
	"sort"

	newsAPI "leaguedesk/internal/adapters/api/news"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/news"
)

// GetNewsFeedQuery carries query parameters.
type GetNewsFeedQuery struct {
	LeagueID  string
	AccountID string // viewer's account id; "" for guests
	Refresh   bool
}

// NewsRow is one post with the viewer's edit affordance resolved.
type NewsRow struct {
	Post  news.Post
	Owned bool // UI affordance only
}

// GetNewsFeedResult carries the query result.
type GetNewsFeedResult struct {
	Published []NewsRow
	Drafts    []NewsRow // viewer's own drafts only
}

// GetNewsFeedDeps holds dependencies for GetNewsFeed.
type GetNewsFeedDeps struct {
	News       newsAPI.Client
	NewsCaches *listcache.Registry[news.Post]
}

// QueryGetNewsFeed retrieves a league's news feed. Published posts are
// ordered newest first; drafts belonging to other authors are hidden (the
// server already withholds their bodies, this keeps the list tidy).
// PRE: query.LeagueID is non-empty
// POST: every row in Drafts is owned by the viewer
func QueryGetNewsFeed(ctx context.Context, query GetNewsFeedQuery, deps GetNewsFeedDeps) (GetNewsFeedResult, error) {
	posts, err := readThrough(ctx, deps.NewsCaches.Scope(query.LeagueID), query.Refresh, func(ctx context.Context) ([]news.Post, error) {
		return deps.News.ListByLeague(ctx, query.LeagueID)
	})
	if err != nil {
		return GetNewsFeedResult{}, err
	}

	var result GetNewsFeedResult
	for _, p := range posts {
		row := NewsRow{Post: p, Owned: p.OwnedBy(query.AccountID)}
		switch {
		case p.IsPublished():
			result.Published = append(result.Published, row)
		case row.Owned:
			result.Drafts = append(result.Drafts, row)
		}
	}
	sort.SliceStable(result.Published, func(i, j int) bool {
		return result.Published[i].Post.PublishedAt.After(result.Published[j].Post.PublishedAt)
	})
	return result, nil
}
