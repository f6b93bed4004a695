package projections

import (
	"context"

	venueAPI "leaguedesk/internal/adapters/api/venue"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/application/listutil"
	"leaguedesk/internal/domain/venue"
)

// GetLeagueVenuesQuery carries query parameters.
type GetLeagueVenuesQuery struct {
	LeagueID string
	Refresh  bool
	Params   listutil.ListParams
}

// GetLeagueVenuesResult carries the query result.
type GetLeagueVenuesResult struct {
	Venues   []venue.Venue
	PageInfo listutil.PageInfo
}

// GetLeagueVenuesDeps holds dependencies for GetLeagueVenues.
type GetLeagueVenuesDeps struct {
	Venues      venueAPI.Client
	VenueCaches *listcache.Registry[venue.Venue]
}

// QueryGetLeagueVenues retrieves a league's venues through the per-league
// cache, searched and paged in memory.
// PRE: query.LeagueID is non-empty
func QueryGetLeagueVenues(ctx context.Context, query GetLeagueVenuesQuery, deps GetLeagueVenuesDeps) (GetLeagueVenuesResult, error) {
	rows, err := readThrough(ctx, deps.VenueCaches.Scope(query.LeagueID), query.Refresh, func(ctx context.Context) ([]venue.Venue, error) {
		return deps.Venues.ListByLeague(ctx, query.LeagueID)
	})
	if err != nil {
		return GetLeagueVenuesResult{}, err
	}

	matched := rows[:0:0]
	for _, v := range rows {
		if query.Params.Matches(v.Name, v.City, v.Address) {
			matched = append(matched, v)
		}
	}
	page, info := listutil.Page(matched, query.Params.PageParams)
	return GetLeagueVenuesResult{Venues: page, PageInfo: info}, nil
}
