package projections

import (
	"context"
	"sort"

	seasonAPI "leaguedesk/internal/adapters/api/season"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/season"
)

// GetLeagueSeasonsQuery carries query parameters.
type GetLeagueSeasonsQuery struct {
	LeagueID string
	Refresh  bool
}

// GetLeagueSeasonsResult carries the query result.
type GetLeagueSeasonsResult struct {
	Seasons []season.Season
	Current *season.Season // nil when no season is flagged current
}

// GetLeagueSeasonsDeps holds dependencies for GetLeagueSeasons.
type GetLeagueSeasonsDeps struct {
	Seasons      seasonAPI.Client
	SeasonCaches *listcache.Registry[season.Season]
}

// QueryGetLeagueSeasons retrieves a league's seasons through the per-league
// cache, newest start date first.
// PRE: query.LeagueID is non-empty
func QueryGetLeagueSeasons(ctx context.Context, query GetLeagueSeasonsQuery, deps GetLeagueSeasonsDeps) (GetLeagueSeasonsResult, error) {
	rows, err := readThrough(ctx, deps.SeasonCaches.Scope(query.LeagueID), query.Refresh, func(ctx context.Context) ([]season.Season, error) {
		return deps.Seasons.ListByLeague(ctx, query.LeagueID)
	})
	if err != nil {
		return GetLeagueSeasonsResult{}, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].StartDate.After(rows[j].StartDate)
	})
	result := GetLeagueSeasonsResult{Seasons: rows}
	for i := range rows {
		if rows[i].Current {
			result.Current = &rows[i]
			break
		}
	}
	return result, nil
}
