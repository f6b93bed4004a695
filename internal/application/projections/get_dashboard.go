package projections

import (
	"context"

	leagueAPI "leaguedesk/internal/adapters/api/league"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/league"
)

// GetDashboardQuery carries query parameters.
type GetDashboardQuery struct {
	AccountID string // viewer's account id; "" for guests
	Refresh   bool
}

// DashboardLeague is one league row on the dashboard.
type DashboardLeague struct {
	League league.League
	Owned  bool // UI affordance only; the server enforces ownership
}

// GetDashboardResult carries the query result.
type GetDashboardResult struct {
	Leagues    []DashboardLeague
	OwnedCount int
}

// GetDashboardDeps holds dependencies for GetDashboard.
type GetDashboardDeps struct {
	Leagues     leagueAPI.Client
	LeagueCache *listcache.Collection[league.League]
}

// QueryGetDashboard retrieves the leagues visible to the viewer with
// ownership flags for the edit/delete affordances.
// PRE: none
// POST: OwnedCount equals the number of rows with Owned set
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps) (GetDashboardResult, error) {
	leagues, err := readThrough(ctx, deps.LeagueCache, query.Refresh, deps.Leagues.List)
	if err != nil {
		return GetDashboardResult{}, err
	}

	result := GetDashboardResult{Leagues: make([]DashboardLeague, 0, len(leagues))}
	for _, l := range leagues {
		row := DashboardLeague{League: l, Owned: l.OwnedBy(query.AccountID)}
		if row.Owned {
			result.OwnedCount++
		}
		result.Leagues = append(result.Leagues, row)
	}
	return result, nil
}
