package projections

import (
	"context"
	"sort"

	playerAPI "leaguedesk/internal/adapters/api/player"
	teamAPI "leaguedesk/internal/adapters/api/team"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/player"
	"leaguedesk/internal/domain/team"

	"golang.org/x/sync/errgroup"
)

// GetTeamRosterQuery carries query parameters.
type GetTeamRosterQuery struct {
	LeagueID string
	TeamID   string
	Refresh  bool
}

// GetTeamRosterResult carries the query result.
type GetTeamRosterResult struct {
	Team    team.Team
	Players []player.Player
}

// GetTeamRosterDeps holds dependencies for GetTeamRoster.
type GetTeamRosterDeps struct {
	Teams        teamAPI.Client
	Players      playerAPI.Client
	PlayerCaches *listcache.Registry[player.Player]
}

// QueryGetTeamRoster retrieves a team and its roster concurrently. The
// roster reads through the per-team cache.
// PRE: query.LeagueID and query.TeamID are non-empty
// POST: Players are ordered by jersey number
func QueryGetTeamRoster(ctx context.Context, query GetTeamRosterQuery, deps GetTeamRosterDeps) (GetTeamRosterResult, error) {
	var result GetTeamRosterResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := deps.Teams.GetByID(gctx, query.LeagueID, query.TeamID)
		if err != nil {
			return err
		}
		result.Team = t
		return nil
	})
	g.Go(func() error {
		rows, err := readThrough(gctx, deps.PlayerCaches.Scope(query.TeamID), query.Refresh, func(ctx context.Context) ([]player.Player, error) {
			return deps.Players.ListByTeam(ctx, query.TeamID)
		})
		if err != nil {
			return err
		}
		result.Players = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return GetTeamRosterResult{}, err
	}

	sort.SliceStable(result.Players, func(i, j int) bool {
		return result.Players[i].Number < result.Players[j].Number
	})
	return result, nil
}
