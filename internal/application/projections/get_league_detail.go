package projections

import (
	"context"

	"golang.org/x/sync/errgroup"

	conferenceAPI "leaguedesk/internal/adapters/api/conference"
	divisionAPI "leaguedesk/internal/adapters/api/division"
	leagueAPI "leaguedesk/internal/adapters/api/league"
	teamAPI "leaguedesk/internal/adapters/api/team"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/conference"
	"leaguedesk/internal/domain/division"
	"leaguedesk/internal/domain/league"
	"leaguedesk/internal/domain/team"
)

// GetLeagueDetailQuery carries query parameters.
type GetLeagueDetailQuery struct {
	LeagueID  string
	AccountID string // viewer's account id; "" for guests
	Refresh   bool
}

// DivisionGroup is a conference with the divisions assigned to it.
type DivisionGroup struct {
	Conference conference.Conference
	Divisions  []division.Division
}

// GetLeagueDetailResult carries the query result.
type GetLeagueDetailResult struct {
	League      league.League
	Owned       bool // UI affordance only
	Conferences []conference.Conference
	Divisions   []division.Division
	Teams       []team.Team
	Groups      []DivisionGroup     // divisions grouped under their conference
	Unassigned  []division.Division // divisions with no conference
}

// GetLeagueDetailDeps holds dependencies for GetLeagueDetail.
type GetLeagueDetailDeps struct {
	Leagues     leagueAPI.Client
	Conferences conferenceAPI.Client
	Divisions   divisionAPI.Client
	Teams       teamAPI.Client

	ConferenceCaches *listcache.Registry[conference.Conference]
	DivisionCaches   *listcache.Registry[division.Division]
	TeamCaches       *listcache.Registry[team.Team]
}

// QueryGetLeagueDetail retrieves one league with its structure. The child
// lists are fetched concurrently and read through their per-league caches.
// PRE: query.LeagueID is non-empty
// POST: every division appears exactly once across Groups and Unassigned
func QueryGetLeagueDetail(ctx context.Context, query GetLeagueDetailQuery, deps GetLeagueDetailDeps) (GetLeagueDetailResult, error) {
	var result GetLeagueDetailResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := deps.Leagues.GetByID(gctx, query.LeagueID)
		if err != nil {
			return err
		}
		result.League = l
		return nil
	})
	g.Go(func() error {
		rows, err := readThrough(gctx, deps.ConferenceCaches.Scope(query.LeagueID), query.Refresh, func(ctx context.Context) ([]conference.Conference, error) {
			return deps.Conferences.ListByLeague(ctx, query.LeagueID)
		})
		if err != nil {
			return err
		}
		result.Conferences = rows
		return nil
	})
	g.Go(func() error {
		rows, err := readThrough(gctx, deps.DivisionCaches.Scope(query.LeagueID), query.Refresh, func(ctx context.Context) ([]division.Division, error) {
			return deps.Divisions.ListByLeague(ctx, query.LeagueID)
		})
		if err != nil {
			return err
		}
		result.Divisions = rows
		return nil
	})
	g.Go(func() error {
		rows, err := readThrough(gctx, deps.TeamCaches.Scope(query.LeagueID), query.Refresh, func(ctx context.Context) ([]team.Team, error) {
			return deps.Teams.ListByLeague(ctx, query.LeagueID)
		})
		if err != nil {
			return err
		}
		result.Teams = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return GetLeagueDetailResult{}, err
	}

	result.Owned = result.League.OwnedBy(query.AccountID)
	result.Groups, result.Unassigned = groupDivisions(result.Conferences, result.Divisions)
	return result, nil
}

func groupDivisions(conferences []conference.Conference, divisions []division.Division) ([]DivisionGroup, []division.Division) {
	byConference := make(map[string][]division.Division)
	var unassigned []division.Division
	for _, d := range divisions {
		if d.ConferenceID == "" {
			unassigned = append(unassigned, d)
			continue
		}
		byConference[d.ConferenceID] = append(byConference[d.ConferenceID], d)
	}

	groups := make([]DivisionGroup, 0, len(conferences))
	for _, c := range conferences {
		groups = append(groups, DivisionGroup{Conference: c, Divisions: byConference[c.ID]})
		delete(byConference, c.ID)
	}
	// Divisions pointing at a conference the server no longer returns are
	// still shown rather than silently dropped.
	for _, orphans := range byConference {
		unassigned = append(unassigned, orphans...)
	}
	return groups, unassigned
}
