package projections

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	gameAPI "leaguedesk/internal/adapters/api/game"
	seasonAPI "leaguedesk/internal/adapters/api/season"
	teamAPI "leaguedesk/internal/adapters/api/team"
	venueAPI "leaguedesk/internal/adapters/api/venue"
	"leaguedesk/internal/application/listcache"
	"leaguedesk/internal/domain/game"
	"leaguedesk/internal/domain/season"
	"leaguedesk/internal/domain/team"
	"leaguedesk/internal/domain/venue"
)

// GetSeasonGamesQuery carries query parameters.
type GetSeasonGamesQuery struct {
	LeagueID string
	SeasonID string
	Refresh  bool
}

// GameRow is one schedule row with names resolved for display.
type GameRow struct {
	Game     game.Game
	HomeName string
	AwayName string
	Venue    string
}

// GetSeasonGamesResult carries the query result.
type GetSeasonGamesResult struct {
	Season season.Season
	Rows   []GameRow
	Teams  []team.Team   // for the game form's team pickers
	Venues []venue.Venue // for the game form's venue picker
}

// GetSeasonGamesDeps holds dependencies for GetSeasonGames.
type GetSeasonGamesDeps struct {
	Seasons seasonAPI.Client
	Games   gameAPI.Client
	Teams   teamAPI.Client
	Venues  venueAPI.Client

	GameCaches  *listcache.Registry[game.Game]
	TeamCaches  *listcache.Registry[team.Team]
	VenueCaches *listcache.Registry[venue.Venue]
}

// QueryGetSeasonGames retrieves a season's schedule with team and venue
// names resolved. The season, games, teams and venues are fetched
// concurrently; games read through the per-season cache so a just-saved
// result shows without a refetch.
// PRE: query.LeagueID and query.SeasonID are non-empty
// POST: Rows are ordered by scheduled time, earliest first
func QueryGetSeasonGames(ctx context.Context, query GetSeasonGamesQuery, deps GetSeasonGamesDeps) (GetSeasonGamesResult, error) {
	var result GetSeasonGamesResult
	var games []game.Game

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := deps.Seasons.GetByID(gctx, query.LeagueID, query.SeasonID)
		if err != nil {
			return err
		}
		result.Season = s
		return nil
	})
	g.Go(func() error {
		rows, err := readThrough(gctx, deps.GameCaches.Scope(query.SeasonID), query.Refresh, func(ctx context.Context) ([]game.Game, error) {
			return deps.Games.ListBySeason(ctx, query.SeasonID)
		})
		if err != nil {
			return err
		}
		games = rows
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
	g.Go(func() error {
		rows, err := readThrough(gctx, deps.VenueCaches.Scope(query.LeagueID), query.Refresh, func(ctx context.Context) ([]venue.Venue, error) {
			return deps.Venues.ListByLeague(ctx, query.LeagueID)
		})
		if err != nil {
			return err
		}
		result.Venues = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return GetSeasonGamesResult{}, err
	}

	teamNames := make(map[string]string, len(result.Teams))
	for _, t := range result.Teams {
		teamNames[t.ID] = t.DisplayName()
	}
	venueNames := make(map[string]string, len(result.Venues))
	for _, v := range result.Venues {
		venueNames[v.ID] = v.Name
	}

	result.Rows = make([]GameRow, 0, len(games))
	for _, gm := range games {
		result.Rows = append(result.Rows, GameRow{
			Game:     gm,
			HomeName: nameOr(teamNames, gm.HomeTeamID, "TBD"),
			AwayName: nameOr(teamNames, gm.AwayTeamID, "TBD"),
			Venue:    nameOr(venueNames, gm.VenueID, ""),
		})
	}
	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].Game.ScheduledAt.Before(result.Rows[j].Game.ScheduledAt)
	})
	return result, nil
}

func nameOr(names map[string]string, id, fallback string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return fallback
}
