package projections

import (
	"context"
	"testing"
	"time"

	"leaguedesk/internal/application/listcache"
	domainGame "leaguedesk/internal/domain/game"
	domainSeason "leaguedesk/internal/domain/season"
	domainTeam "leaguedesk/internal/domain/team"
	domainVenue "leaguedesk/internal/domain/venue"
)

type mockSeasonGamesSeasonClient struct {
	season domainSeason.Season
}

func (m *mockSeasonGamesSeasonClient) ListByLeague(context.Context, string) ([]domainSeason.Season, error) {
	return nil, nil
}
func (m *mockSeasonGamesSeasonClient) GetByID(_ context.Context, _, id string) (domainSeason.Season, error) {
	if id != m.season.ID {
		return domainSeason.Season{}, context.DeadlineExceeded
	}
	return m.season, nil
}
func (m *mockSeasonGamesSeasonClient) Create(_ context.Context, v domainSeason.Season) (domainSeason.Season, error) {
	return v, nil
}
func (m *mockSeasonGamesSeasonClient) Update(_ context.Context, v domainSeason.Season) (domainSeason.Season, error) {
	return v, nil
}
func (m *mockSeasonGamesSeasonClient) Delete(context.Context, string, string) error { return nil }

type mockSeasonGamesGameClient struct {
	games []domainGame.Game
	lists int
}

func (m *mockSeasonGamesGameClient) ListBySeason(context.Context, string) ([]domainGame.Game, error) {
	m.lists++
	return m.games, nil
}
func (m *mockSeasonGamesGameClient) GetByID(context.Context, string, string) (domainGame.Game, error) {
	return domainGame.Game{}, nil
}
func (m *mockSeasonGamesGameClient) Create(_ context.Context, v domainGame.Game) (domainGame.Game, error) {
	return v, nil
}
func (m *mockSeasonGamesGameClient) Update(_ context.Context, v domainGame.Game) (domainGame.Game, error) {
	return v, nil
}
func (m *mockSeasonGamesGameClient) Delete(context.Context, string, string) error { return nil }
func (m *mockSeasonGamesGameClient) SaveResult(context.Context, domainGame.Result) (domainGame.Game, error) {
	return domainGame.Game{}, nil
}

type mockSeasonGamesTeamClient struct {
	teams []domainTeam.Team
}

func (m *mockSeasonGamesTeamClient) ListByLeague(context.Context, string) ([]domainTeam.Team, error) {
	return m.teams, nil
}
func (m *mockSeasonGamesTeamClient) GetByID(context.Context, string, string) (domainTeam.Team, error) {
	return domainTeam.Team{}, nil
}
func (m *mockSeasonGamesTeamClient) Create(_ context.Context, v domainTeam.Team) (domainTeam.Team, error) {
	return v, nil
}
func (m *mockSeasonGamesTeamClient) Update(_ context.Context, v domainTeam.Team) (domainTeam.Team, error) {
	return v, nil
}
func (m *mockSeasonGamesTeamClient) Delete(context.Context, string, string) error { return nil }

type mockSeasonGamesVenueClient struct {
	venues []domainVenue.Venue
}

func (m *mockSeasonGamesVenueClient) ListByLeague(context.Context, string) ([]domainVenue.Venue, error) {
	return m.venues, nil
}
func (m *mockSeasonGamesVenueClient) GetByID(context.Context, string, string) (domainVenue.Venue, error) {
	return domainVenue.Venue{}, nil
}
func (m *mockSeasonGamesVenueClient) Create(_ context.Context, v domainVenue.Venue) (domainVenue.Venue, error) {
	return v, nil
}
func (m *mockSeasonGamesVenueClient) Update(_ context.Context, v domainVenue.Venue) (domainVenue.Venue, error) {
	return v, nil
}
func (m *mockSeasonGamesVenueClient) Delete(context.Context, string, string) error { return nil }

func seasonGamesDeps(games *mockSeasonGamesGameClient) GetSeasonGamesDeps {
	return GetSeasonGamesDeps{
		Seasons: &mockSeasonGamesSeasonClient{
			season: domainSeason.Season{ID: "s1", LeagueID: "l1", Name: "2026 Winter"},
		},
		Games: games,
		Teams: &mockSeasonGamesTeamClient{teams: []domainTeam.Team{
			{ID: "h", LeagueID: "l1", Name: "Gulls", City: "Bayview"},
			{ID: "a", LeagueID: "l1", Name: "Harriers", City: "Eastport"},
		}},
		Venues: &mockSeasonGamesVenueClient{venues: []domainVenue.Venue{
			{ID: "v1", LeagueID: "l1", Name: "Bayview Stadium"},
		}},
		GameCaches:  listcache.NewRegistry[domainGame.Game](),
		TeamCaches:  listcache.NewRegistry[domainTeam.Team](),
		VenueCaches: listcache.NewRegistry[domainVenue.Venue](),
	}
}

// TestQueryGetSeasonGames_ResolvesNamesAndSorts verifies rows carry display
// names and come back in scheduled order.
func TestQueryGetSeasonGames_ResolvesNamesAndSorts(t *testing.T) {
	early := time.Date(2026, 6, 13, 19, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 20, 19, 0, 0, 0, time.UTC)
	games := &mockSeasonGamesGameClient{games: []domainGame.Game{
		{ID: "g2", SeasonID: "s1", HomeTeamID: "a", AwayTeamID: "h", ScheduledAt: late, Status: domainGame.StatusScheduled},
		{ID: "g1", SeasonID: "s1", HomeTeamID: "h", AwayTeamID: "a", VenueID: "v1", ScheduledAt: early, Status: domainGame.StatusScheduled},
	}}

	result, err := QueryGetSeasonGames(context.Background(),
		GetSeasonGamesQuery{LeagueID: "l1", SeasonID: "s1"}, seasonGamesDeps(games))
	if err != nil {
		t.Fatalf("QueryGetSeasonGames failed: %v", err)
	}

	if result.Season.Name != "2026 Winter" {
		t.Errorf("season = %q, want 2026 Winter", result.Season.Name)
	}
	if len(result.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(result.Rows))
	}
	first := result.Rows[0]
	if first.Game.ID != "g1" {
		t.Errorf("first row = %s, want the earlier game g1", first.Game.ID)
	}
	if first.HomeName != "Bayview Gulls" || first.AwayName != "Eastport Harriers" {
		t.Errorf("names = %q vs %q, want city-prefixed display names", first.HomeName, first.AwayName)
	}
	if first.Venue != "Bayview Stadium" {
		t.Errorf("venue = %q, want Bayview Stadium", first.Venue)
	}
	if result.Rows[1].Venue != "" {
		t.Errorf("venue = %q, want empty for a game with no venue", result.Rows[1].Venue)
	}
}

// TestQueryGetSeasonGames_UnknownTeamFallsBackToTBD verifies a dangling team
// id renders as TBD instead of breaking the page.
func TestQueryGetSeasonGames_UnknownTeamFallsBackToTBD(t *testing.T) {
	games := &mockSeasonGamesGameClient{games: []domainGame.Game{
		{ID: "g1", SeasonID: "s1", HomeTeamID: "h", AwayTeamID: "gone",
			ScheduledAt: time.Date(2026, 6, 13, 19, 0, 0, 0, time.UTC)},
	}}

	result, err := QueryGetSeasonGames(context.Background(),
		GetSeasonGamesQuery{LeagueID: "l1", SeasonID: "s1"}, seasonGamesDeps(games))
	if err != nil {
		t.Fatalf("QueryGetSeasonGames failed: %v", err)
	}
	if result.Rows[0].AwayName != "TBD" {
		t.Errorf("away name = %q, want TBD", result.Rows[0].AwayName)
	}
}

// TestQueryGetSeasonGames_ReadsThroughCache verifies the second query serves
// games from the cache without refetching.
func TestQueryGetSeasonGames_ReadsThroughCache(t *testing.T) {
	games := &mockSeasonGamesGameClient{games: []domainGame.Game{
		{ID: "g1", SeasonID: "s1", HomeTeamID: "h", AwayTeamID: "a",
			ScheduledAt: time.Date(2026, 6, 13, 19, 0, 0, 0, time.UTC)},
	}}
	deps := seasonGamesDeps(games)
	query := GetSeasonGamesQuery{LeagueID: "l1", SeasonID: "s1"}

	if _, err := QueryGetSeasonGames(context.Background(), query, deps); err != nil {
		t.Fatalf("first query failed: %v", err)
	}
	if _, err := QueryGetSeasonGames(context.Background(), query, deps); err != nil {
		t.Fatalf("second query failed: %v", err)
	}
	if games.lists != 1 {
		t.Errorf("api list calls = %d, want 1 (second read served from cache)", games.lists)
	}

	if _, err := QueryGetSeasonGames(context.Background(),
		GetSeasonGamesQuery{LeagueID: "l1", SeasonID: "s1", Refresh: true}, deps); err != nil {
		t.Fatalf("refresh query failed: %v", err)
	}
	if games.lists != 2 {
		t.Errorf("api list calls = %d, want 2 after forced refresh", games.lists)
	}
}
