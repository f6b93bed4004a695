package team_test

import (
	"errors"
	"strings"
	"testing"

	"leaguedesk/internal/domain/team"
)

// TestTeam_Validate tests validation of Team.
func TestTeam_Validate(t *testing.T) {
	tests := []struct {
		name    string
		team    team.Team
		wantErr error
	}{
		{
			name: "valid team",
			team: team.Team{ID: "1", LeagueID: "l1", Name: "Gulls", City: "Bayview", Abbrev: "BAY"},
		},
		{
			name: "city and abbrev optional",
			team: team.Team{ID: "2", LeagueID: "l1", Name: "Gulls"},
		},
		{
			name:    "missing league",
			team:    team.Team{ID: "3", Name: "Gulls"},
			wantErr: team.ErrEmptyLeagueID,
		},
		{
			name:    "empty name",
			team:    team.Team{ID: "4", LeagueID: "l1"},
			wantErr: team.ErrEmptyName,
		},
		{
			name:    "name too long",
			team:    team.Team{ID: "5", LeagueID: "l1", Name: strings.Repeat("x", 101)},
			wantErr: team.ErrNameTooLong,
		},
		{
			name:    "city too long",
			team:    team.Team{ID: "6", LeagueID: "l1", Name: "ok", City: strings.Repeat("x", 101)},
			wantErr: team.ErrCityTooLong,
		},
		{
			name:    "abbreviation too long",
			team:    team.Team{ID: "7", LeagueID: "l1", Name: "ok", Abbrev: "SIXCHR"},
			wantErr: team.ErrAbbrevTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.team.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestTeam_DisplayName tests the city-prefixed display name.
func TestTeam_DisplayName(t *testing.T) {
	tm := team.Team{Name: "Gulls", City: "Bayview"}
	if got := tm.DisplayName(); got != "Bayview Gulls" {
		t.Errorf("DisplayName() = %q, want %q", got, "Bayview Gulls")
	}
	tm.City = ""
	if got := tm.DisplayName(); got != "Gulls" {
		t.Errorf("DisplayName() = %q, want %q", got, "Gulls")
	}
}
