package player_test

import (
	"errors"
	"strings"
	"testing"

	"leaguedesk/internal/domain/player"
)

// TestPlayer_Validate tests validation of Player.
func TestPlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		player  player.Player
		wantErr error
	}{
		{
			name:   "valid player",
			player: player.Player{ID: "1", TeamID: "t1", FirstName: "Rangi", LastName: "Parata", Number: 7, Position: player.PositionGuard},
		},
		{
			name:   "height and weight optional",
			player: player.Player{ID: "2", TeamID: "t1", FirstName: "Rangi", LastName: "Parata"},
		},
		{
			name:    "missing team",
			player:  player.Player{ID: "3", FirstName: "Rangi", LastName: "Parata"},
			wantErr: player.ErrEmptyTeamID,
		},
		{
			name:    "empty first name",
			player:  player.Player{ID: "4", TeamID: "t1", LastName: "Parata"},
			wantErr: player.ErrEmptyFirstName,
		},
		{
			name:    "empty last name",
			player:  player.Player{ID: "5", TeamID: "t1", FirstName: "Rangi"},
			wantErr: player.ErrEmptyLastName,
		},
		{
			name:    "name too long",
			player:  player.Player{ID: "6", TeamID: "t1", FirstName: strings.Repeat("x", 51), LastName: "Parata"},
			wantErr: player.ErrNameTooLong,
		},
		{
			name:    "number out of range",
			player:  player.Player{ID: "7", TeamID: "t1", FirstName: "Rangi", LastName: "Parata", Number: 100},
			wantErr: player.ErrInvalidNumber,
		},
		{
			name:    "height out of range",
			player:  player.Player{ID: "8", TeamID: "t1", FirstName: "Rangi", LastName: "Parata", HeightCm: 90},
			wantErr: player.ErrInvalidHeight,
		},
		{
			name:    "weight out of range",
			player:  player.Player{ID: "9", TeamID: "t1", FirstName: "Rangi", LastName: "Parata", WeightKg: 250},
			wantErr: player.ErrInvalidWeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.player.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestPlayer_FullName tests the display name.
func TestPlayer_FullName(t *testing.T) {
	p := player.Player{FirstName: "Rangi", LastName: "Parata"}
	if got := p.FullName(); got != "Rangi Parata" {
		t.Errorf("FullName() = %q, want %q", got, "Rangi Parata")
	}
}
