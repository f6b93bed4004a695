package venue_test

import (
	"errors"
	"strings"
	"testing"

	"leaguedesk/internal/domain/venue"
)

// TestVenue_Validate tests validation of Venue.
func TestVenue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		venue   venue.Venue
		wantErr error
	}{
		{
			name:  "valid venue",
			venue: venue.Venue{ID: "1", LeagueID: "l1", Name: "Bayview Stadium", Address: "1 Harbour Rd", City: "Bayview", Capacity: 4500},
		},
		{
			name:  "capacity optional",
			venue: venue.Venue{ID: "2", LeagueID: "l1", Name: "Community Court"},
		},
		{
			name:    "missing league",
			venue:   venue.Venue{ID: "3", Name: "Bayview Stadium"},
			wantErr: venue.ErrEmptyLeagueID,
		},
		{
			name:    "empty name",
			venue:   venue.Venue{ID: "4", LeagueID: "l1"},
			wantErr: venue.ErrEmptyName,
		},
		{
			name:    "name too long",
			venue:   venue.Venue{ID: "5", LeagueID: "l1", Name: strings.Repeat("x", 101)},
			wantErr: venue.ErrNameTooLong,
		},
		{
			name:    "address too long",
			venue:   venue.Venue{ID: "6", LeagueID: "l1", Name: "ok", Address: strings.Repeat("x", 201)},
			wantErr: venue.ErrAddressTooLong,
		},
		{
			name:    "capacity out of range",
			venue:   venue.Venue{ID: "7", LeagueID: "l1", Name: "ok", Capacity: 200001},
			wantErr: venue.ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.venue.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
