package team

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("team name cannot be empty")
	ErrNameTooLong   = errors.New("team name cannot exceed 100 characters")
	ErrCityTooLong   = errors.New("team city cannot exceed 100 characters")
	ErrAbbrevTooLong = errors.New("team abbreviation cannot exceed 5 characters")
	ErrEmptyLeagueID = errors.New("team must belong to a league")
)

// Team represents a team within a league.
type Team struct {
	ID         string
	LeagueID   string
	DivisionID string // empty when unassigned
	Name       string
	City       string
	Abbrev     string // scoreboard code, e.g. "BOS"
	LogoURL    string
	OwnerID    string // account ID of the creator; UI hint only
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks if the Team has valid data.
// PRE: Team struct is populated
// POST: Returns nil if valid, error otherwise
func (t *Team) Validate() error {
	if t.LeagueID == "" {
		return ErrEmptyLeagueID
	}
	if t.Name == "" {
		return ErrEmptyName
	}
	if len(t.Name) > 100 {
		return ErrNameTooLong
	}
	if len(t.City) > 100 {
		return ErrCityTooLong
	}
	if len(t.Abbrev) > 5 {
		return ErrAbbrevTooLong
	}
	return nil
}

// DisplayName returns "City Name" when a city is set, otherwise the name.
func (t *Team) DisplayName() string {
	if t.City == "" {
		return t.Name
	}
	return t.City + " " + t.Name
}

// OwnedBy reports whether the given account owns this team. UI affordance
// only; the server performs the authoritative check.
func (t *Team) OwnedBy(accountID string) bool {
	return accountID != "" && t.OwnerID == accountID
}

// EntityID identifies the team in list caches.
func (t Team) EntityID() string { return t.ID }

// EntityVersion orders concurrent updates in list caches.
func (t Team) EntityVersion() int64 { return t.UpdatedAt.UnixNano() }
