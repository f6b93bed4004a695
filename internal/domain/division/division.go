package division

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("division name cannot be empty")
	ErrNameTooLong   = errors.New("division name cannot exceed 100 characters")
	ErrEmptyLeagueID = errors.New("division must belong to a league")
)

// Division groups teams within a league, optionally under a conference
// (e.g. "Atlantic Division").
type Division struct {
	ID           string
	LeagueID     string
	ConferenceID string // empty when the league has no conferences
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks if the Division has valid data.
// PRE: Division struct is populated
// POST: Returns nil if valid, error otherwise
func (d *Division) Validate() error {
	if d.LeagueID == "" {
		return ErrEmptyLeagueID
	}
	if d.Name == "" {
		return ErrEmptyName
	}
	if len(d.Name) > 100 {
		return ErrNameTooLong
	}
	return nil
}

// EntityID identifies the division in list caches.
func (d Division) EntityID() string { return d.ID }

// EntityVersion orders concurrent updates in list caches.
func (d Division) EntityVersion() int64 { return d.UpdatedAt.UnixNano() }
