package venue

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyName       = errors.New("venue name cannot be empty")
	ErrNameTooLong     = errors.New("venue name cannot exceed 100 characters")
	ErrAddressTooLong  = errors.New("venue address cannot exceed 200 characters")
	ErrEmptyLeagueID   = errors.New("venue must belong to a league")
	ErrInvalidCapacity = errors.New("venue capacity must be between 0 and 200000")
)

// Venue represents a playing venue registered to a league.
type Venue struct {
	ID        string
	LeagueID  string
	Name      string
	Address   string
	City      string
	Capacity  int // 0 = unknown
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks if the Venue has valid data.
// PRE: Venue struct is populated
// POST: Returns nil if valid, error otherwise
func (v *Venue) Validate() error {
	if v.LeagueID == "" {
		return ErrEmptyLeagueID
	}
	if v.Name == "" {
		return ErrEmptyName
	}
	if len(v.Name) > 100 {
		return ErrNameTooLong
	}
	if len(v.Address) > 200 {
		return ErrAddressTooLong
	}
	if v.Capacity < 0 || v.Capacity > 200000 {
		return ErrInvalidCapacity
	}
	return nil
}

// EntityID identifies the venue in list caches.
func (v Venue) EntityID() string { return v.ID }

// EntityVersion orders concurrent updates in list caches.
func (v Venue) EntityVersion() int64 { return v.UpdatedAt.UnixNano() }
