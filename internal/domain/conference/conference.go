package conference

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("conference name cannot be empty")
	ErrNameTooLong   = errors.New("conference name cannot exceed 100 characters")
	ErrEmptyLeagueID = errors.New("conference must belong to a league")
)

// Conference groups divisions within a league (e.g. "Eastern Conference").
type Conference struct {
	ID        string
	LeagueID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks if the Conference has valid data.
// PRE: Conference struct is populated
// POST: Returns nil if valid, error otherwise
func (c *Conference) Validate() error {
	if c.LeagueID == "" {
		return ErrEmptyLeagueID
	}
	if c.Name == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 100 {
		return ErrNameTooLong
	}
	return nil
}

// EntityID identifies the conference in list caches.
func (c Conference) EntityID() string { return c.ID }

// EntityVersion orders concurrent updates in list caches.
func (c Conference) EntityVersion() int64 { return c.UpdatedAt.UnixNano() }
