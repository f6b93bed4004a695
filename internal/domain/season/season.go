package season

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("season name cannot be empty")
	ErrNameTooLong   = errors.New("season name cannot exceed 100 characters")
	ErrEmptyLeagueID = errors.New("season must belong to a league")
	ErrMissingDates  = errors.New("season start and end dates are required")
	ErrDateOrder     = errors.New("season end date must be after the start date")
)

// Season represents a playing season within a league (e.g. "2026 Winter").
type Season struct {
	ID        string
	LeagueID  string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Current   bool // at most one current season per league, enforced server-side
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks if the Season has valid data.
// PRE: Season struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Season) Validate() error {
	if s.LeagueID == "" {
		return ErrEmptyLeagueID
	}
	if s.Name == "" {
		return ErrEmptyName
	}
	if len(s.Name) > 100 {
		return ErrNameTooLong
	}
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return ErrMissingDates
	}
	if !s.EndDate.After(s.StartDate) {
		return ErrDateOrder
	}
	return nil
}

// Contains reports whether the given time falls within the season window.
func (s *Season) Contains(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}

// EntityID identifies the season in list caches.
func (s Season) EntityID() string { return s.ID }

// EntityVersion orders concurrent updates in list caches.
func (s Season) EntityVersion() int64 { return s.UpdatedAt.UnixNano() }
