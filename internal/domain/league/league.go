package league

import (
	"errors"
	"time"
)

// Sports recognised by the app. The API stores the value verbatim; these are
// the options offered in the league form.
const (
	SportBasketball = "basketball"
	SportFootball   = "football"
	SportHockey     = "hockey"
	SportSoccer     = "soccer"
	SportVolleyball = "volleyball"
	SportOther      = "other"
)

// ValidSports contains all valid sport values.
var ValidSports = []string{SportBasketball, SportFootball, SportHockey, SportSoccer, SportVolleyball, SportOther}

// Domain errors
var (
	ErrEmptyName       = errors.New("league name cannot be empty")
	ErrNameTooLong     = errors.New("league name cannot exceed 100 characters")
	ErrAbbrevTooLong   = errors.New("league abbreviation cannot exceed 10 characters")
	ErrInvalidSport    = errors.New("league sport must be one of: basketball, football, hockey, soccer, volleyball, other")
	ErrDescriptionSize = errors.New("league description cannot exceed 2000 characters")
)

// League represents a league as served by the remote API.
type League struct {
	ID          string
	Name        string
	Abbrev      string // short display code, e.g. "NPBL"
	Sport       string
	Description string
	OwnerID     string // account ID of the creator; UI hint only, server enforces
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks if the League has valid data.
// PRE: League struct is populated
// POST: Returns nil if valid, error otherwise
func (l *League) Validate() error {
	if l.Name == "" {
		return ErrEmptyName
	}
	if len(l.Name) > 100 {
		return ErrNameTooLong
	}
	if len(l.Abbrev) > 10 {
		return ErrAbbrevTooLong
	}
	if l.Sport != "" && !isValidSport(l.Sport) {
		return ErrInvalidSport
	}
	if len(l.Description) > 2000 {
		return ErrDescriptionSize
	}
	return nil
}

// OwnedBy reports whether the given account owns this league. This is a UI
// affordance check only; the server performs the authoritative check.
func (l *League) OwnedBy(accountID string) bool {
	return accountID != "" && l.OwnerID == accountID
}

// EntityID identifies the league in list caches.
func (l League) EntityID() string { return l.ID }

// EntityVersion orders concurrent updates in list caches.
func (l League) EntityVersion() int64 { return l.UpdatedAt.UnixNano() }

func isValidSport(s string) bool {
	for _, v := range ValidSports {
		if s == v {
			return true
		}
	}
	return false
}
