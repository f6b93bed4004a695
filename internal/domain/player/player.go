package player

import (
	"errors"
	"time"
)

// Positions are free-form in the API; these are the options offered in the
// player form for the common sports.
const (
	PositionGuard   = "guard"
	PositionForward = "forward"
	PositionCenter  = "center"
	PositionKeeper  = "keeper"
	PositionOther   = "other"
)

// ValidPositions lists the options in form order.
var ValidPositions = []string{
	PositionGuard,
	PositionForward,
	PositionCenter,
	PositionKeeper,
	PositionOther,
}

// Domain errors
var (
	ErrEmptyFirstName = errors.New("player first name cannot be empty")
	ErrEmptyLastName  = errors.New("player last name cannot be empty")
	ErrNameTooLong    = errors.New("player names cannot exceed 50 characters")
	ErrInvalidNumber  = errors.New("player number must be between 0 and 99")
	ErrEmptyTeamID    = errors.New("player must belong to a team")
	ErrInvalidHeight  = errors.New("player height must be between 100 and 250 cm")
	ErrInvalidWeight  = errors.New("player weight must be between 30 and 200 kg")
)

// Player represents a rostered player.
type Player struct {
	ID        string
	TeamID    string
	FirstName string
	LastName  string
	Number    int // jersey number, 0-99
	Position  string
	HeightCm  int // 0 = unknown
	WeightKg  int // 0 = unknown
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks if the Player has valid data.
// PRE: Player struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Player) Validate() error {
	if p.TeamID == "" {
		return ErrEmptyTeamID
	}
	if p.FirstName == "" {
		return ErrEmptyFirstName
	}
	if p.LastName == "" {
		return ErrEmptyLastName
	}
	if len(p.FirstName) > 50 || len(p.LastName) > 50 {
		return ErrNameTooLong
	}
	if p.Number < 0 || p.Number > 99 {
		return ErrInvalidNumber
	}
	if p.HeightCm != 0 && (p.HeightCm < 100 || p.HeightCm > 250) {
		return ErrInvalidHeight
	}
	if p.WeightKg != 0 && (p.WeightKg < 30 || p.WeightKg > 200) {
		return ErrInvalidWeight
	}
	return nil
}

// FullName returns "First Last".
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// EntityID identifies the player in list caches.
func (p Player) EntityID() string { return p.ID }

// EntityVersion orders concurrent updates in list caches.
func (p Player) EntityVersion() int64 { return p.UpdatedAt.UnixNano() }
