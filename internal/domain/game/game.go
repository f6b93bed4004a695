package game

import (
	"errors"
	"time"
)

// Game statuses
const (
	StatusScheduled = "scheduled"
	StatusFinal     = "final"
	StatusPostponed = "postponed"
	StatusCancelled = "cancelled"
)

// ValidStatuses contains all valid game statuses.
var ValidStatuses = []string{StatusScheduled, StatusFinal, StatusPostponed, StatusCancelled}

// Domain errors
var (
	ErrEmptySeasonID  = errors.New("game must belong to a season")
	ErrEmptyHomeTeam  = errors.New("game home team is required")
	ErrEmptyAwayTeam  = errors.New("game away team is required")
	ErrSameTeams      = errors.New("home and away teams must differ")
	ErrMissingTime    = errors.New("game scheduled time is required")
	ErrInvalidStatus  = errors.New("game status must be one of: scheduled, final, postponed, cancelled")
	ErrNegativeScore  = errors.New("game scores cannot be negative")
	ErrResultNotFinal = errors.New("game result can only be recorded on a final game")
)

// Game represents a scheduled or played game in a season.
type Game struct {
	ID          string
	SeasonID    string
	HomeTeamID  string
	AwayTeamID  string
	VenueID     string // empty when no venue assigned
	ScheduledAt time.Time
	Status      string
	HomeScore   int // meaningful only when Status is final
	AwayScore   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Result carries the final score recorded against a game.
type Result struct {
	GameID    string
	HomeScore int
	AwayScore int
}

// Validate checks if the Game has valid data.
// PRE: Game struct is populated
// POST: Returns nil if valid, error otherwise
func (g *Game) Validate() error {
	if g.SeasonID == "" {
		return ErrEmptySeasonID
	}
	if g.HomeTeamID == "" {
		return ErrEmptyHomeTeam
	}
	if g.AwayTeamID == "" {
		return ErrEmptyAwayTeam
	}
	if g.HomeTeamID == g.AwayTeamID {
		return ErrSameTeams
	}
	if g.ScheduledAt.IsZero() {
		return ErrMissingTime
	}
	if g.Status != "" && !isValidStatus(g.Status) {
		return ErrInvalidStatus
	}
	if g.HomeScore < 0 || g.AwayScore < 0 {
		return ErrNegativeScore
	}
	return nil
}

// Validate checks if the Result has valid data.
// PRE: Result struct is populated
// POST: Returns nil if valid, error otherwise
func (r *Result) Validate() error {
	if r.GameID == "" {
		return errors.New("result game id is required")
	}
	if r.HomeScore < 0 || r.AwayScore < 0 {
		return ErrNegativeScore
	}
	return nil
}

// IsFinal reports whether the game has a recorded result.
func (g *Game) IsFinal() bool { return g.Status == StatusFinal }

// EntityID identifies the game in list caches.
func (g Game) EntityID() string { return g.ID }

// EntityVersion orders concurrent updates in list caches.
func (g Game) EntityVersion() int64 { return g.UpdatedAt.UnixNano() }

func isValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
