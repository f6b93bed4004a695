package feedback

import (
	"errors"
	"time"
)

// Report represents a "report a problem" submission from the admin UI.
// Reports are mailed to the operator; they are never sent to the league API.
// INVARIANT: Reports never contain cookies, CSRF tokens, passwords, or tokens.
type Report struct {
	ID          string
	Summary     string
	Description string
	Route       string // page path at time of submission
	UserAgent   string
	Email       string // optional reply address
	SubmittedAt time.Time
}

// Domain errors
var (
	ErrEmptySummary     = errors.New("summary is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrSummaryTooLong   = errors.New("summary cannot exceed 150 characters")
)

// Validate checks that the required fields are present.
// PRE: none
// POST: returns error if Summary or Description is empty
func (r *Report) Validate() error {
	if r.Summary == "" {
		return ErrEmptySummary
	}
	if len(r.Summary) > 150 {
		return ErrSummaryTooLong
	}
	if r.Description == "" {
		return ErrEmptyDescription
	}
	return nil
}
