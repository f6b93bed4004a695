package news

import (
	"errors"
	"time"
)

// News statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatuses contains all valid news statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished}

// Domain errors
var (
	ErrEmptyTitle    = errors.New("news title cannot be empty")
	ErrTitleTooLong  = errors.New("news title cannot exceed 150 characters")
	ErrEmptyBody     = errors.New("news body cannot be empty")
	ErrBodyTooLong   = errors.New("news body cannot exceed 20000 characters")
	ErrEmptyLeagueID = errors.New("news post must belong to a league")
	ErrInvalidStatus = errors.New("news status must be one of: draft, published")
)

// Post represents a league news post. Body supports Markdown formatting.
type Post struct {
	ID          string
	LeagueID    string
	Title       string
	Body        string // Markdown content
	Status      string
	AuthorID    string // account ID of the author; UI hint only
	AuthorName  string
	PublishedAt time.Time // zero while draft
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks if the Post has valid data.
// PRE: Post struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Post) Validate() error {
	if p.LeagueID == "" {
		return ErrEmptyLeagueID
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if len(p.Title) > 150 {
		return ErrTitleTooLong
	}
	if p.Body == "" {
		return ErrEmptyBody
	}
	if len(p.Body) > 20000 {
		return ErrBodyTooLong
	}
	if p.Status != "" && p.Status != StatusDraft && p.Status != StatusPublished {
		return ErrInvalidStatus
	}
	return nil
}

// IsPublished reports whether the post is publicly visible.
func (p *Post) IsPublished() bool { return p.Status == StatusPublished }

// OwnedBy reports whether the given account authored this post. UI affordance
// only; the server performs the authoritative check.
func (p *Post) OwnedBy(accountID string) bool {
	return accountID != "" && p.AuthorID == accountID
}

// EntityID identifies the post in list caches.
func (p Post) EntityID() string { return p.ID }

// EntityVersion orders concurrent updates in list caches.
func (p Post) EntityVersion() int64 { return p.UpdatedAt.UnixNano() }
