package user

import (
	"errors"
	"strings"
	"time"
)

// Roles as reported by the API's access-token claims.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Domain errors
var (
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrInvalidEmail    = errors.New("email address is not valid")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong = errors.New("password cannot exceed 72 characters")
	ErrPasswordConfirm = errors.New("password confirmation does not match")
)

// User represents the signed-in account as reported by the API.
type User struct {
	ID        string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Credentials carries a login or registration submission.
type Credentials struct {
	Email           string
	Password        string
	PasswordConfirm string // registration only
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// The API treats addresses case-insensitively; normalising before the call
// keeps "USER@EX.com" and "user@ex.com" the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateLogin checks credentials for a login submission.
// PRE: Email has been normalised
// POST: Returns nil if valid, error otherwise
func (c *Credentials) ValidateLogin() error {
	if c.Email == "" {
		return ErrEmptyEmail
	}
	if !looksLikeEmail(c.Email) {
		return ErrInvalidEmail
	}
	if c.Password == "" {
		return ErrPasswordTooWeak
	}
	return nil
}

// ValidateRegistration checks credentials for a registration submission,
// including the confirmation cross-field check.
// PRE: Email has been normalised
// POST: Returns nil if valid, error otherwise
func (c *Credentials) ValidateRegistration() error {
	if c.Email == "" {
		return ErrEmptyEmail
	}
	if !looksLikeEmail(c.Email) {
		return ErrInvalidEmail
	}
	if len(c.Password) < 8 {
		return ErrPasswordTooWeak
	}
	if len(c.Password) > 72 {
		return ErrPasswordTooLong
	}
	if c.Password != c.PasswordConfirm {
		return ErrPasswordConfirm
	}
	return nil
}

// looksLikeEmail is a shallow shape check; the API owns real validation.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at < 1 || at == len(s)-1 {
		return false
	}
	return strings.Contains(s[at+1:], ".")
}
