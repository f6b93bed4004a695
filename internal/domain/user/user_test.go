package user_test

import (
	"errors"
	"strings"
	"testing"

	"leaguedesk/internal/domain/user"
)

// TestNormalizeEmail tests address normalisation.
func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Pat@Example.COM", "pat@example.com"},
		{"  pat@example.com  ", "pat@example.com"},
		{"already@lower.nz", "already@lower.nz"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := user.NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestCredentials_ValidateLogin tests login validation.
func TestCredentials_ValidateLogin(t *testing.T) {
	tests := []struct {
		name    string
		creds   user.Credentials
		wantErr error
	}{
		{
			name:  "valid login",
			creds: user.Credentials{Email: "pat@example.com", Password: "secret"},
		},
		{
			name:    "empty email",
			creds:   user.Credentials{Password: "secret"},
			wantErr: user.ErrEmptyEmail,
		},
		{
			name:    "no at sign",
			creds:   user.Credentials{Email: "patexample.com", Password: "secret"},
			wantErr: user.ErrInvalidEmail,
		},
		{
			name:    "no dot in domain",
			creds:   user.Credentials{Email: "pat@localhost", Password: "secret"},
			wantErr: user.ErrInvalidEmail,
		},
		{
			name:    "empty password",
			creds:   user.Credentials{Email: "pat@example.com"},
			wantErr: user.ErrPasswordTooWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.ValidateLogin()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLogin() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// TestCredentials_ValidateRegistration tests registration validation,
// including the confirmation cross-field check.
func TestCredentials_ValidateRegistration(t *testing.T) {
	tests := []struct {
		name    string
		creds   user.Credentials
		wantErr error
	}{
		{
			name:  "valid registration",
			creds: user.Credentials{Email: "pat@example.com", Password: "longenough", PasswordConfirm: "longenough"},
		},
		{
			name:    "password too short",
			creds:   user.Credentials{Email: "pat@example.com", Password: "short", PasswordConfirm: "short"},
			wantErr: user.ErrPasswordTooWeak,
		},
		{
			name:    "password too long for bcrypt",
			creds:   user.Credentials{Email: "pat@example.com", Password: strings.Repeat("x", 73), PasswordConfirm: strings.Repeat("x", 73)},
			wantErr: user.ErrPasswordTooLong,
		},
		{
			name:    "confirmation mismatch",
			creds:   user.Credentials{Email: "pat@example.com", Password: "longenough", PasswordConfirm: "different1"},
			wantErr: user.ErrPasswordConfirm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.ValidateRegistration()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRegistration() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
