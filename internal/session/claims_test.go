package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, sub, email, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

// TestIdentityFromToken_ExtractsClaims verifies the sub/email/role claims
// come through. The signature is not checked; the key here is arbitrary.
func TestIdentityFromToken_ExtractsClaims(t *testing.T) {
	tok := signedToken(t, "user-42", "pat@example.com", "admin")

	id := IdentityFromToken(tok)
	if id.UserID != "user-42" {
		t.Errorf("UserID = %q, want user-42", id.UserID)
	}
	if id.Email != "pat@example.com" {
		t.Errorf("Email = %q, want pat@example.com", id.Email)
	}
	if id.Role != "admin" {
		t.Errorf("Role = %q, want admin", id.Role)
	}
}

// TestIdentityFromToken_MalformedYieldsZero verifies garbage tokens produce
// an empty identity instead of an error path.
func TestIdentityFromToken_MalformedYieldsZero(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if id := IdentityFromToken(tok); id != (Identity{}) {
			t.Errorf("IdentityFromToken(%q) = %+v, want zero", tok, id)
		}
	}
}
