package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// accessClaims mirrors the claims the league API puts in its access tokens.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IdentityFromToken parses the access token WITHOUT verifying its signature
// and extracts the identity claims. The result is a UI hint (ownership
// checks in templates, the avatar menu) and never an authorization
// decision; the API verifies the token on every call.
func IdentityFromToken(token string) Identity {
	if token == "" {
		return Identity{}
	}
	var claims accessClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return Identity{}
	}
	return Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}
}
