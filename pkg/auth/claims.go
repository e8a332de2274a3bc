package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenClaims represents the bearer token presented by signed-in shoppers.
// The subject carries the user id.
type AccessTokenClaims struct {
	jwt.RegisteredClaims
}

// UserID returns the authenticated user identifier.
func (c *AccessTokenClaims) UserID() string {
	if c == nil {
		return ""
	}
	return c.Subject
}
