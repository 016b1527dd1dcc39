// Package token inspects bearer tokens issued by the remote service. The
// client never verifies signatures — only the service holds the secret — it
// just reads the claims it needs to label the session and notice expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// Claims carried by the service's access tokens.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Parse extracts claims from a bearer token without verifying its signature.
func Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// Expired reports whether the token carries an exp claim in the past.
// Tokens without an exp claim are treated as unexpired; the service will
// reject them if it disagrees.
func (c *Claims) Expired(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Before(now)
}
