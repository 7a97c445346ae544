package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lifehub/internal/common"
)

// Claims is the subset of token claims the client reads. The token signature
// is never verified client-side; trust is delegated to the issuing server,
// which validates the token on every request anyway.
type Claims struct {
	// Subject identifies the logged-in user (the server puts the user id here).
	Subject string

	// ExpiresAt is the decoded exp claim. Zero when the token carries none;
	// such tokens are treated as non-expiring by the client.
	ExpiresAt time.Time
}

// DecodeClaims extracts claims from a token without signature verification.
// A token that cannot be decoded returns common.ErrInvalidToken and must be
// treated identically to "no token".
func DecodeClaims(tokenString string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, mc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	c := &Claims{}

	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}

	exp, err := mc.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if exp != nil {
		c.ExpiresAt = exp.Time
	}

	return c, nil
}
