// Package tokeninfo reads the claims of a backend access token cached in the
// user session. Signatures are not verified here: the backend does that on
// every request, the client only needs the claims for display and to notice
// an obviously stale token.
package tokeninfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed access token")

// Claims mirrors what the backend puts into its access tokens: the standard
// registered claims and the user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"UserID,omitempty"`
}

// Info is the readable part of an access token.
type Info struct {
	Subject   string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry before now. Tokens
// without an exp claim never expire by this check.
func (i *Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Inspect parses token without verifying its signature.
func Inspect(token string) (*Info, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	info := &Info{Subject: claims.Subject, UserID: claims.UserID}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
