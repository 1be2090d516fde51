// Package session derives authorization facts from the stored access token.
// The signature is not checked here: the server verifies it on every call;
// the client only needs the role and expiry to decide what to show.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmptyToken = errors.New("empty token")
	ErrMalformed  = errors.New("malformed token")
	ErrExpired    = errors.New("token expired")
	ErrNoExpiry   = errors.New("token has no expiry")
)

// Claims are the access-token claims the console relies on.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Decode parses the token payload without verifying its signature.
func Decode(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return claims, nil
}

// Role returns the role claim of a token that is still valid at now.
func Role(token string, now time.Time) (string, error) {
	claims, err := Decode(token)
	if err != nil {
		return "", err
	}
	if claims.ExpiresAt == nil {
		return "", ErrNoExpiry
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return "", ErrExpired
	}
	return claims.Role, nil
}
