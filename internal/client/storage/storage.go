// Package storage owns the one piece of durable client state: the access
// token. Only auth operations write it.
package storage

import "context"

// TokenKey is the durable key the access token lives under.
const TokenKey = "accessToken"

// TokenStorage is the substitutable durable store for the session token.
// Get returns "" when no token is stored.
type TokenStorage interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Remove(ctx context.Context) error
}
