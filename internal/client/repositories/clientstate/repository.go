// Package clientstate persists small key/value records the console keeps
// between runs (the session token and its bookkeeping).
package clientstate

import "context"

// Repository is a durable key/value store. Get returns (nil, nil) for a
// missing key; Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
