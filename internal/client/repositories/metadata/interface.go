// Package metadata persists small key/value items in the client's local
// sqlite database. The session token lives here under a single well-known
// key and survives process restarts.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value, or nil if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Replace overwrites the value for key inside a transaction, so two
	// overlapping writers cannot interleave a partial delete/insert pair.
	Replace(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
