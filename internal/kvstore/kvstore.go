// Package kvstore provides the persistent key-value store backing the
// record collection and the login session. Values are opaque serialized
// strings; callers own the encoding.
package kvstore

import "context"

// Store is the contract consumed by the record repository and the
// session manager. A missing key is a normal result, not an error.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}
