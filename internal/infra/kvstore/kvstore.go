// Package kvstore implements the persistent key-value adapter backing the
// cart, session flag and store-config blobs. Reads fall back to a default on
// miss or on an undecodable value; writes are best-effort and never fail the
// caller, leaving in-memory state authoritative for the session.
package kvstore

import "context"

// Keys in use across the application. The key set is assumed small; there is
// no eviction.
const (
	KeyCart            = "cart"
	KeyIsAuthenticated = "isAuthenticated"
	KeyStoreConfig     = "storeConfig"
)

// Store persists named JSON blobs.
type Store interface {
	// Get decodes the value stored under key into dest and reports whether
	// a decodable value was present. On a miss or a decode failure dest is
	// left untouched.
	Get(ctx context.Context, key string, dest any) bool

	// Set serializes value and persists it under key. Storage failures are
	// logged and swallowed.
	Set(ctx context.Context, key string, value any)
}

// GetOr returns the value stored under key, or def when absent or
// undecodable.
func GetOr[T any](ctx context.Context, store Store, key string, def T) T {
	value := def
	if store.Get(ctx, key, &value) {
		return value
	}

	return def
}
