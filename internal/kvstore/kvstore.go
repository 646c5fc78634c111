// Package kvstore provides the durable key-value boundary the record store
// is built on. Keys are opaque strings, values are serialized collections.
package kvstore

import "context"

// Store is a durable string key-value store. Implementations must make a
// completed Set visible to subsequent Gets and survive process restarts,
// except for the in-memory store used in tests.
type Store interface {
	// Get returns the value stored under key. ok is false when the key
	// is absent; err reports storage-level faults only.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the value stored under key in a single operation.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases any underlying resources.
	Close() error
}
