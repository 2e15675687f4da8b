// Package registry defines the named-store abstraction used by cacheagent.
//
// A Registry is a collection of independently deletable byte stores
// addressed by name; the agent keeps one store per generation and deletes
// every other name during activation. Implementations MUST be byte-for-byte
// transparent: Get must return exactly the same []byte that was previously
// passed to Set for a key (no prepended/appended metadata, no re-encoding,
// no mutation). If a backend performs internal transforms (e.g.,
// compression), they MUST be fully reversed so that the bytes returned by
// Get are identical to the bytes provided to Set.
package registry

import "context"

// Registry is a collection of named byte stores. Must be safe for
// concurrent use.
type Registry interface {
	// Open returns the store for name, creating it when absent.
	Open(ctx context.Context, name string) (Store, error)

	// Names lists every store currently present.
	Names(ctx context.Context) ([]string, error)

	// Delete removes a store and all of its entries. Deleting an absent
	// name returns (false, nil).
	Delete(ctx context.Context, name string) (bool, error)

	// Close releases resources.
	Close(ctx context.Context) error
}

// Store is a minimal byte store keyed by request identity. Must be safe for
// concurrent use. A Store obtained from a Registry becomes invalid once its
// name is deleted.
type Store interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/backend errors are returned as (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error
}
