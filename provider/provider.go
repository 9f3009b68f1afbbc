// Package provider defines the byte store deckcache memoizes into.
//
// Implementations must be byte-for-byte transparent: Get returns exactly
// the []byte a Set stored under that key, with no added metadata and no
// re-encoding. A store that transforms internally (compression, say) must
// hand back the original bytes.
//
// The keyspace "deck:<ns>:" belongs to deckcache. Foreign writes under it
// fail wire validation on read and get deleted as corrupt.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs, safe for concurrent use.
// Entries are opaque framed snapshots; the store returns them unmodified
// or not at all.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// IO errors come back as (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. cost is the framed entry size;
	// stores without cost accounting ignore it. ok=false means the write
	// was rejected under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}
