// Package deckcache memoizes share-code decoding. Hosts that render the
// same pasted codes over and over (deck galleries, tournament brackets)
// put this in front of snapdeck.FromCode: decoded decks are stored as
// snapshots in a pluggable Provider, and codes that already failed can be
// remembered for a while so repeated garbage input stays cheap.
//
// Decoding a code is deterministic, so entries never go stale; TTLs exist
// only to bound memory.
package deckcache

import (
	"context"
	"errors"
	"time"

	"github.com/unkn0wn-root/snapdeck"
	"github.com/unkn0wn-root/snapdeck/codec"
	"github.com/unkn0wn-root/snapdeck/provider"
)

// ErrCodeTooLong is returned by Decode when the input exceeds
// Options.MaxCodeLen. The codec itself accepts any length; the cap only
// guards hosts that feed untrusted input through the cache.
var ErrCodeTooLong = errors.New("deckcache: code exceeds MaxCodeLen")

// Cache is the memoizing decoder. All methods are safe for concurrent use.
type Cache interface {
	// Decode behaves like snapdeck.FromCode with memoization. cached
	// reports whether the result came from the store rather than a fresh
	// decode. Errors keep the snapdeck kinds (ErrDecoding,
	// ErrInvalidDeck), whether fresh or remembered.
	Decode(ctx context.Context, code string) (list *snapdeck.DeckList, cached bool, err error)

	// Invalidate drops any stored result (positive or negative) for code.
	Invalidate(ctx context.Context, code string) error

	Enabled() bool
	Close(context.Context) error
}

// Options tune the cache. Only Provider is required; others have
// sensible defaults.
type Options struct {
	// Required
	Provider provider.Provider

	Codec  codec.Codec[snapdeck.Snapshot] // nil => codec.JSONCodec
	Logger snapdeck.Logger                // nil => NopLogger
	Hooks  Hooks                          // nil => NopHooks

	Namespace     string        // "" => "deck"
	TTL           time.Duration // positive entries; 0 => 15m
	NegativeTTL   time.Duration // remembered failures; 0 => negative memo disabled
	SweepInterval time.Duration // negative memo sweep; 0 => 10m

	MaxCodeLen    int  // reject longer inputs before any work; 0 => no cap
	MaxEntryBytes int  // wrap Codec in codec.LimitCodec; 0 => no cap
	Disabled      bool // default false (enabled)
}

func New(opts Options) (Cache, error) {
	return newCache(opts)
}
