package deckcache

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The cache calls them on hot paths.
type Hooks interface {
	// A stored entry was deleted by the cache on read.
	// reason ∈ {"corrupt", "snapshot_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	SetRejected(storageKey string)

	// A fresh decode failed. kind ∈ {"base64", "invalid_deck"}.
	// Fires once per fresh failure; replays from the negative memo
	// fire NegativeHit instead.
	DecodeFailed(kind string)

	// A failed code was answered from the negative memo.
	NegativeHit(storageKey string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string) {}
func (NopHooks) SetRejected(string)      {}
func (NopHooks) DecodeFailed(string)     {}
func (NopHooks) NegativeHit(string)      {}
