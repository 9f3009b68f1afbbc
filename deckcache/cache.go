package deckcache

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/snapdeck"
	"github.com/unkn0wn-root/snapdeck/codec"
	"github.com/unkn0wn-root/snapdeck/internal/util"
	"github.com/unkn0wn-root/snapdeck/internal/wire"
	"github.com/unkn0wn-root/snapdeck/provider"
)

const (
	defaultTTL   = 15 * time.Minute
	defaultSweep = 10 * time.Minute
)

type cache struct {
	ns         string
	provider   provider.Provider
	codec      codec.Codec[snapdeck.Snapshot]
	log        snapdeck.Logger
	hooks      Hooks
	enabled    bool
	ttl        time.Duration
	maxCodeLen int
	negative   *negativeStore
}

func newCache(opts Options) (*cache, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("deckcache: provider is required")
	}

	c := &cache{
		provider:   opts.Provider,
		enabled:    !opts.Disabled,
		maxCodeLen: opts.MaxCodeLen,
	}

	// defaults
	c.ns = coalesce(opts.Namespace, "deck")
	c.log = coalesce[snapdeck.Logger](opts.Logger, snapdeck.NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	c.ttl = coalesce(opts.TTL, defaultTTL)

	c.codec = opts.Codec
	if c.codec == nil {
		c.codec = codec.JSONCodec[snapdeck.Snapshot]{}
	}
	if opts.MaxEntryBytes > 0 {
		c.codec = codec.LimitCodec[snapdeck.Snapshot]{Inner: c.codec, MaxDecode: opts.MaxEntryBytes}
	}

	if opts.NegativeTTL > 0 {
		sweep := coalesce(opts.SweepInterval, defaultSweep)
		c.negative = newNegativeStore(opts.NegativeTTL, sweep)
	}

	return c, nil
}

func (c *cache) Enabled() bool { return c.enabled }

func (c *cache) Close(ctx context.Context) error {
	// Stop the negative sweep first (best effort)
	if c.negative != nil {
		c.negative.close()
	}
	if c.provider != nil {
		return c.provider.Close(ctx)
	}
	return nil
}

func (c *cache) Decode(ctx context.Context, code string) (*snapdeck.DeckList, bool, error) {
	if !c.enabled {
		d, err := snapdeck.FromCode(code)
		return d, false, err
	}
	if c.maxCodeLen > 0 && len(code) > c.maxCodeLen {
		return nil, false, ErrCodeTooLong
	}

	k := c.storageKey(code)

	if c.negative != nil {
		if kind, ok := c.negative.lookup(k); ok {
			c.hooks.NegativeHit(k)
			return nil, true, kind.err()
		}
	}

	raw, ok, err := c.provider.Get(ctx, k)
	if err != nil {
		// store trouble; fall through to a direct decode (the write-back
		// below is best effort and may fail the same way)
		c.log.Warn("provider get error", snapdeck.Fields{"key": k, "err": err})
	} else if ok {
		if d, ok := c.fromEntry(ctx, k, raw); ok {
			return d, true, nil
		}
		// entry was corrupt and has been dropped; fall through to decode
	}

	d, err := snapdeck.FromCode(code)
	if err != nil {
		c.noteFailure(k, err)
		return nil, false, err
	}

	c.store(ctx, k, d)
	return d, false, nil
}

// fromEntry unpacks a stored entry. On any validation failure it deletes
// the entry and reports a self-heal, so the next Decode re-derives it.
func (c *cache) fromEntry(ctx context.Context, k string, raw []byte) (*snapdeck.DeckList, bool) {
	payload, err := wire.DecodeEntry(raw)
	if err != nil {
		_ = c.provider.Del(ctx, k) // self-heal corrupt
		c.hooks.SelfHeal(k, "corrupt")
		return nil, false
	}
	snap, err := c.codec.Decode(payload)
	if err != nil {
		_ = c.provider.Del(ctx, k) // self-heal
		c.hooks.SelfHeal(k, "snapshot_decode")
		return nil, false
	}
	return snapdeck.FromSnapshot(snap), true
}

func (c *cache) store(ctx context.Context, k string, d *snapdeck.DeckList) {
	payload, err := c.codec.Encode(d.Snapshot())
	if err != nil {
		// decoded fine but won't memoize; next Decode pays again
		c.log.Warn("snapshot encode error", snapdeck.Fields{"key": k, "err": err})
		return
	}
	entry := wire.EncodeEntry(payload)
	ok, err := c.provider.Set(ctx, k, entry, int64(len(entry)), c.ttl)
	if err != nil {
		c.log.Warn("provider set error", snapdeck.Fields{"key": k, "err": err})
		return
	}
	if !ok {
		c.hooks.SetRejected(k)
		c.log.Debug("Set rejected by provider (pressure)", snapdeck.Fields{"key": k})
	}
}

// noteFailure classifies a FromCode error and, when the negative memo is
// on, remembers it under the same key the positive entry would use.
func (c *cache) noteFailure(k string, err error) {
	kind, ok := classify(err)
	if !ok {
		return
	}
	c.hooks.DecodeFailed(kind.label())
	if c.negative != nil {
		c.negative.remember(k, kind)
	}
}

func (c *cache) Invalidate(ctx context.Context, code string) error {
	if !c.enabled {
		return nil
	}
	k := c.storageKey(code)
	if c.negative != nil {
		c.negative.forget(k)
	}
	err := c.provider.Del(ctx, k)
	if err == nil {
		c.log.Debug("invalidated code (cleared entry + negative memo)", snapdeck.Fields{"key": k})
	}
	return err
}

func (c *cache) storageKey(code string) string {
	// isolate by namespace
	return util.CodeKey("deck:"+c.ns, code)
}
