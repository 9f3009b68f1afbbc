// Package bigcache adapts allegro/bigcache as a deckcache provider. A good
// fit for deck memoization: entries are uniform small blobs and a single
// LifeWindow for the whole keyspace is usually acceptable.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"
)

// defaultEntrySize is the shard sizing hint: a framed snapshot of a
// 12-card deck with a long display name runs about half a KiB.
const defaultEntrySize = 512

// Provider wraps a BigCache. Values pass through untouched; deckcache
// owns the wire framing.
type Provider struct {
	c *bc.BigCache
}

// Config is the subset of bigcache knobs that matter for deck entries.
// BigCache has no per-entry expiry: LifeWindow is the TTL for every entry
// and the TTL deckcache passes on Set is ignored by this backend.
type Config struct {
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	Shards             int // must be a power of two; 0 = bigcache default
	MaxEntriesInWindow int
	MaxEntrySize       int // shard sizing hint, not a cap; 0 = defaultEntrySize
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(cfg Config) (*Provider, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	conf.MaxEntrySize = defaultEntrySize
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.Shards > 0 {
		conf.Shards = cfg.Shards
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := p.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	return b, err == nil, err
}

// Set always reports ok: bigcache overwrites in place and evicts by age,
// never by rejecting a write.
func (p *Provider) Set(_ context.Context, key string, value []byte, _ int64, _ time.Duration) (bool, error) {
	return true, p.c.Set(key, value)
}

func (p *Provider) Del(_ context.Context, key string) error {
	return p.c.Delete(key)
}

func (p *Provider) Close(_ context.Context) error {
	return p.c.Close()
}
