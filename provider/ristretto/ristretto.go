// Package ristretto adapts dgraph-io/ristretto as a deckcache provider.
// Pick it over bigcache when you want per-entry TTLs (deck vs negative
// entries age differently) or admission under a hard memory budget.
package ristretto

import (
	"context"
	"errors"
	"time"

	rc "github.com/dgraph-io/ristretto"
)

// avgEntryCost approximates one framed deck snapshot; it seeds the
// NumCounters derivation when the caller only sets MaxCost.
const avgEntryCost = 512

// Provider wraps a ristretto.Cache. Cost per entry is the framed byte
// length (deckcache passes it on Set), so MaxCost bounds stored bytes.
type Provider struct {
	c *rc.Cache
}

type Config struct {
	// MaxCost bounds total stored bytes. Required.
	MaxCost int64
	// NumCounters sizes admission tracking. 0 derives it from MaxCost
	// (ristretto wants ~10x the expected entry count).
	NumCounters int64
	// BufferItems is the Get buffer size. 0 means ristretto's
	// recommended 64.
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.MaxCost <= 0 {
		return nil, errors.New("ristretto: MaxCost is required")
	}
	counters := cfg.NumCounters
	if counters <= 0 {
		counters = cfg.MaxCost / avgEntryCost * 10
		if counters < 1<<10 {
			counters = 1 << 10
		}
	}
	buf := cfg.BufferItems
	if buf <= 0 {
		buf = 64
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: counters,
		MaxCost:     cfg.MaxCost,
		BufferItems: buf,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

// Set reports ok=false when ristretto's admission policy drops the write;
// deckcache treats that as pressure, not an error.
func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	return p.c.SetWithTTL(key, value, cost, ttl), nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes the underlying counters when Config.Metrics is on.
// Not part of provider.Provider.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
