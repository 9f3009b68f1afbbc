// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/snapdeck/deckcache"
//	"github.com/unkn0wn-root/snapdeck/hooks/async"
//	"github.com/unkn0wn-root/snapdeck/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    DecodeFailedEvery: 10, // sample logs: ~every 10th failed decode
//	    NegativeHitEvery:  1,  // log every negative-memo hit
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cache, _ := deckcache.New(deckcache.Options{
//	    Provider:    provider,
//	    NegativeTTL: time.Minute,
//	    Hooks:       hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/snapdeck/deckcache"
)

type Hooks struct {
	inner deckcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ deckcache.Hooks = (*Hooks)(nil)

func New(inner deckcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) SelfHeal(k, r string)     { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) SetRejected(k string)     { h.try(func() { h.inner.SetRejected(k) }) }
func (h *Hooks) DecodeFailed(kind string) { h.try(func() { h.inner.DecodeFailed(kind) }) }
func (h *Hooks) NegativeHit(k string)     { h.try(func() { h.inner.NegativeHit(k) }) }
