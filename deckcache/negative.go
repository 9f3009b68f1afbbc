package deckcache

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/unkn0wn-root/snapdeck"
)

// failKind tags which snapdeck error kind a remembered failure carries.
// Only the kind is kept: the exact cause (e.g. the corrupt byte offset)
// belongs to the first caller, not to everyone replaying the memo.
type failKind uint8

const (
	failBase64 failKind = iota + 1
	failInvalidDeck
)

// classify maps a FromCode error to a memoizable kind. Anything else
// (e.g. ErrCodeTooLong never reaches here) is not remembered.
func classify(err error) (failKind, bool) {
	switch {
	case errors.Is(err, snapdeck.ErrDecoding):
		return failBase64, true
	case errors.Is(err, snapdeck.ErrInvalidDeck):
		return failInvalidDeck, true
	default:
		return 0, false
	}
}

func (k failKind) label() string {
	if k == failBase64 {
		return "base64"
	}
	return "invalid_deck"
}

// err rebuilds a caller-matchable error; errors.Is against the snapdeck
// kind still works on replays.
func (k failKind) err() error {
	if k == failBase64 {
		return fmt.Errorf("%w (remembered failure)", snapdeck.ErrDecoding)
	}
	return fmt.Errorf("%w (remembered failure)", snapdeck.ErrInvalidDeck)
}

type failEntry struct {
	Kind failKind
	At   time.Time
}

// negativeStore keeps failed codes in-process with a TTL and an optional
// sweep loop to prune expired entries.
type negativeStore struct {
	mu     sync.RWMutex
	fails  map[string]failEntry
	ticker *time.Ticker
	stopCh chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	ttl time.Duration
}

func newNegativeStore(ttl, sweepInterval time.Duration) *negativeStore {
	s := &negativeStore{
		fails: make(map[string]failEntry),
		ttl:   ttl,
	}
	if sweepInterval > 0 {
		s.ticker = time.NewTicker(sweepInterval)
		s.stopCh = make(chan struct{})
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for {
				select {
				case <-s.ticker.C:
					s.sweep()
				case <-s.stopCh:
					return
				}
			}
		}()
	}
	return s
}

func (s *negativeStore) remember(k string, kind failKind) {
	now := time.Now()
	s.mu.Lock()
	s.fails[k] = failEntry{Kind: kind, At: now}
	s.mu.Unlock()
}

// lookup checks freshness on read, so a stale entry is dead even if the
// sweep has not reached it yet.
func (s *negativeStore) lookup(k string) (failKind, bool) {
	s.mu.RLock()
	e, ok := s.fails[k]
	s.mu.RUnlock()
	if !ok || time.Since(e.At) > s.ttl {
		return 0, false
	}
	return e.Kind, true
}

func (s *negativeStore) forget(k string) {
	s.mu.Lock()
	delete(s.fails, k)
	s.mu.Unlock()
}

func (s *negativeStore) sweep() {
	cutoff := time.Now().Add(-s.ttl)

	s.mu.Lock()
	for k, e := range s.fails {
		if e.At.Before(cutoff) {
			delete(s.fails, k)
		}
	}
	s.mu.Unlock()
}

func (s *negativeStore) close() {
	s.once.Do(func() {
		if s.stopCh != nil {
			close(s.stopCh)
			if s.ticker != nil {
				s.ticker.Stop() // stop ticker before waiting
			}
			s.wg.Wait()
		}
	})
}
