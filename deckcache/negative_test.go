package deckcache

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/unkn0wn-root/snapdeck"
)

func TestClassifyKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind failKind
		ok   bool
	}{
		{"base64", fmt.Errorf("%w: bad", snapdeck.ErrDecoding), failBase64, true},
		{"invalid_deck", fmt.Errorf("%w: bad", snapdeck.ErrInvalidDeck), failInvalidDeck, true},
		{"bare_sentinel", snapdeck.ErrDecoding, failBase64, true},
		{"unrelated", errors.New("boom"), 0, false},
		{"nil", nil, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, ok := classify(tc.err)
			if ok != tc.ok || kind != tc.kind {
				t.Fatalf("classify: got (%v,%v) want (%v,%v)", kind, ok, tc.kind, tc.ok)
			}
		})
	}
}

func TestFailKindErrMatchesSentinels(t *testing.T) {
	if err := failBase64.err(); !errors.Is(err, snapdeck.ErrDecoding) {
		t.Fatalf("failBase64: %v", err)
	}
	if err := failInvalidDeck.err(); !errors.Is(err, snapdeck.ErrInvalidDeck) {
		t.Fatalf("failInvalidDeck: %v", err)
	}
	// kinds stay distinct through the replay
	if errors.Is(failBase64.err(), snapdeck.ErrInvalidDeck) {
		t.Fatalf("kinds must not overlap")
	}
}

func TestNegativeRememberLookupForget(t *testing.T) {
	s := newNegativeStore(time.Minute, 0)
	t.Cleanup(s.close)

	if _, ok := s.lookup("k"); ok {
		t.Fatalf("lookup before remember should miss")
	}

	s.remember("k", failBase64)
	kind, ok := s.lookup("k")
	if !ok || kind != failBase64 {
		t.Fatalf("lookup: got (%v,%v) want (failBase64,true)", kind, ok)
	}

	// latest failure wins
	s.remember("k", failInvalidDeck)
	if kind, _ := s.lookup("k"); kind != failInvalidDeck {
		t.Fatalf("overwrite: got %v", kind)
	}

	s.forget("k")
	if _, ok := s.lookup("k"); ok {
		t.Fatalf("lookup after forget should miss")
	}
}

func TestNegativeLookupExpires(t *testing.T) {
	s := newNegativeStore(time.Second, 0) // no sweep; freshness on read
	t.Cleanup(s.close)

	s.remember("old", failBase64)
	time.Sleep(1200 * time.Millisecond)

	if _, ok := s.lookup("old"); ok {
		t.Fatalf("expired entry served")
	}
}

func TestNegativeSweepPrunes(t *testing.T) {
	s := newNegativeStore(time.Second, 0)
	t.Cleanup(s.close)

	s.remember("old", failBase64)
	time.Sleep(1200 * time.Millisecond)
	s.sweep()

	s.mu.RLock()
	n := len(s.fails)
	s.mu.RUnlock()
	if n != 0 {
		t.Fatalf("expected pruned map, got %d entries", n)
	}
}

func TestNegativeCloseIdempotent(t *testing.T) {
	s := newNegativeStore(time.Minute, 10*time.Millisecond)
	s.close()
	s.close() // second close must not panic or deadlock
}
