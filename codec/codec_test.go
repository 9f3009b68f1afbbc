package codec

import (
	"bytes"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/snapdeck"
)

var testSnap = snapdeck.Snapshot{
	Name:  "Thanos",
	Cards: []string{"AntMan", "Agent13", "Thanos"},
}

func equalSnap(a, b snapdeck.Snapshot) bool {
	if a.Name != b.Name || len(a.Cards) != len(b.Cards) {
		return false
	}
	for i := range a.Cards {
		if a.Cards[i] != b.Cards[i] {
			return false
		}
	}
	return true
}

// ==============================
// Snapshot round-trips
// ==============================

func TestSnapshotRoundTrips(t *testing.T) {
	codecs := []struct {
		name string
		c    Codec[snapdeck.Snapshot]
	}{
		{"json", JSONCodec[snapdeck.Snapshot]{}},
		{"cbor", MustCBOR[snapdeck.Snapshot](false)},
		{"cbor_deterministic", MustCBOR[snapdeck.Snapshot](true)},
		{"msgpack", Msgpack[snapdeck.Snapshot]{}},
	}
	for _, tc := range codecs {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.c.Encode(testSnap)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := tc.c.Decode(b)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !equalSnap(got, testSnap) {
				t.Fatalf("round-trip: got %+v want %+v", got, testSnap)
			}
		})
	}
}

func TestCBORDeterministicStableBytes(t *testing.T) {
	c := MustCBOR[snapdeck.Snapshot](true)
	a, err := c.Encode(testSnap)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := c.Encode(testSnap)
	if err != nil {
		t.Fatalf("Encode (again): %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("deterministic encoding differs: %x vs %x", a, b)
	}
}

// ==============================
// Decode size limiting
// ==============================

func TestLimitCodec(t *testing.T) {
	inner := JSONCodec[snapdeck.Snapshot]{}
	enc, err := inner.Encode(testSnap)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	t.Run("under_limit_passes", func(t *testing.T) {
		lc := LimitCodec[snapdeck.Snapshot]{Inner: inner, MaxDecode: len(enc)}
		got, err := lc.Decode(enc)
		if err != nil {
			t.Fatalf("Decode at boundary: %v", err)
		}
		if !equalSnap(got, testSnap) {
			t.Fatalf("Decode at boundary: got %+v", got)
		}
	})

	t.Run("over_limit_rejected_before_inner", func(t *testing.T) {
		lc := LimitCodec[snapdeck.Snapshot]{Inner: inner, MaxDecode: len(enc) - 1}
		_, err := lc.Decode(enc)
		if err == nil {
			t.Fatalf("expected error over limit")
		}
		if !strings.Contains(err.Error(), "payload too large") {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero_limit_disabled", func(t *testing.T) {
		lc := LimitCodec[snapdeck.Snapshot]{Inner: inner, MaxDecode: 0}
		if _, err := lc.Decode(enc); err != nil {
			t.Fatalf("zero limit should pass through: %v", err)
		}
	})

	t.Run("encode_forwards", func(t *testing.T) {
		lc := LimitCodec[snapdeck.Snapshot]{Inner: inner, MaxDecode: 1}
		b, err := lc.Encode(testSnap)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(b, enc) {
			t.Fatalf("Encode altered bytes")
		}
	})
}

// ==============================
// Protobuf codec
// ==============================

func TestProtobufRoundTrip(t *testing.T) {
	rec, err := structpb.NewStruct(map[string]any{
		"name":  "Thanos",
		"cards": []any{"AntMan", "Agent13"},
	})
	if err != nil {
		t.Fatalf("NewStruct: %v", err)
	}

	c := NewProtobuf(func() *structpb.Struct { return &structpb.Struct{} })
	b, err := c.Encode(rec)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !proto.Equal(got, rec) {
		t.Fatalf("round-trip: got %v want %v", got, rec)
	}
}
