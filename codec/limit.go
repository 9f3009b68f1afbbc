package codec

import "fmt"

// LimitCodec wraps another codec to cap the payload size accepted by
// Decode; Encode passes through. MaxDecode <= 0 disables the cap.
//
// deckcache installs this when Options.MaxEntryBytes is set, so a
// poisoned entry in a shared store cannot balloon a snapshot decode.
type LimitCodec[V any] struct {
	Inner     Codec[V] // must be set
	MaxDecode int      // max accepted Decode payload, in bytes
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
