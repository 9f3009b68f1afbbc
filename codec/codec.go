// Package codec provides pluggable serializers for deck snapshots (or any
// value) headed into byte storage.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
