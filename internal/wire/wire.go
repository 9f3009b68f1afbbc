// Package wire frames codec payloads before they hit a provider. The
// header lets deckcache tell its own entries from garbage and evict
// (self-heal) instead of erroring when a store hands back bytes it does
// not recognize.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("deckcache: corrupt entry")
	magic4     = [...]byte{'S', 'N', 'A', 'P'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | vlen(u32 be) | payload(vlen)
func EncodeEntry(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeEntry validates the frame and returns the payload, aliasing b.
// Trailing bytes after the declared length are corruption, not slack.
func DecodeEntry(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return nil, ErrCorrupt
	}

	vlen := int(binary.BigEndian.Uint32(b[5:9]))
	if vlen < 0 || vlen != len(b)-hdr {
		return nil, ErrCorrupt
	}

	return b[hdr : hdr+vlen], nil
}
