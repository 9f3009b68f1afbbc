// Package snapdeck encodes and decodes Marvel Snap deck codes: the Base64
// strings players copy out of the game client to share a deck. It carries
// no card catalog on purpose - cards ship often enough that a baked-in
// list would be stale before the next release.
//
// Components:
//   - DeckList: the deck value (display name + ordered card list) with the
//     ToCode/FromCode transform. The wire JSON keys (Name, Cards,
//     CardDefId) are pinned by the game client and never change casing.
//   - codec: Codec[V] toolkit (JSON, CBOR, Msgpack, Protobuf, Limit) for
//     storing deck Snapshots on the host side.
//   - provider: byte store with TTL (e.g. Ristretto, BigCache).
//   - deckcache: optional memoizing decoder over Provider+Codec for hosts
//     that see the same pasted codes repeatedly.
//
// Keys (deckcache):
//
//	deck:<ns>:<sha256 of code> - one entry per distinct code
//
// Decode pattern:
//
//	list, err := snapdeck.FromCode(clipboard)
//	switch {
//	case errors.Is(err, snapdeck.ErrDecoding):    // not Base64: mangled paste
//	case errors.Is(err, snapdeck.ErrInvalidDeck): // Base64, but not a deck
//	}
package snapdeck
