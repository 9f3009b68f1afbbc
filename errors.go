package snapdeck

import (
	"errors"
)

// Error kinds returned by ToCode and FromCode. Each is the head of a
// wrapped chain: match the kind with errors.Is, then dig for the cause
// (e.g. base64.CorruptInputError) with errors.As if you need it.
var (
	// ErrEncoding marks a ToCode failure. With the pinned wire shape
	// (plain strings, no cycles) marshalling cannot realistically fail,
	// but the kind exists so callers never see a bare serializer error.
	ErrEncoding = errors.New("snapdeck: failed to encode deck")

	// ErrDecoding marks a FromCode input that is not valid unpadded
	// standard Base64. The underlying base64 error is wrapped.
	ErrDecoding = errors.New("snapdeck: failed to decode code as base64")

	// ErrInvalidDeck marks a FromCode input that decodes to bytes which
	// are not a deck: malformed JSON, a non-object top level, or
	// missing/null/mistyped Name, Cards, or CardDefId fields.
	ErrInvalidDeck = errors.New("snapdeck: invalid deck data")
)
