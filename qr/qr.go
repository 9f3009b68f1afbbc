// Package qr renders share codes as QR images, the other way decks move
// between phones at a table. A code is plain ASCII, so medium error
// correction keeps the image scannable at small sizes.
package qr

import (
	"bytes"
	"image"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/unkn0wn-root/snapdeck"
)

// DefaultSize is a sensible pixel edge for chat/screen sharing.
const DefaultSize = 256

// PNG returns PNG bytes of a QR code carrying the given share code.
// size is the image edge in pixels; size <= 0 means DefaultSize.
func PNG(code string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	return qrcode.Encode(code, qrcode.Medium, size)
}

// Image returns an image.Image for further composition (e.g. stamping a
// deck name under the QR block).
func Image(code string, size int) (image.Image, error) {
	b, err := PNG(code, size)
	if err != nil {
		return nil, err
	}
	return png.Decode(bytes.NewReader(b))
}

// DeckPNG encodes the deck and renders its code in one step.
func DeckPNG(d *snapdeck.DeckList, size int) ([]byte, error) {
	code, err := d.ToCode()
	if err != nil {
		return nil, err
	}
	return PNG(code, size)
}
