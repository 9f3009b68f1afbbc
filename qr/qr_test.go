package qr

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/unkn0wn-root/snapdeck"
)

func TestPNGDecodesAtRequestedSize(t *testing.T) {
	b, err := PNG("eyJOYW1lIjoiIiwiQ2FyZHMiOltdfQ", 128)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 128 {
		t.Fatalf("width: got %d want 128", got)
	}
}

func TestPNGDefaultSize(t *testing.T) {
	img, err := Image("somecode", 0)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.Bounds().Dx(); got != DefaultSize {
		t.Fatalf("width: got %d want %d", got, DefaultSize)
	}
}

func TestDeckPNG(t *testing.T) {
	d := snapdeck.New()
	d.SetName("Thanos")
	d.SetCards([]string{"AntMan", "Thanos"})

	b, err := DeckPNG(d, 96)
	if err != nil {
		t.Fatalf("DeckPNG: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(b)); err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
}
