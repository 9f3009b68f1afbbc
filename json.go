package snapdeck

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// codeEncoding is the game client's Base64 variant: standard alphabet,
// no "=" padding. Padded input must fail, so this is not lenient.
var codeEncoding = base64.RawStdEncoding

// deckWire and cardWire pin the emitted JSON: field names and casing
// belong to the game client. Decoding does not go through them, because
// encoding/json matches struct keys case-insensitively and the client's
// casing is authoritative; UnmarshalJSON reads exact keys instead.
type deckWire struct {
	Name  string     `json:"Name"`
	Cards []cardWire `json:"Cards"`
}

// cardWire is one card entry on the wire. A whole object per card looks
// wasteful, but the shape belongs to the game client.
type cardWire struct {
	CardDefId string `json:"CardDefId"`
}

// MarshalJSON renders the pinned wire shape. An empty deck marshals with
// "Cards":[] rather than null, matching the client. HTML escaping is off:
// the payload is Base64'd, never embedded in markup.
func (d DeckList) MarshalJSON() ([]byte, error) {
	cards := make([]cardWire, len(d.cards))
	for i, n := range d.cards {
		cards[i] = cardWire{CardDefId: n}
	}
	w := deckWire{Name: d.name, Cards: cards}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// UnmarshalJSON accepts any JSON object carrying a string "Name" and an
// array "Cards" of objects with string "CardDefId"s, matched
// case-sensitively. Unknown keys are ignored: the client has added
// fields before and decks must keep parsing when it does again.
func (d *DeckList) UnmarshalJSON(b []byte) error {
	// The wire form is a UTF-8 document. encoding/json would silently
	// replace bad bytes with U+FFFD; the client's parser does not.
	if !utf8.Valid(b) {
		return fmt.Errorf("payload is not valid UTF-8")
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}

	var name *string
	if raw, ok := obj["Name"]; ok {
		if err := json.Unmarshal(raw, &name); err != nil {
			return fmt.Errorf("%q field: %w", "Name", err)
		}
	}
	if name == nil {
		return fmt.Errorf("missing or null %q field", "Name")
	}

	var entries *[]json.RawMessage
	if raw, ok := obj["Cards"]; ok {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("%q field: %w", "Cards", err)
		}
	}
	if entries == nil {
		return fmt.Errorf("missing or null %q field", "Cards")
	}

	cards := make([]string, len(*entries))
	for i, item := range *entries {
		var card map[string]json.RawMessage
		if err := json.Unmarshal(item, &card); err != nil {
			return fmt.Errorf("card %d: %w", i, err)
		}
		var id *string
		if raw, ok := card["CardDefId"]; ok {
			if err := json.Unmarshal(raw, &id); err != nil {
				return fmt.Errorf("card %d: %q field: %w", i, "CardDefId", err)
			}
		}
		if id == nil {
			return fmt.Errorf("card %d: missing or null %q field", i, "CardDefId")
		}
		cards[i] = *id
	}

	d.name = *name
	if len(cards) == 0 {
		d.cards = nil
	} else {
		d.cards = cards
	}
	return nil
}

// ToCode encodes the deck as a shareable code: unpadded standard Base64
// over the pinned JSON. Output is deterministic, so equal decks always
// produce the same code.
func (d *DeckList) ToCode() (string, error) {
	// Call MarshalJSON directly: json.Marshal would re-escape <, > and &
	// inside the already-rendered bytes.
	data, err := d.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return codeEncoding.EncodeToString(data), nil
}

// FromCode decodes a share code into a new DeckList. The two failure
// stages map to the two error kinds: ErrDecoding when the string is not
// unpadded Base64, ErrInvalidDeck when the decoded bytes are not a deck.
func FromCode(code string) (*DeckList, error) {
	// Go's base64 decoder skips \r and \n; the client's engine treats
	// them as illegal bytes, so they must fail here, not slip through.
	if i := strings.IndexAny(code, "\r\n"); i >= 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, base64.CorruptInputError(i))
	}
	raw, err := codeEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	d := New()
	if err := d.UnmarshalJSON(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeck, err)
	}
	return d, nil
}
