package snapdeck

// DeckList is a deck as the share code carries it: a display name plus
// the card identifiers (CardDefIds, e.g. "AntMan") in their original
// order. Duplicates are kept; this package does not enforce game rules
// like the 12-card limit, and identifiers are never checked against a
// card catalog - cards ship too often for a baked-in list to stay fresh.
//
// The zero value is an empty, usable deck. DeckList is not safe for
// concurrent mutation.
type DeckList struct {
	name  string
	cards []string
}

// New returns an empty deck list.
func New() *DeckList {
	return &DeckList{}
}

// Name returns the deck's display name.
func (d *DeckList) Name() string {
	return d.name
}

// SetName sets the deck's display name. Any UTF-8 string goes; the game
// client does its own profanity filtering.
func (d *DeckList) SetName(name string) {
	d.name = name
}

// Cards returns the CardDefIds in deck order. The slice is a copy; nil
// means the deck is empty.
func (d *DeckList) Cards() []string {
	if len(d.cards) == 0 {
		return nil
	}
	out := make([]string, len(d.cards))
	copy(out, d.cards)
	return out
}

// SetCards replaces the deck's cards with the given CardDefIds, keeping
// their order. The input slice is copied.
func (d *DeckList) SetCards(names []string) {
	if len(names) == 0 {
		d.cards = nil
		return
	}
	cards := make([]string, len(names))
	copy(cards, names)
	d.cards = cards
}

// Equal reports whether two decks have the same name and the same cards
// in the same order.
func (d DeckList) Equal(o DeckList) bool {
	if d.name != o.name || len(d.cards) != len(o.cards) {
		return false
	}
	for i := range d.cards {
		if d.cards[i] != o.cards[i] {
			return false
		}
	}
	return true
}

// Snapshot is the flat, exported view of a DeckList for host-side storage.
// codec.Codec implementations serialize this, not DeckList itself, so the
// share-code wire shape and the cache wire shape can evolve independently.
type Snapshot struct {
	Name  string   `json:"name" cbor:"name" msgpack:"name"`
	Cards []string `json:"cards" cbor:"cards" msgpack:"cards"`
}

// Snapshot returns a copy of the deck as a Snapshot. Cards is non-nil
// even for an empty deck so serializers emit a stable shape.
func (d *DeckList) Snapshot() Snapshot {
	cards := make([]string, len(d.cards))
	copy(cards, d.cards)
	return Snapshot{Name: d.name, Cards: cards}
}

// FromSnapshot rebuilds a DeckList from a stored Snapshot.
func FromSnapshot(s Snapshot) *DeckList {
	d := New()
	d.SetName(s.Name)
	d.SetCards(s.Cards)
	return d
}
