package codec

import "google.golang.org/protobuf/proto"

// Protobuf is a Codec for hosts whose deck records are already proto
// messages (e.g. a collection service wrapping snapshots in its own
// envelope). snapdeck.Snapshot itself is not a proto.Message; pair this
// with your generated type, or structpb for schemaless records.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *pb.DeckRecord { return &pb.DeckRecord{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}
func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
