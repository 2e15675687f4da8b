package codec

import "google.golang.org/protobuf/proto"

// Protobuf stores entries that are generated protobuf messages. Because a
// message type is a pointer, decoding needs a way to allocate a fresh value;
// the constructor supplies it:
//
//	codec.NewProtobuf(func() *assetpb.Entry { return &assetpb.Entry{} })
type Protobuf[T proto.Message] struct {
	alloc func() T
}

func NewProtobuf[T proto.Message](alloc func() T) Protobuf[T] {
	return Protobuf[T]{alloc: alloc}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.alloc()
	if err := proto.Unmarshal(b, m); err != nil {
		var zero T
		return zero, err
	}
	return m, nil
}
