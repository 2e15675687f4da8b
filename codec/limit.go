package codec

import "fmt"

// Limit rejects oversized payloads before they reach the wrapped codec's
// Decode. Shared stores can hand back entries written by anyone; the cap
// keeps a poisoned or runaway entry from being buffered in full. Encode
// passes through untouched. MaxDecode <= 0 disables the check.
type Limit[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: payload %d bytes exceeds limit %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
