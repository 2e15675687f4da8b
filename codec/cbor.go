package codec

import "github.com/fxamacker/cbor/v2"

// CBOR stores entries as CBOR (RFC 8949). The zero value is not usable;
// construct with NewCBOR or MustCBOR.
//
// With deterministic encoding, equal entries always produce identical bytes,
// which matters when store contents are compared or content-addressed across
// generations. Non-deterministic mode uses the library's preferred options
// and is slightly cheaper. Timestamps are written as RFC 3339 strings so the
// StoredAt field survives cross-language readers.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[struct{}] = CBOR[struct{}]{}

func NewCBOR[V any](deterministic bool) (CBOR[V], error) {
	opts := cbor.PreferredUnsortedEncOptions()
	if deterministic {
		opts = cbor.CoreDetEncOptions()
	}
	opts.Time = cbor.TimeRFC3339Nano

	enc, err := opts.EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: enc, dec: dec}, nil
}

// MustCBOR panics when the encoder configuration is rejected. Meant for
// package-level variables where the options are fixed at compile time.
func MustCBOR[V any](deterministic bool) CBOR[V] {
	c, err := NewCBOR[V](deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	if err := c.dec.Unmarshal(b, &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}
