package codec

import "encoding/json"

// JSONCodec is the default entry codec. Entries are stored as plain JSON
// objects, which keeps them inspectable when debugging a store by hand.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(v V) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec[V]) Decode(b []byte) (V, error) {
	var v V
	if err := json.Unmarshal(b, &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}
