// Package codec turns cache entries into bytes and back. The agent persists
// whole HTTP responses, so the codec choice decides the stored entry format:
// JSON by default, msgpack or CBOR for compactness, protobuf when the entry
// type is a generated message, and identity codecs for raw payloads.
package codec

// Codec serializes values of type V on their way into a store and
// deserializes them on the way out. Decode must accept exactly what Encode
// produced.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
