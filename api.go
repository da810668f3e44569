package typedjson

// Codec performs bidirectional transformation between the wire representation
// A and the domain representation B. Implementations live under codec/; the
// built-in ones wrap the registered scalar transforms with typed signatures.
type Codec[A, B any] interface {
	Decode(a A) (B, error) // A (wire) -> B (domain).
	Encode(b B) (A, error) // B (domain) -> A (wire).
}
