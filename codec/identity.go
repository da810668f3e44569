package codec

import (
	typedjson "github.com/rmaeda/typedjson"
)

// Identity returns a Codec[T,T] that performs identity transformations. It
// exists so call sites that accept a Codec can be handed an untransformed
// passthrough.
func Identity[T any]() typedjson.Codec[T, T] { return identityCodec[T]{} }

type identityCodec[T any] struct{}

func (identityCodec[T]) Decode(a T) (T, error) { return a, nil }
func (identityCodec[T]) Encode(b T) (T, error) { return b, nil }
