package typedjson

// Package typedjson provides:
//
// - Type-directed decoding from dynamic JSON value trees via Decode/DecodeArray
// - A total, never-failing Encode that normalizes typed values back into trees
// - A structured error model via DecodeError (code + dotted/indexed parameter path)
// - Tree ingestion from JSON, YAML, msgpack and CBOR payloads (ParseJSON etc.)
//
// Design policy:
// - Keep only public APIs in the root package; put tree assembly under internal/.
// - Place typed codecs under codec/ and the CLI under cmd/typedjson.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	obj, err := typedjson.ParseJSONObject(data)
//	name, err := typedjson.Decode[string]("name", obj)
//	user, err := typedjson.Decode[User]("user", obj)     // User adopts Decodable
//	items, err := typedjson.DecodeArray[Item]("items", obj, false)
//
//	wire := typedjson.Encode(user) // always a Valid tree
