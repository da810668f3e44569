package typedjson

import (
	"encoding/json"
	"math"
	"reflect"
)

// Encodable is the capability of producing a loosely-typed representation
// eligible for re-encoding. The representation may be a scalar, a collection,
// or contain further Encodable values; Encode recurses until only plain JSON
// remains.
type Encodable interface {
	Representation() any
}

// Encode normalizes an arbitrary value into a tree for which Valid reports
// true. It never fails: values with no JSON representation become nil. This
// lossy fallback is deliberate; callers depend on Encode being total.
//
// Resolution order: nil, JSON scalar passthrough, registered transform
// (dates, URLs), Encodable representation, string-keyed mapping, sequence,
// nil fallback. Named scalar types flatten to their underlying kind, so an
// int-backed enum encodes as its raw number.
func Encode(v any) any {
	if v == nil {
		return nil
	}
	switch v.(type) {
	case bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return v
	}
	if tr, ok := lookupTransform(reflect.TypeOf(v)); ok {
		if s, ok := tr.Format(v); ok {
			return s
		}
	}
	if e, ok := v.(Encodable); ok {
		return Encode(e.Representation())
	}
	switch t := v.(type) {
	case map[string]any:
		out := make(Object, len(t))
		for k, vv := range t {
			out[k] = Encode(vv)
		}
		return out
	case []any:
		out := make(Array, len(t))
		for i := range t {
			out[i] = Encode(t[i])
		}
		return out
	}
	return encodeReflect(reflect.ValueOf(v))
}

// encodeReflect handles named types and typed containers the concrete switch
// above cannot see: pointers, enums over scalar kinds, map[string]X, []X.
// Everything else falls back to nil.
func encodeReflect(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return Encode(rv.Elem().Interface())
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u > math.MaxInt64 {
			return u
		}
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make(Object, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Encode(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make(Array, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, Encode(rv.Index(i).Interface()))
		}
		return out
	}
	return nil
}
