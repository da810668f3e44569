package typedjson

import (
	"encoding/json"
	"math"
)

// Object is the dynamic JSON object: a plain string-keyed map alias so trees
// built by hand, by encoding/json or by this package's sources are
// interchangeable without conversion.
type Object = map[string]any

// Array is the dynamic JSON array.
type Array = []any

// Valid reports whether v is a legal JSON value tree: null, bool, string,
// number (builtin numeric kinds or json.Number), an Array of valid values or
// an Object of valid values. Encode guarantees Valid output by construction.
func Valid(v any) bool {
	switch t := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	case map[string]any:
		for _, vv := range t {
			if !Valid(vv) {
				return false
			}
		}
		return true
	case []any:
		for _, vv := range t {
			if !Valid(vv) {
				return false
			}
		}
		return true
	}
	return false
}

// ---- tree value accessors ----
//
// Trees carry numbers as float64, int64 or json.Number depending on the
// source and NumberMode. The accessors normalize across those representations
// so callers (and RawRepresentable implementations) need not care which
// source produced the tree.

// AsObject reports v as an Object when it is a string-keyed map.
func AsObject(v any) (Object, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// AsArray reports v as an Array.
func AsArray(v any) (Array, bool) {
	a, ok := v.([]any)
	return a, ok
}

// AsString reports v as a string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsBool reports v as a bool.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsInt reports v as an int64. Floating-point and json.Number values convert
// only when they carry an integral value that fits in int64; out-of-range
// magnitudes never convert.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if integralInRange(n) {
			return int64(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// Int64 rejects both float-form text ("2.0") and out-of-range values;
		// only the former may still convert, under the same range guard.
		if f, err := n.Float64(); err == nil && integralInRange(f) {
			return int64(f), true
		}
	}
	return 0, false
}

// integralInRange reports whether f is an integral float64 whose conversion
// to int64 is exact and in range. The bounds are the float64-representable
// -2^63 and 2^63; the upper bound is exclusive since 2^63-1 rounds up to 2^63.
func integralInRange(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return false
	}
	return f >= -(1<<63) && f < (1<<63)
}

// AsFloat reports v as a float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, true
		}
	}
	return 0, false
}

// scalarValue normalizes a tree leaf into the canonical raw scalar handed to
// RawRepresentable.FromRawValue: string, bool, int64 or float64.
func scalarValue(v any) (any, bool) {
	switch v.(type) {
	case string, bool:
		return v, true
	}
	if i, ok := AsInt(v); ok {
		return i, true
	}
	if f, ok := AsFloat(v); ok {
		return f, true
	}
	return nil, false
}
