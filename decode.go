package typedjson

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Decodable is the capability a type adopts to become a decode target for
// nested JSON objects. Implement it on the pointer receiver and decode by the
// value type: DecodeObject fills the receiver from obj and returns a
// *DecodeError for the first failing field.
type Decodable interface {
	DecodeObject(obj Object) error
}

// RawRepresentable is the capability of enumerated types backed by a raw
// scalar. FromRawValue receives the already-decoded scalar (string, bool,
// int64 or float64 regardless of how the source represented numbers) and
// returns an error when no case matches. Implement it on the pointer receiver.
type RawRepresentable interface {
	FromRawValue(raw any) error
}

// DecodablePtr constrains PT to be a pointer to T that implements Decodable.
type DecodablePtr[T any] interface {
	*T
	Decodable
}

// Decode resolves the value stored under key in obj into a T.
//
// Resolution order, most specific first:
//
//  1. direct/structural match: the tree already carries a T, a coercible
//     scalar, or a sequence/string-keyed mapping of JSON-compatible leaves
//  2. raw-representable: *T implements RawRepresentable; the raw scalar is
//     decoded first, then T constructed from it
//  3. nested decodable: *T implements Decodable; the value is decoded as an
//     Object and handed to DecodeObject, child failures rewritten under key
//  4. registered scalar transform: the value is decoded as a string and
//     parsed by the transform registered for T (time.Time, *url.URL, ...)
//
// A key absent from obj always fails with CodeMissing before any type
// matching. Every other failure is CodeInvalid carrying the full parameter
// path from the decode root to the failing field.
func Decode[T any](key string, obj Object) (T, error) {
	var zero T
	raw, present := obj[key]
	if !present {
		return zero, missingErr(key)
	}

	if v, ok := raw.(T); ok {
		return v, nil
	}
	if v, ok := coerceScalar[T](raw); ok {
		return v, nil
	}
	if v, ok := convertContainer[T](raw); ok {
		return v, nil
	}

	if rr, ok := any(&zero).(RawRepresentable); ok {
		s, ok := scalarValue(raw)
		if !ok {
			return zero, invalidErr(key, fmt.Sprintf("expected raw scalar, got %T", raw))
		}
		if err := rr.FromRawValue(s); err != nil {
			return zero, invalidCause(key, "no matching raw value", err)
		}
		return zero, nil
	}

	if d, ok := any(&zero).(Decodable); ok {
		sub, ok := AsObject(raw)
		if !ok {
			return zero, invalidErr(key, fmt.Sprintf("expected object, got %T", raw))
		}
		if err := d.DecodeObject(sub); err != nil {
			return zero, nestedErr(key, err)
		}
		return zero, nil
	}

	if tr, ok := lookupTransform(reflect.TypeOf((*T)(nil)).Elem()); ok {
		s, ok := raw.(string)
		if !ok {
			return zero, invalidErr(key, fmt.Sprintf("expected string, got %T", raw))
		}
		v, err := tr.Parse(s)
		if err != nil {
			return zero, invalidCause(key, "unparsable value", err)
		}
		if t, ok := v.(T); ok {
			return t, nil
		}
		return zero, invalidErr(key, "transform produced a value of the wrong type")
	}

	return zero, invalidErr(key, fmt.Sprintf("cannot decode %T into %T", raw, zero))
}

// SafeDecode decodes key into T, returning (zero, false) on any failure.
// Callers that only care about missing keys should use IsMissing instead.
func SafeDecode[T any](key string, obj Object) (T, bool) {
	v, err := Decode[T](key, obj)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// DecodeArray decodes the array of objects stored under key into a []T.
//
// The array shape is checked first: a missing key fails with CodeMissing and
// a value that is not an array of objects fails with CodeInvalid, both on key.
// Per element, strict=false ("relaxed") silently drops elements whose
// DecodeObject fails, preserving source order of the survivors; strict=true
// aborts on the first failure with the child's code and the parameter
// rewritten to key[i].child, returning no partial results.
func DecodeArray[T any, PT DecodablePtr[T]](key string, obj Object, strict bool) ([]T, error) {
	raw, present := obj[key]
	if !present {
		return nil, missingErr(key)
	}
	arr, ok := AsArray(raw)
	if !ok {
		return nil, invalidErr(key, fmt.Sprintf("expected array, got %T", raw))
	}
	elems := make([]Object, len(arr))
	for i, el := range arr {
		m, ok := AsObject(el)
		if !ok {
			return nil, invalidErr(key, "expected array of objects, element "+strconv.Itoa(i)+" is not an object")
		}
		elems[i] = m
	}

	out := make([]T, 0, len(elems))
	for i, m := range elems {
		var v T
		if err := PT(&v).DecodeObject(m); err != nil {
			if !strict {
				continue
			}
			return nil, indexedErr(key, i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ---- structural matching helpers ----

// coerceScalar bridges the numeric representations a tree may carry. Only the
// builtin target types below participate; named scalar types go through the
// RawRepresentable branch so enum validity is never bypassed.
func coerceScalar[T any](raw any) (T, bool) {
	var zero T
	switch any(zero).(type) {
	case int:
		if n, ok := AsInt(raw); ok {
			return any(int(n)).(T), true
		}
	case int64:
		if n, ok := AsInt(raw); ok {
			return any(n).(T), true
		}
	case float64:
		if f, ok := AsFloat(raw); ok {
			return any(f).(T), true
		}
	case json.Number:
		switch n := raw.(type) {
		case float64:
			return any(json.Number(strconv.FormatFloat(n, 'g', -1, 64))).(T), true
		case int:
			return any(json.Number(strconv.Itoa(n))).(T), true
		case int64:
			return any(json.Number(strconv.FormatInt(n, 10))).(T), true
		}
	}
	return zero, false
}

var (
	typeAny    = reflect.TypeOf((*any)(nil)).Elem()
	typeString = reflect.TypeOf("")
	typeBool   = reflect.TypeOf(false)
	typeInt    = reflect.TypeOf(int(0))
	typeInt64  = reflect.TypeOf(int64(0))
	typeFloat  = reflect.TypeOf(float64(0))
	typeNumber = reflect.TypeOf(json.Number(""))
	typeObject = reflect.TypeOf(map[string]any(nil))
	typeArray  = reflect.TypeOf([]any(nil))
)

func jsonLeafType(rt reflect.Type) bool {
	switch rt {
	case typeAny, typeString, typeBool, typeInt, typeInt64, typeFloat, typeNumber, typeObject, typeArray:
		return true
	}
	return false
}

// convertContainer matches sequences and string-keyed mappings whose element
// type is a JSON-compatible leaf, e.g. []string, []Object, map[string]float64.
// Any element failing to convert rejects the whole container.
func convertContainer[T any](raw any) (T, bool) {
	var zero T
	rt := reflect.TypeOf((*T)(nil)).Elem()
	switch rt.Kind() {
	case reflect.Slice:
		if !jsonLeafType(rt.Elem()) {
			return zero, false
		}
		src, ok := AsArray(raw)
		if !ok {
			return zero, false
		}
		out := reflect.MakeSlice(rt, 0, len(src))
		for _, el := range src {
			ev, ok := convertLeaf(rt.Elem(), el)
			if !ok {
				return zero, false
			}
			out = reflect.Append(out, ev)
		}
		return out.Interface().(T), true
	case reflect.Map:
		if rt.Key() != typeString || !jsonLeafType(rt.Elem()) {
			return zero, false
		}
		src, ok := AsObject(raw)
		if !ok {
			return zero, false
		}
		out := reflect.MakeMapWithSize(rt, len(src))
		for k, el := range src {
			ev, ok := convertLeaf(rt.Elem(), el)
			if !ok {
				return zero, false
			}
			out.SetMapIndex(reflect.ValueOf(k), ev)
		}
		return out.Interface().(T), true
	}
	return zero, false
}

func convertLeaf(rt reflect.Type, v any) (reflect.Value, bool) {
	if v == nil {
		switch rt.Kind() {
		case reflect.Interface, reflect.Map, reflect.Slice:
			return reflect.Zero(rt), true
		}
		return reflect.Value{}, false
	}
	switch rt {
	case typeAny:
		return reflect.ValueOf(v), true
	case typeString:
		if s, ok := v.(string); ok {
			return reflect.ValueOf(s), true
		}
	case typeBool:
		if b, ok := v.(bool); ok {
			return reflect.ValueOf(b), true
		}
	case typeInt:
		if n, ok := AsInt(v); ok {
			return reflect.ValueOf(int(n)), true
		}
	case typeInt64:
		if n, ok := AsInt(v); ok {
			return reflect.ValueOf(n), true
		}
	case typeFloat:
		if f, ok := AsFloat(v); ok {
			return reflect.ValueOf(f), true
		}
	case typeNumber:
		switch n := v.(type) {
		case json.Number:
			return reflect.ValueOf(n), true
		case float64:
			return reflect.ValueOf(json.Number(strconv.FormatFloat(n, 'g', -1, 64))), true
		case int64:
			return reflect.ValueOf(json.Number(strconv.FormatInt(n, 10))), true
		case int:
			return reflect.ValueOf(json.Number(strconv.Itoa(n))), true
		}
	case typeObject:
		if m, ok := AsObject(v); ok {
			return reflect.ValueOf(m), true
		}
	case typeArray:
		if a, ok := AsArray(v); ok {
			return reflect.ValueOf(a), true
		}
	}
	return reflect.Value{}, false
}
