package typedjson_test

import (
	"testing"

	typedjson "github.com/rmaeda/typedjson"
)

type item struct {
	ID string
}

func (it *item) DecodeObject(obj typedjson.Object) error {
	id, err := typedjson.Decode[string]("id", obj)
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func itemsFixture() typedjson.Object {
	return typedjson.Object{
		"items": typedjson.Array{
			typedjson.Object{"id": "a"},
			typedjson.Object{"id": "b"},
			typedjson.Object{"id": float64(3)}, // invalid: id is not a string
			typedjson.Object{"id": "d"},
		},
	}
}

func TestDecodeArray_Relaxed(t *testing.T) {
	items, err := typedjson.DecodeArray[item]("items", itemsFixture(), false)
	if err != nil {
		t.Fatalf("relaxed decode err: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 surviving items, got %d", len(items))
	}
	// source order preserved with the failed element omitted
	if items[0].ID != "a" || items[1].ID != "b" || items[2].ID != "d" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestDecodeArray_Strict(t *testing.T) {
	items, err := typedjson.DecodeArray[item]("items", itemsFixture(), true)
	if items != nil {
		t.Fatalf("strict failure must not return partial results, got %+v", items)
	}
	de, ok := typedjson.AsDecodeError(err)
	if !ok {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Code != typedjson.CodeInvalid || de.Parameter != "items[2].id" {
		t.Fatalf("expected invalid at items[2].id, got %s at %s", de.Code, de.Parameter)
	}
}

func TestDecodeArray_ShapeFailures(t *testing.T) {
	_, err := typedjson.DecodeArray[item]("items", typedjson.Object{}, true)
	de, ok := typedjson.AsDecodeError(err)
	if !ok || de.Code != typedjson.CodeMissing || de.Parameter != "items" {
		t.Fatalf("expected missing at items, got %v", err)
	}

	obj := typedjson.Object{"items": "not an array"}
	_, err = typedjson.DecodeArray[item]("items", obj, false)
	de, ok = typedjson.AsDecodeError(err)
	if !ok || de.Code != typedjson.CodeInvalid || de.Parameter != "items" {
		t.Fatalf("expected invalid at items, got %v", err)
	}

	// a non-object element is an array-shape failure even in relaxed mode
	obj["items"] = typedjson.Array{typedjson.Object{"id": "a"}, "stray"}
	_, err = typedjson.DecodeArray[item]("items", obj, false)
	de, ok = typedjson.AsDecodeError(err)
	if !ok || de.Code != typedjson.CodeInvalid || de.Parameter != "items" {
		t.Fatalf("expected invalid at items for stray element, got %v", err)
	}
}

func TestDecodeArray_NestedStrictPath(t *testing.T) {
	// a strict element failure carries the element's own nested path
	obj := typedjson.Object{
		"users": typedjson.Array{
			typedjson.Object{
				"name": "ada", "age": float64(36),
				"address": typedjson.Object{"city": "london", "zip": "e1"},
			},
			typedjson.Object{
				"name": "bob", "age": float64(41),
				"address": typedjson.Object{"city": float64(7), "zip": "x"},
			},
		},
	}
	_, err := typedjson.DecodeArray[user]("users", obj, true)
	de, ok := typedjson.AsDecodeError(err)
	if !ok || de.Parameter != "users[1].address.city" {
		t.Fatalf("expected failure at users[1].address.city, got %v", err)
	}
}

func TestDecodeArray_EmptyAndAllInvalid(t *testing.T) {
	obj := typedjson.Object{"items": typedjson.Array{}}
	items, err := typedjson.DecodeArray[item]("items", obj, true)
	if err != nil || len(items) != 0 {
		t.Fatalf("empty array: got %v, err %v", items, err)
	}

	obj["items"] = typedjson.Array{typedjson.Object{}, typedjson.Object{}}
	items, err = typedjson.DecodeArray[item]("items", obj, false)
	if err != nil || len(items) != 0 {
		t.Fatalf("relaxed all-invalid: got %v, err %v", items, err)
	}
}
