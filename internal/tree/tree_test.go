package tree

import (
	"encoding/json"
	"io"
	"reflect"
	"testing"
)

type sliceSource struct {
	toks []Token
	pos  int
}

func (s *sliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func TestBuild_Object(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "name"},
		{Kind: KindString, String: "ada"},
		{Kind: KindKey, String: "n"},
		{Kind: KindNumber, Number: "42"},
		{Kind: KindKey, String: "ok"},
		{Kind: KindBool, Bool: true},
		{Kind: KindKey, String: "none"},
		{Kind: KindNull},
		{Kind: KindEndObject},
	}}
	v, err := Build(src)
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	want := map[string]any{"name": "ada", "n": json.Number("42"), "ok": true, "none": nil}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected tree: %#v", v)
	}
}

func TestBuildFloat64_NestedArray(t *testing.T) {
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginArray},
		{Kind: KindNumber, Number: "1"},
		{Kind: KindBeginObject},
		{Kind: KindKey, String: "k"},
		{Kind: KindNumber, Number: "2.5"},
		{Kind: KindEndObject},
		{Kind: KindEndArray},
	}}
	v, err := BuildFloat64(src)
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	want := []any{float64(1), map[string]any{"k": float64(2.5)}}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("unexpected tree: %#v", v)
	}
}

func TestBuild_Malformed(t *testing.T) {
	// a value where a key is expected
	src := &sliceSource{toks: []Token{
		{Kind: KindBeginObject},
		{Kind: KindString, String: "stray"},
	}}
	if _, err := Build(src); err == nil {
		t.Fatalf("expected error for stray token")
	}

	// truncated input
	src = &sliceSource{toks: []Token{{Kind: KindBeginArray}}}
	if _, err := Build(src); err == nil {
		t.Fatalf("expected error for truncated array")
	}

	// bad number text in float mode
	src = &sliceSource{toks: []Token{{Kind: KindNumber, Number: "abc"}}}
	if _, err := BuildFloat64(src); err == nil {
		t.Fatalf("expected error for bad number")
	}
}

func TestBuild_EmptyArrayIsNonNil(t *testing.T) {
	src := &sliceSource{toks: []Token{{Kind: KindBeginArray}, {Kind: KindEndArray}}}
	v, err := Build(src)
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	arr, ok := v.([]any)
	if !ok || arr == nil || len(arr) != 0 {
		t.Fatalf("expected empty non-nil array, got %#v", v)
	}
}
