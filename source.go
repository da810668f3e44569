package typedjson

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"
	j "github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/rmaeda/typedjson/internal/tree"
)

// NumberMode dictates how numbers in a parsed tree are represented.
type NumberMode int

const (
	NumberFloat64    NumberMode = iota // Fast mode (default).
	NumberJSONNumber                   // Preserve json.Number.
)

// SourceOpt bundles tree-source options.
type SourceOpt struct {
	Numbers NumberMode
}

func pickOpt(opts []SourceOpt) SourceOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return SourceOpt{}
}

// ParseJSON builds the dynamic value tree from JSON bytes using goccy/go-json.
func ParseJSON(b []byte, opts ...SourceOpt) (any, error) {
	return ParseJSONReader(bytes.NewReader(b), opts...)
}

// ParseJSONReader builds the dynamic value tree from a JSON stream.
func ParseJSONReader(r io.Reader, opts ...SourceOpt) (any, error) {
	src := newJSONTokenSource(r)
	switch pickOpt(opts).Numbers {
	case NumberJSONNumber:
		return tree.Build(src)
	default:
		return tree.BuildFloat64(src)
	}
}

// ParseJSONObject is ParseJSON restricted to a top-level object.
func ParseJSONObject(b []byte, opts ...SourceOpt) (Object, error) {
	v, err := ParseJSON(b, opts...)
	if err != nil {
		return nil, err
	}
	m, ok := AsObject(v)
	if !ok {
		return nil, fmt.Errorf("typedjson: top-level value is %T, not an object", v)
	}
	return m, nil
}

// MarshalJSON serializes a value tree back to JSON bytes via goccy/go-json.
// This is the outbound boundary; pass trees produced by Encode.
func MarshalJSON(v any) ([]byte, error) {
	return j.Marshal(v)
}

// MarshalJSONIndent is MarshalJSON with two-space indentation.
func MarshalJSONIndent(v any) ([]byte, error) {
	return j.MarshalIndent(v, "", "  ")
}

// ParseYAML builds the dynamic value tree from a YAML document. YAML maps are
// normalized into string-keyed objects; non-string keys are dropped.
func ParseYAML(b []byte) (any, error) {
	var node any
	if err := yaml.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	return normalizeTree(node), nil
}

// ParseMsgpack builds the dynamic value tree from a msgpack payload.
func ParseMsgpack(b []byte) (any, error) {
	var node any
	if err := msgpack.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	return normalizeTree(node), nil
}

// ParseCBOR builds the dynamic value tree from a CBOR payload.
func ParseCBOR(b []byte) (any, error) {
	var node any
	if err := cbor.Unmarshal(b, &node); err != nil {
		return nil, err
	}
	return normalizeTree(node), nil
}

// normalizeTree converts decoder output (which may contain map[any]any and
// narrow numeric types) into the JSON-like tree shape the decode dispatcher
// matches against: Object, Array, string, bool, int64, float64.
func normalizeTree(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(Object, len(t))
		for k, vv := range t {
			out[k] = normalizeTree(vv)
		}
		return out
	case map[any]any:
		out := make(Object, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeTree(vv)
		}
		return out
	case []any:
		arr := make(Array, len(t))
		for i := range t {
			arr[i] = normalizeTree(t[i])
		}
		return arr
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint:
		return int64(t)
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t)
		}
		return float64(t)
	case float32:
		return float64(t)
	case []byte:
		return string(t)
	default:
		return v
	}
}

// ---- goccy/go-json token source ----

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// jsonTokenSource adapts the go-json streaming decoder to tree.TokenSource.
// The frame stack tells object keys apart from string values.
type jsonTokenSource struct {
	dec   *j.Decoder
	stack []frame
}

func newJSONTokenSource(r io.Reader) *jsonTokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonTokenSource{dec: dec}
}

// valueSeen flips the top object frame back to key position after a value.
func (s *jsonTokenSource) valueSeen() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *jsonTokenSource) NextToken() (tree.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		return tree.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return tree.Token{Kind: tree.KindBeginObject}, nil
		case '}':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueSeen()
			return tree.Token{Kind: tree.KindEndObject}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return tree.Token{Kind: tree.KindBeginArray}, nil
		case ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueSeen()
			return tree.Token{Kind: tree.KindEndArray}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return tree.Token{Kind: tree.KindKey, String: v}, nil
			}
		}
		s.valueSeen()
		return tree.Token{Kind: tree.KindString, String: v}, nil
	case bool:
		s.valueSeen()
		return tree.Token{Kind: tree.KindBool, Bool: v}, nil
	case j.Number:
		s.valueSeen()
		return tree.Token{Kind: tree.KindNumber, Number: string(v)}, nil
	case nil:
		s.valueSeen()
		return tree.Token{Kind: tree.KindNull}, nil
	}
	s.valueSeen()
	return tree.Token{Kind: tree.KindNull}, nil
}
