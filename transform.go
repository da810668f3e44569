package typedjson

import (
	"errors"
	"net/url"
	"reflect"
	"sync"
	"time"
)

// TimeLayout is the fixed wire format for date fields: second precision with
// a numeric or "Z" zone designator. Encode always emits the UTC canonical
// form, so ParseTime(FormatTime(t)) equals t to the second.
const TimeLayout = "2006-01-02T15:04:05Z0700"

// Transform converts between the string wire form and a single registered Go
// type. Parse must return a value of exactly the registered type; Format
// reports false when handed a value it does not own.
type Transform interface {
	Parse(s string) (any, error)
	Format(v any) (string, bool)
}

var (
	transformMu sync.RWMutex
	transforms  = map[reflect.Type]Transform{}
)

// RegisterTransform binds a scalar transform to the given target type, making
// the type a valid Decode target and teaching Encode its string form. Later
// registrations replace earlier ones. Register at init time; the registry is
// read-only while decoding.
func RegisterTransform(t reflect.Type, tr Transform) {
	if t == nil || tr == nil {
		return
	}
	transformMu.Lock()
	transforms[t] = tr
	transformMu.Unlock()
}

func lookupTransform(t reflect.Type) (Transform, bool) {
	if t == nil {
		return nil, false
	}
	transformMu.RLock()
	tr, ok := transforms[t]
	transformMu.RUnlock()
	return tr, ok
}

func init() {
	RegisterTransform(reflect.TypeOf(time.Time{}), timeTransform{})
	RegisterTransform(reflect.TypeOf(&url.URL{}), urlTransform{ptr: true})
	RegisterTransform(reflect.TypeOf(url.URL{}), urlTransform{})
}

// ParseTime parses the fixed-format date string used on the wire.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// FormatTime renders t in the canonical UTC wire form, dropping sub-second
// precision.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseURL validates that s forms a well-formed, non-empty URL reference.
func ParseURL(s string) (*url.URL, error) {
	if s == "" {
		return nil, errors.New("empty url")
	}
	return url.Parse(s)
}

// FormatURL renders the normalized string form of u.
func FormatURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.String()
}

type timeTransform struct{}

func (timeTransform) Parse(s string) (any, error) { return ParseTime(s) }

func (timeTransform) Format(v any) (string, bool) {
	if t, ok := v.(time.Time); ok {
		return FormatTime(t), true
	}
	return "", false
}

// urlTransform serves both url.URL and *url.URL targets; ptr selects which
// shape Parse produces.
type urlTransform struct{ ptr bool }

func (tr urlTransform) Parse(s string) (any, error) {
	u, err := ParseURL(s)
	if err != nil {
		return nil, err
	}
	if tr.ptr {
		return u, nil
	}
	return *u, nil
}

func (urlTransform) Format(v any) (string, bool) {
	switch u := v.(type) {
	case *url.URL:
		if u == nil {
			return "", false
		}
		return FormatURL(u), true
	case url.URL:
		return u.String(), true
	}
	return "", false
}
