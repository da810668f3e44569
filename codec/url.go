package codec

import (
	"net/url"

	typedjson "github.com/rmaeda/typedjson"
)

// URL returns a Codec that converts between URL reference strings and
// *url.URL. Decode rejects malformed or empty references; Encode emits the
// normalized string form.
func URL() typedjson.Codec[string, *url.URL] { return urlCodec{} }

type urlCodec struct{}

func (urlCodec) Decode(a string) (*url.URL, error) {
	u, err := typedjson.ParseURL(a)
	if err != nil {
		return nil, &typedjson.DecodeError{
			Code:    typedjson.CodeInvalid,
			Message: "invalid url string",
			Cause:   err,
		}
	}
	return u, nil
}

func (urlCodec) Encode(b *url.URL) (string, error) {
	if b == nil {
		return "", &typedjson.DecodeError{
			Code:    typedjson.CodeInvalid,
			Message: "nil url",
		}
	}
	return typedjson.FormatURL(b), nil
}
