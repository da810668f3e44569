package codec

import (
	"time"

	typedjson "github.com/rmaeda/typedjson"
)

// Time returns a Codec that converts between fixed-layout date strings and
// time.Time. Decode rejects strings that do not match typedjson.TimeLayout;
// Encode emits the canonical UTC form, so decode(encode(t)) equals t at
// second precision.
func Time() typedjson.Codec[string, time.Time] { return timeCodec{} }

type timeCodec struct{}

func (timeCodec) Decode(a string) (time.Time, error) {
	t, err := typedjson.ParseTime(a)
	if err != nil {
		return time.Time{}, &typedjson.DecodeError{
			Code:    typedjson.CodeInvalid,
			Message: "invalid date string",
			Cause:   err,
		}
	}
	return t, nil
}

func (timeCodec) Encode(b time.Time) (string, error) {
	return typedjson.FormatTime(b), nil
}
