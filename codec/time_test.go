package codec

import (
	"testing"
	"time"

	typedjson "github.com/rmaeda/typedjson"
)

func TestTime_Codec_Basic(t *testing.T) {
	c := Time()

	in := "2025-01-01T00:00:00Z"
	got, err := c.Decode(in)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if !got.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time: %v", got)
	}

	out, err := c.Encode(got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != in {
		t.Fatalf("roundtrip mismatch: %s != %s", out, in)
	}
}

func TestTime_Codec_InvalidString(t *testing.T) {
	c := Time()
	_, err := c.Decode("2025/01/01")
	de, ok := typedjson.AsDecodeError(err)
	if !ok || de.Code != typedjson.CodeInvalid {
		t.Fatalf("expected invalid DecodeError, got %v", err)
	}
}

func TestTime_Codec_CanonicalizesZone(t *testing.T) {
	c := Time()
	loc := time.FixedZone("plus3", 3*3600)
	out, err := c.Encode(time.Date(2025, 5, 1, 3, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out != "2025-05-01T00:00:00Z" {
		t.Fatalf("expected UTC canonical output, got %q", out)
	}
}
