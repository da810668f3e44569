package typedjson

import (
	"errors"
	"fmt"
	"strconv"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissing ErrorCode = "missing" // Key absent from the object being decoded.
	CodeInvalid ErrorCode = "invalid" // Key present but the value did not match the target type.
)

// ErrorCode classifies a decode failure. Exactly two kinds exist; the encode
// direction has none (it degrades to null instead of failing).
type ErrorCode string

// DecodeError is the single structured failure produced by the decode
// direction. Parameter is the dotted/indexed breadcrumb from the decode root
// to the failing field, e.g. "user.address.city" or "items[2].id". Each
// dispatch layer re-throws a child failure with its own key or index segment
// prepended, so the surfaced Parameter is always the full path.
type DecodeError struct {
	Code      ErrorCode
	Parameter string
	Message   string
	Cause     error // Optional: underlying error.
}

// Error renders "code at parameter: message".
func (e *DecodeError) Error() string {
	b := e.Parameter
	if b == "" {
		b = "<root>"
	}
	if e.Message != "" {
		return fmt.Sprintf("%s at %s: %s", e.Code, b, e.Message)
	}
	return fmt.Sprintf("%s at %s", e.Code, b)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// AsDecodeError extracts a *DecodeError from an error using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// IsMissing reports whether err is a DecodeError with CodeMissing. Callers use
// this to convert absence into "no value" rather than the decoder carrying a
// distinct optional path.
func IsMissing(err error) bool {
	de, ok := AsDecodeError(err)
	return ok && de.Code == CodeMissing
}

// ---- constructors and path composition ----

func missingErr(key string) *DecodeError {
	return &DecodeError{Code: CodeMissing, Parameter: key}
}

func invalidErr(key, msg string) *DecodeError {
	return &DecodeError{Code: CodeInvalid, Parameter: key, Message: msg}
}

func invalidCause(key, msg string, cause error) *DecodeError {
	return &DecodeError{Code: CodeInvalid, Parameter: key, Message: msg, Cause: cause}
}

// nestedErr rewrites a child failure under key, preserving the child's code.
// Non-DecodeError children surface as CodeInvalid on key itself.
func nestedErr(key string, err error) *DecodeError {
	if child, ok := AsDecodeError(err); ok {
		return &DecodeError{
			Code:      child.Code,
			Parameter: key + "." + child.Parameter,
			Message:   child.Message,
			Cause:     child.Cause,
		}
	}
	return &DecodeError{Code: CodeInvalid, Parameter: key, Cause: err}
}

// indexedErr rewrites an array-element failure under key[i]. Indices are
// zero-based and refer to source array position.
func indexedErr(key string, i int, err error) *DecodeError {
	seg := key + "[" + strconv.Itoa(i) + "]"
	if child, ok := AsDecodeError(err); ok {
		return &DecodeError{
			Code:      child.Code,
			Parameter: seg + "." + child.Parameter,
			Message:   child.Message,
			Cause:     child.Cause,
		}
	}
	return &DecodeError{Code: CodeInvalid, Parameter: seg, Cause: err}
}
