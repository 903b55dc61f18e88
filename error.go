package bridge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrMissingProperty is the reason reported when a required property
// is absent from the wire data.
var ErrMissingProperty = errors.New("missing required property")

// TypeError is the error returned when a Go type cannot be
// represented on the wire.
type TypeError struct {
	// Type is the name of the type that caused the error.
	Type string
	// Reason is an explanation of why the type isn't representable.
	Reason error
}

func (e TypeError) Error() string {
	return fmt.Sprintf("wire cannot represent %s: %s", e.Type, e.Reason)
}

func (e TypeError) Unwrap() error {
	return e.Reason
}

func typeErr(t reflect.Type, reason string, args ...any) error {
	ts := ""
	if t != nil {
		ts = t.String()
	}
	return TypeError{ts, fmt.Errorf(reason, args...)}
}

// EncodeError is the error returned when a model value cannot be
// encoded. This usually means that a type's schema and its fields
// have drifted apart.
type EncodeError struct {
	// Type is the name of the type being encoded.
	Type string
	// Field is the Go field that failed to encode, if any.
	Field string
	// Reason is the underlying failure.
	Reason error
}

func (e *EncodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("encoding %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("encoding %s field %s: %s", e.Type, e.Field, e.Reason)
}

func (e *EncodeError) Unwrap() error {
	return e.Reason
}

// DecodeError is the error returned when wire data cannot be decoded
// into a model value.
type DecodeError struct {
	// Type is the name of the type being decoded.
	Type string
	// Field is the Go field that failed to decode, if any.
	Field string
	// Key is the wire key of Field.
	Key string
	// Reason is the underlying failure. It is ErrMissingProperty for
	// absent required properties, and a KindError for values of the
	// wrong kind.
	Reason error
}

func (e *DecodeError) Error() string {
	var ret strings.Builder
	ret.WriteString("decoding ")
	ret.WriteString(e.Type)
	if e.Field != "" {
		fmt.Fprintf(&ret, " field %s (%s)", e.Field, e.Key)
	}
	fmt.Fprintf(&ret, ": %s", e.Reason)
	return ret.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Reason
}

// KindError is the reason given when a wire value has the wrong
// primitive kind.
type KindError struct {
	Expected Kind
	// Received is the kind name of the value found on the wire, or
	// "null".
	Received string
}

func (e KindError) Error() string {
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Received)
}

func kindErr(want Kind, got any) error {
	return KindError{want, describeWire(got)}
}
