package adapty

import (
	"context"
	"errors"
	"fmt"

	"github.com/danderson/bridge"
)

// NativeError is an error payload received over the wire. It is
// either a [bridge.RemoteError] reported by the native SDK, or a
// [bridge.BridgeError] raised by the bridge layer, which is
// recognized by its error_type key.
//
// NativeError always encodes in the RemoteError form.
type NativeError struct {
	Err *bridge.Error
}

func (e NativeError) AsError() *bridge.Error {
	return e.Err
}

func (NativeError) WireKind() bridge.Kind { return bridge.KindObject }

func (e NativeError) MarshalWire(ctx context.Context) (any, error) {
	if e.Err == nil {
		return nil, errors.New("no error to encode")
	}
	re := bridge.RemoteError{
		Code:    int(e.Err.Code),
		Message: e.Err.Message,
	}
	if e.Err.Detail != "" {
		re.Detail = &e.Err.Detail
	}
	return bridge.Encode(ctx, re)
}

func (e *NativeError) UnmarshalWire(ctx context.Context, wire any) error {
	var conv bridge.ErrorConverter
	if obj, ok := wire.(map[string]any); ok && obj["error_type"] != nil {
		var be bridge.BridgeError
		if err := bridge.Decode(ctx, wire, &be); err != nil {
			return err
		}
		conv = be
	} else {
		var re bridge.RemoteError
		if err := bridge.Decode(ctx, wire, &re); err != nil {
			return err
		}
		conv = re
	}
	e.Err = conv.AsError()
	return nil
}

// variantErr returns the error for a tagged union value whose
// discriminant has no known variant.
func variantErr(typ, field, key, tag string) error {
	return &bridge.DecodeError{
		Type:   typ,
		Field:  field,
		Key:    key,
		Reason: fmt.Errorf("unknown %s %q", key, tag),
	}
}

// missingErr returns the error for a tagged union value that lacks
// the payload its variant requires.
func missingErr(typ, field, key string) error {
	return &bridge.DecodeError{
		Type:   typ,
		Field:  field,
		Key:    key,
		Reason: bridge.ErrMissingProperty,
	}
}

// payloadErr wraps an error decoding a tagged union's payload.
func payloadErr(typ, field, key string, err error) error {
	return &bridge.DecodeError{
		Type:   typ,
		Field:  field,
		Key:    key,
		Reason: err,
	}
}
