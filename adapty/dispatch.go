package adapty

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/danderson/bridge"
	"github.com/danderson/bridge/fragments"
)

// A Dispatcher decodes call results and events received from the
// native SDK. The zero Dispatcher is ready to use.
type Dispatcher struct {
	// Logger receives debug logs of every decode. If nil, nothing is
	// logged.
	Logger *zap.Logger
	// OnError, if set, is called with every error the Dispatcher
	// returns, including errors reported by the SDK.
	OnError func(*bridge.Error)
}

func (d *Dispatcher) log() *zap.Logger {
	if d == nil || d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// fail converts err to a [*bridge.Error], reports it and returns it.
func (d *Dispatcher) fail(log *zap.Logger, err error) *bridge.Error {
	ret := bridge.WrapError(bridge.CodeDecodingFailed, err)
	log.Debug("decode failed", zap.Error(ret), zap.Stringer("code", ret.Code))
	if d != nil && d.OnError != nil {
		d.OnError(ret)
	}
	return ret
}

// Envelope is the wrapper around every call result.
type Envelope struct {
	// Success is whether the call succeeded. If true, Payload is the
	// call's result, otherwise it is an error payload.
	Success bool
	// Payload is the raw wire value. Its numbers are json.Number
	// values.
	Payload any
}

// ParseEnvelope parses the JSON text raw as a result envelope.
func ParseEnvelope(raw string) (Envelope, error) {
	w, err := fragments.Parse(raw)
	if err != nil {
		return Envelope{}, envelopeErr(fmt.Errorf("not valid JSON: %w", err))
	}
	obj, ok := w.(map[string]any)
	if !ok {
		return Envelope{}, envelopeErr(bridge.KindError{Expected: bridge.KindObject, Received: kindName(w)})
	}
	if p, ok := obj["success"]; ok {
		return Envelope{Success: true, Payload: p}, nil
	}
	if p, ok := obj["error"]; ok {
		return Envelope{Success: false, Payload: p}, nil
	}
	return Envelope{}, envelopeErr(errors.New(`envelope missing "success" or "error" discriminant`))
}

func envelopeErr(reason error) error {
	return &bridge.DecodeError{Type: "envelope", Reason: reason}
}

// ParseResult decodes the result envelope raw of a call whose
// success payload has type tag.
//
// For primitive tags, the success payload is returned undecoded, with
// numbers as float64. Otherwise, it is decoded into the Go type named
// by tag, see [TypeOf]. If the envelope carries an error payload,
// ParseResult returns the [*bridge.Error] it describes, whatever tag
// is.
//
// All errors returned by ParseResult are [*bridge.Error] values.
func (d *Dispatcher) ParseResult(ctx context.Context, raw string, tag Tag) (any, error) {
	log := d.log().With(zap.String("tag", string(tag)))
	log.Debug("decoding result", zap.String("input", raw))

	env, err := ParseEnvelope(raw)
	if err != nil {
		return nil, d.fail(log, err)
	}

	if !env.Success {
		v, err := TagError.decode(ctx, env.Payload)
		if err != nil {
			return nil, d.fail(log, err)
		}
		return nil, d.fail(log, v.(*bridge.Error))
	}

	ret, err := tag.decode(ctx, env.Payload)
	if err != nil {
		return nil, d.fail(log, err)
	}
	return ret, nil
}

// ParseResultAs is like [Dispatcher.ParseResult], but additionally
// checks that the decoded result has type T.
func ParseResultAs[T any](ctx context.Context, d *Dispatcher, raw string, tag Tag) (T, error) {
	var zero T
	v, err := d.ParseResult(ctx, raw, tag)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	ret, ok := v.(T)
	if !ok {
		return zero, d.fail(d.log(), &bridge.DecodeError{
			Type:   string(tag),
			Reason: fmt.Errorf("result is %T, not %T", v, zero),
		})
	}
	return ret, nil
}
