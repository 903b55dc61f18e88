package adapty

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danderson/bridge"
)

// A Transport carries calls to the native SDK.
type Transport interface {
	// Invoke calls method with the JSON text args, and returns the
	// JSON text of the call's result envelope.
	Invoke(ctx context.Context, method string, args string) (string, error)
}

// Call invokes method on t with the wire encoding of args, and
// decodes the result as [Dispatcher.ParseResult] does. A nil args is
// sent as an empty object.
//
// Transport failures are returned as [*bridge.Error] values with
// code [bridge.CodeUnknown]. Calls are not retried.
func (d *Dispatcher) Call(ctx context.Context, t Transport, method string, args any, tag Tag) (any, error) {
	log := d.log().With(zap.String("method", method))

	req := "{}"
	if args != nil {
		bs, err := bridge.Marshal(ctx, args)
		if err != nil {
			return nil, d.fail(log, err)
		}
		req = string(bs)
	}

	log.Debug("invoking", zap.String("args", req))
	resp, err := t.Invoke(ctx, method, req)
	if err != nil {
		return nil, d.fail(log, bridge.WrapError(bridge.CodeUnknown, fmt.Errorf("invoking %s: %w", method, err)))
	}
	return d.ParseResult(ctx, resp, tag)
}
