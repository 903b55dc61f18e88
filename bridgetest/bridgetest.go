// Package bridgetest provides helpers to test code that talks to the
// native SDK over the bridge.
package bridgetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/danderson/bridge"
)

// Logger returns a debug logger that writes to t.Logf.
func Logger(t testing.TB) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))
}

// RoundTrip encodes v to JSON text, decodes it back and checks that
// the result equals v. It returns the JSON text. It causes an
// immediate test failure with t.Fatal if any step fails.
//
// Decoding uses ctx, which should carry the platform of v's platform
// groups, if any.
func RoundTrip[T any](t testing.TB, ctx context.Context, v T, opts ...cmp.Option) string {
	t.Helper()
	bs, err := bridge.Marshal(ctx, v)
	if err != nil {
		t.Fatalf("Marshal(%T) failed: %v", v, err)
	}
	var got T
	if err := bridge.Unmarshal(ctx, bs, &got); err != nil {
		t.Fatalf("Unmarshal(%s) failed: %v", bs, err)
	}
	if diff := cmp.Diff(got, v, opts...); diff != "" {
		t.Fatalf("round trip of %T through %s is wrong (-got+want):\n%s", v, bs, diff)
	}
	return string(bs)
}

// Call is a call made to a [Native].
type Call struct {
	Method string
	Args   string
}

// Native is a scripted stand-in for the native SDK. It implements
// the Transport interface of package adapty.
//
// A Native is safe for concurrent use.
type Native struct {
	mu        sync.Mutex
	responses map[string][]string
	calls     []Call
}

// NewNative returns a Native with no scripted responses.
func NewNative() *Native {
	return &Native{
		responses: map[string][]string{},
	}
}

// Respond queues resp as the JSON text of the result of the next
// call to method. Responses to each method are returned in the order
// they were queued.
func (n *Native) Respond(method, resp string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.responses[method] = append(n.responses[method], resp)
}

// Invoke records the call and returns the next queued response for
// method. It returns an error if no response is queued.
func (n *Native) Invoke(ctx context.Context, method string, args string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, Call{method, args})
	q := n.responses[method]
	if len(q) == 0 {
		return "", fmt.Errorf("no response queued for method %q", method)
	}
	n.responses[method] = q[1:]
	return q[0], nil
}

// Calls returns the calls made so far, in order.
func (n *Native) Calls() []Call {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Call(nil), n.calls...)
}
