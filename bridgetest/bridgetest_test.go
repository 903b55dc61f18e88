package bridgetest_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danderson/bridge/bridgetest"
)

type point struct {
	X int  `wire:"x,required"`
	Y *int `wire:"y"`
}

func TestRoundTrip(t *testing.T) {
	y := 4
	got := bridgetest.RoundTrip(t, context.Background(), point{X: 1, Y: &y})
	if want := `{"x":1,"y":4}`; got != want {
		t.Errorf("RoundTrip wire = %s, want %s", got, want)
	}
}

func TestNative(t *testing.T) {
	ctx := context.Background()
	n := bridgetest.NewNative()
	n.Respond("get_profile", `{"success":1}`)
	n.Respond("get_profile", `{"success":2}`)

	for _, want := range []string{`{"success":1}`, `{"success":2}`} {
		got, err := n.Invoke(ctx, "get_profile", "{}")
		if err != nil {
			t.Fatalf("Invoke failed: %v", err)
		}
		if got != want {
			t.Errorf("Invoke = %s, want %s", got, want)
		}
	}
	if _, err := n.Invoke(ctx, "get_profile", `{"a":1}`); err == nil {
		t.Error("Invoke with no queued response succeeded, want error")
	}

	wantCalls := []bridgetest.Call{
		{"get_profile", "{}"},
		{"get_profile", "{}"},
		{"get_profile", `{"a":1}`},
	}
	if diff := cmp.Diff(n.Calls(), wantCalls); diff != "" {
		t.Errorf("wrong calls (-got+want):\n%s", diff)
	}
}

func TestLogger(t *testing.T) {
	log := bridgetest.Logger(t)
	log.Debug("hello from the test logger")
}
