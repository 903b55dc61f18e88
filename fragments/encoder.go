package fragments

import (
	"context"
	"fmt"
	"reflect"
)

// An EncoderFunc converts val into its wire representation.
type EncoderFunc func(ctx context.Context, val reflect.Value) (any, error)

// An Encoder assembles a wire object from values stored at
// [Path]s. Intermediate objects are created as needed.
type Encoder struct {
	// Out is the wire object under construction. If nil, it is
	// allocated on the first call to [Encoder.Set].
	Out map[string]any
}

// Set stores v at path p, creating intermediate objects as
// needed. It returns an error if an intermediate key already holds a
// non-object value.
func (e *Encoder) Set(p Path, v any) error {
	if len(p) == 0 {
		return fmt.Errorf("cannot set value at empty path")
	}
	if e.Out == nil {
		e.Out = map[string]any{}
	}
	cur := e.Out
	for i, k := range p[:len(p)-1] {
		next, ok := cur[k]
		if !ok {
			m := map[string]any{}
			cur[k] = m
			cur = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s: %s is a %T, not an object", p, p[:i+1], next)
		}
		cur = m
	}
	cur[p[len(p)-1]] = v
	return nil
}

// Object returns the assembled wire object, never nil.
func (e *Encoder) Object() map[string]any {
	if e.Out == nil {
		return map[string]any{}
	}
	return e.Out
}
