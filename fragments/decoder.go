package fragments

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
)

// A DecoderFunc reads the wire value into val.
type DecoderFunc func(ctx context.Context, wire any, val reflect.Value) error

// A Decoder reads values out of a wire object by [Path].
type Decoder struct {
	// In is the wire value to read from. If In is a string, it is
	// parsed as JSON text on first use.
	In any

	parsed bool
}

// Root returns the decoder's wire value, parsing it first if it was
// provided as JSON text.
func (d *Decoder) Root() (any, error) {
	if d.parsed {
		return d.In, nil
	}
	if s, ok := d.In.(string); ok {
		v, err := Parse(s)
		if err != nil {
			return nil, err
		}
		d.In = v
	}
	d.parsed = true
	return d.In, nil
}

// Object returns the decoder's wire value as a wire object. It
// returns an error if the value is not an object.
func (d *Decoder) Object() (map[string]any, error) {
	root, err := d.Root()
	if err != nil {
		return nil, err
	}
	m, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("wire value is %s, not an object", describe(root))
	}
	return m, nil
}

// Get returns the value stored at path p, and whether the key was
// present. A key that holds JSON null is reported as present with a
// nil value. Missing intermediate objects, or intermediate values
// that are not objects, report the key as absent.
func (d *Decoder) Get(p Path) (any, bool, error) {
	cur, err := d.Object()
	if err != nil {
		return nil, false, err
	}
	for _, k := range p[:len(p)-1] {
		next, ok := cur[k].(map[string]any)
		if !ok {
			return nil, false, nil
		}
		cur = next
	}
	v, ok := cur[p[len(p)-1]]
	return v, ok, nil
}

// Parse parses JSON text into a wire value. Numbers are returned as
// json.Number, so that integers keep their full precision. Objects
// are returned as map[string]any and arrays as []any.
func Parse(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var ret any
	if err := dec.Decode(&ret); err != nil {
		return nil, fmt.Errorf("parsing wire JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("parsing wire JSON: trailing data after value")
	}
	return ret, nil
}

// Floats returns w with every json.Number in it replaced by its
// float64 value, for handing wire values to code that expects
// encoding/json's default number type. Objects and arrays are copied,
// w itself is not modified. Numbers that overflow a float64 are left
// as json.Number.
func Floats(w any) any {
	switch v := w.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return v
		}
		return f
	case map[string]any:
		ret := make(map[string]any, len(v))
		for k, e := range v {
			ret[k] = Floats(e)
		}
		return ret
	case []any:
		ret := make([]any, len(v))
		for i, e := range v {
			ret[i] = Floats(e)
		}
		return ret
	default:
		return w
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case float64, json.Number:
		return "a number"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	default:
		return fmt.Sprintf("a %T", v)
	}
}
