package bridge

import (
	"context"
	"fmt"
	"reflect"
)

// list returns a converter for slice type t, which maps the element
// converter over each item in order.
func (b *builder) list(t reflect.Type) (*converter, error) {
	elem, err := b.converter(t.Elem())
	if err != nil {
		return nil, err
	}
	elemNillable := nillableKinds.Has(t.Elem().Kind())
	return &converter{
		Kind: KindArray,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			ret := make([]any, v.Len())
			for i := range v.Len() {
				w, err := elem.Encode(ctx, v.Index(i))
				if err != nil {
					return nil, fmt.Errorf("index %d: %w", i, err)
				}
				ret[i] = w
			}
			return ret, nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			if wire == nil {
				v.SetZero()
				return nil
			}
			ws, ok := wire.([]any)
			if !ok {
				return kindErr(KindArray, wire)
			}
			ret := reflect.MakeSlice(t, len(ws), len(ws))
			for i, w := range ws {
				if err := decodeElem(ctx, elem, elemNillable, w, ret.Index(i)); err != nil {
					return fmt.Errorf("index %d: %w", i, err)
				}
			}
			v.Set(ret)
			return nil
		},
	}, nil
}

// dict returns a converter for map type t, whose keys must be
// strings. Keys are passed through verbatim, and values use the
// element converter.
func (b *builder) dict(t reflect.Type) (*converter, error) {
	if t.Key().Kind() != reflect.String {
		return nil, typeErr(t, "map keys must be strings, not %s", t.Key())
	}
	elem, err := b.converter(t.Elem())
	if err != nil {
		return nil, err
	}
	elemNillable := nillableKinds.Has(t.Elem().Kind())
	return &converter{
		Kind: KindObject,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			ret := make(map[string]any, v.Len())
			iter := v.MapRange()
			for iter.Next() {
				k := iter.Key().String()
				w, err := elem.Encode(ctx, iter.Value())
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", k, err)
				}
				ret[k] = w
			}
			return ret, nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			if wire == nil {
				v.SetZero()
				return nil
			}
			ws, ok := wire.(map[string]any)
			if !ok {
				return kindErr(KindObject, wire)
			}
			ret := reflect.MakeMapWithSize(t, len(ws))
			for k, w := range ws {
				ev := reflect.New(t.Elem()).Elem()
				if err := decodeElem(ctx, elem, elemNillable, w, ev); err != nil {
					return fmt.Errorf("key %q: %w", k, err)
				}
				ret.SetMapIndex(reflect.ValueOf(k).Convert(t.Key()), ev)
			}
			v.Set(ret)
			return nil
		},
	}, nil
}

// decodeElem decodes one collection element. Null elements decode to
// nil if the element type allows it.
func decodeElem(ctx context.Context, elem *converter, nillable bool, w any, v reflect.Value) error {
	if w == nil {
		if nillable {
			return nil
		}
		return kindErr(elem.Kind, w)
	}
	if !elem.Kind.Matches(w) {
		return kindErr(elem.Kind, w)
	}
	return elem.Decode(ctx, w, v)
}
