package bridge

import (
	"context"
	"fmt"
	"reflect"

	"github.com/goccy/go-json"

	"github.com/danderson/bridge/fragments"
)

// EncodeDocument returns the JSON text of the wire value w.
func EncodeDocument(w any) (string, error) {
	bs, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encoding document: %w", err)
	}
	return string(bs), nil
}

// DecodeDocument parses the JSON text s into a wire value.
func DecodeDocument(s string) (any, error) {
	ret, err := fragments.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return ret, nil
}

// document returns a converter that stores values of type t as JSON
// text in a wire string.
func (b *builder) document(t reflect.Type) (*converter, error) {
	inner, err := b.converter(t)
	if err != nil {
		return nil, err
	}
	return &converter{
		Kind: KindString,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			w, err := inner.Encode(ctx, v)
			if err != nil {
				return nil, err
			}
			return EncodeDocument(w)
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			s, ok := wire.(string)
			if !ok {
				return kindErr(KindString, wire)
			}
			w, err := DecodeDocument(s)
			if err != nil {
				return err
			}
			if w == nil {
				v.SetZero()
				return nil
			}
			if !inner.Kind.Matches(w) {
				return fmt.Errorf("document: %w", kindErr(inner.Kind, w))
			}
			return inner.Decode(ctx, w, v)
		},
	}, nil
}
