package bridge

import (
	"reflect"

	"github.com/creachadair/mds/mapset"
	"github.com/goccy/go-json"
)

// Kind is the primitive kind of a wire value.
type Kind int

const (
	// KindAny accepts any non-null wire value.
	KindAny Kind = iota
	KindString
	KindBool
	KindNumber
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "invalid kind"
	}
}

// Matches reports whether the wire value v is of kind k. Null never
// matches.
func (k Kind) Matches(v any) bool {
	vk, ok := KindOf(v)
	if !ok {
		return false
	}
	return k == KindAny || k == vk
}

// KindOf returns the kind of the wire value v. It returns false if v
// is null or not a wire value.
func KindOf(v any) (Kind, bool) {
	switch v.(type) {
	case nil:
		return 0, false
	case string:
		return KindString, true
	case bool:
		return KindBool, true
	case map[string]any:
		return KindObject, true
	case []any:
		return KindArray, true
	case json.Number:
		return KindNumber, true
	}
	if numberKinds.Has(reflect.TypeOf(v).Kind()) {
		return KindNumber, true
	}
	return 0, false
}

// describeWire returns the kind name of a wire value, for use in
// error messages.
func describeWire(v any) string {
	if v == nil {
		return "null"
	}
	k, ok := KindOf(v)
	if !ok {
		return reflect.TypeOf(v).String()
	}
	return k.String()
}

var (
	intKinds = mapset.New(
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
	)
	uintKinds = mapset.New(
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
	)
	floatKinds = mapset.New(
		reflect.Float32,
		reflect.Float64,
	)

	// numberKinds is the set of reflect.Kinds that encode as wire
	// numbers.
	numberKinds = mapset.New(
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
	)

	// nillableKinds is the set of reflect.Kinds that can represent an
	// absent optional value.
	nillableKinds = mapset.New(
		reflect.Pointer,
		reflect.Slice,
		reflect.Map,
		reflect.Interface,
	)
)
