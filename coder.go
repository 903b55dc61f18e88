package bridge

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/goccy/go-json"

	"github.com/danderson/bridge/fragments"
)

// Marshaler is the interface implemented by types that can encode
// themselves to a wire value.
//
// WireKind is invoked on zero values of the Marshaler, and must
// return a constant value. MarshalWire must return a wire value of
// that kind: a string, bool, number, map[string]any or []any.
type Marshaler interface {
	WireKind() Kind
	MarshalWire(ctx context.Context) (any, error)
}

// Unmarshaler is the interface implemented by types that can decode
// themselves from a wire value.
//
// UnmarshalWire must have a pointer receiver. It is only called with
// non-null wire values of the kind declared by the type's WireKind.
type Unmarshaler interface {
	UnmarshalWire(ctx context.Context, wire any) error
}

// PostDecoder is implemented by struct types that need to fill in
// derived fields or defaults after their properties are decoded.
type PostDecoder interface {
	PostDecode(ctx context.Context) error
}

var (
	marshalerType   = reflect.TypeFor[Marshaler]()
	unmarshalerType = reflect.TypeFor[Unmarshaler]()
	timeType        = reflect.TypeFor[time.Time]()
)

// converter is the encoder/decoder pair for a Go type.
type converter struct {
	Kind   Kind
	Encode fragments.EncoderFunc
	Decode fragments.DecoderFunc
	// Schema is the struct schema backing the converter, or nil if
	// the type is not a plain struct.
	Schema *Schema
}

var converters cache[*converter]

// converterFor returns the converter for t.
func converterFor(t reflect.Type) (*converter, error) {
	if ret, ok := converters.Get(t); ok {
		return ret, nil
	}
	b := builder{inProgress: map[reflect.Type]bool{}}
	return b.converter(t)
}

// builder constructs converters for a type and all the types it
// refers to. A builder detects recursive types by tracking the types
// whose converters are under construction.
type builder struct {
	inProgress map[reflect.Type]bool
}

func (b *builder) converter(t reflect.Type) (*converter, error) {
	if ret, ok := converters.Get(t); ok {
		return ret, nil
	}
	if b.inProgress[t] {
		return nil, typeErr(t, "recursive type")
	}
	b.inProgress[t] = true
	defer delete(b.inProgress, t)

	ret, err := b.build(t)
	if err != nil {
		return nil, err
	}
	return converters.Put(t, ret), nil
}

func (b *builder) build(t reflect.Type) (*converter, error) {
	if t.Kind() == reflect.Pointer {
		return b.ptr(t)
	}

	marshals := t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType)
	unmarshals := reflect.PointerTo(t).Implements(unmarshalerType)
	switch {
	case marshals && unmarshals:
		return newMarshalConverter(t), nil
	case marshals:
		return nil, typeErr(t, "implements Marshaler but not Unmarshaler")
	case unmarshals:
		return nil, typeErr(t, "implements Unmarshaler but not Marshaler")
	}

	if t == timeType {
		return newTimestampConverter(), nil
	}

	switch t.Kind() {
	case reflect.String:
		return newStringConverter(), nil
	case reflect.Bool:
		return newBoolConverter(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return newIntConverter(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return newUintConverter(), nil
	case reflect.Float32, reflect.Float64:
		return newFloatConverter(), nil
	case reflect.Slice:
		return b.list(t)
	case reflect.Map:
		return b.dict(t)
	case reflect.Struct:
		return b.structConverter(t)
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return nil, typeErr(t, "non-empty interface")
		}
		return newAnyConverter(t), nil
	default:
		return nil, typeErr(t, "unsupported kind %s", t.Kind())
	}
}

func (b *builder) ptr(t reflect.Type) (*converter, error) {
	elem, err := b.converter(t.Elem())
	if err != nil {
		return nil, err
	}
	return &converter{
		Kind: elem.Kind,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			if v.IsNil() {
				return nil, nil
			}
			return elem.Encode(ctx, v.Elem())
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			if wire == nil {
				v.SetZero()
				return nil
			}
			nv := reflect.New(t.Elem())
			if err := elem.Decode(ctx, wire, nv.Elem()); err != nil {
				return err
			}
			v.Set(nv)
			return nil
		},
		Schema: elem.Schema,
	}, nil
}

func (b *builder) structConverter(t reflect.Type) (*converter, error) {
	s, err := b.schema(t)
	if err != nil {
		return nil, err
	}
	return &converter{
		Kind:   KindObject,
		Encode: s.encode,
		Decode: s.decode,
		Schema: s,
	}, nil
}

func newMarshalConverter(t reflect.Type) *converter {
	var zero Marshaler
	if t.Implements(marshalerType) {
		zero = reflect.Zero(t).Interface().(Marshaler)
	} else {
		zero = reflect.New(t).Interface().(Marshaler)
	}
	return &converter{
		Kind: zero.WireKind(),
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			var m Marshaler
			if t.Implements(marshalerType) {
				m = v.Interface().(Marshaler)
			} else {
				p := reflect.New(t)
				p.Elem().Set(v)
				m = p.Interface().(Marshaler)
			}
			return m.MarshalWire(ctx)
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			return v.Addr().Interface().(Unmarshaler).UnmarshalWire(ctx, wire)
		},
	}
}

func newAnyConverter(t reflect.Type) *converter {
	return &converter{
		Kind: KindAny,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			if v.IsNil() {
				return nil, nil
			}
			return v.Elem().Interface(), nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			if wire == nil {
				v.SetZero()
				return nil
			}
			v.Set(reflect.ValueOf(fragments.Floats(wire)))
			return nil
		},
	}
}

func newStringConverter() *converter {
	return &converter{
		Kind: KindString,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			return v.String(), nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			s, ok := wire.(string)
			if !ok {
				return kindErr(KindString, wire)
			}
			v.SetString(s)
			return nil
		},
	}
}

func newBoolConverter() *converter {
	return &converter{
		Kind: KindBool,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			return v.Bool(), nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			bv, ok := wire.(bool)
			if !ok {
				return kindErr(KindBool, wire)
			}
			v.SetBool(bv)
			return nil
		},
	}
}

func newIntConverter() *converter {
	return &converter{
		Kind: KindNumber,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			return v.Int(), nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			n, err := wireInt(wire)
			if err != nil {
				return err
			}
			if v.OverflowInt(n) {
				return fmt.Errorf("number %d overflows %s", n, v.Type())
			}
			v.SetInt(n)
			return nil
		},
	}
}

func newUintConverter() *converter {
	return &converter{
		Kind: KindNumber,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			return v.Uint(), nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			n, err := wireInt(wire)
			if err != nil {
				return err
			}
			if n < 0 || v.OverflowUint(uint64(n)) {
				return fmt.Errorf("number %d overflows %s", n, v.Type())
			}
			v.SetUint(uint64(n))
			return nil
		},
	}
}

func newFloatConverter() *converter {
	return &converter{
		Kind: KindNumber,
		Encode: func(ctx context.Context, v reflect.Value) (any, error) {
			return v.Float(), nil
		},
		Decode: func(ctx context.Context, wire any, v reflect.Value) error {
			f, err := wireFloat(wire)
			if err != nil {
				return err
			}
			v.SetFloat(f)
			return nil
		},
	}
}

// wireFloat returns the wire number w as a float64.
func wireFloat(w any) (float64, error) {
	if n, ok := w.(json.Number); ok {
		return n.Float64()
	}
	v := reflect.ValueOf(w)
	switch {
	case w == nil:
		return 0, kindErr(KindNumber, w)
	case intKinds.Has(v.Kind()):
		return float64(v.Int()), nil
	case uintKinds.Has(v.Kind()):
		return float64(v.Uint()), nil
	case floatKinds.Has(v.Kind()):
		return v.Float(), nil
	default:
		return 0, kindErr(KindNumber, w)
	}
}

// wireInt returns the wire number w as an int64. It returns an error
// if w has a fractional part or doesn't fit in an int64.
func wireInt(w any) (int64, error) {
	if n, ok := w.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	v := reflect.ValueOf(w)
	switch {
	case w == nil:
		return 0, kindErr(KindNumber, w)
	case intKinds.Has(v.Kind()):
		return v.Int(), nil
	case uintKinds.Has(v.Kind()):
		if v.Uint() > math.MaxInt64 {
			return 0, fmt.Errorf("number %d is out of range", v.Uint())
		}
		return int64(v.Uint()), nil
	}
	f, err := wireFloat(w)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("expected integer, got %v", f)
	}
	return int64(f), nil
}

// Encode returns the wire representation of v.
//
// Encode traverses the value v recursively. If an encountered value
// implements [Marshaler], Encode calls MarshalWire on it to produce
// its wire value.
//
// Otherwise, Encode uses the following type-dependent default
// encodings:
//
// Strings and bools encode as themselves. Integer and float values
// encode as wire numbers.
//
// [time.Time] values encode as RFC 3339 timestamp strings with
// millisecond precision, in UTC. See [FormatTimestamp].
//
// Slices encode as arrays. A nil slice encodes as an empty array.
//
// Maps with string keys encode as objects with the same keys.
//
// Structs encode as objects according to their [Schema]. Each
// exported field must carry a "wire" struct tag naming its wire key:
//
//	struct Subscription {
//	    // A required property.
//	    VendorProductID string `wire:"vendor_product_id,required"`
//	    // An optional property. Optional properties must be
//	    // nillable, and are omitted from the wire when nil.
//	    RenewedAt *time.Time `wire:"renewed_at"`
//	    // Dotted keys are stored in nested objects.
//	    Token *string `wire:"customer_identity_parameters.app_account_token"`
//	    // An object stored on the wire as JSON text in a string.
//	    Data map[string]any `wire:"data,required,document"`
//	    // Properties only reported by one platform are grouped in a
//	    // struct pointer, and merged into the same flat wire object.
//	    Android *SubscriptionAndroid `wire:",android"`
//	    // Fields tagged "-" are not part of the wire representation.
//	    Derived string `wire:"-"`
//	}
//
// An exported field without a wire tag causes Encode to return an
// [EncodeError], as it indicates that the struct and its wire mapping
// have drifted apart.
//
// Pointer values encode as the value pointed to. A nil pointer
// encodes as null.
//
// 'any' values encode as their inner value, which must already be a
// valid wire value.
//
// Channel, function, complex, array and non-empty interface values
// cannot be encoded. Recursive types cannot be encoded either.
// Attempting to encode such values causes Encode to return a
// [TypeError].
//
// All errors returned by Encode are [*Error] values with code
// [CodeEncodingFailed], wrapping the underlying [EncodeError] or
// [TypeError].
func Encode(ctx context.Context, v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	val := reflect.ValueOf(v)
	c, err := converterFor(val.Type())
	if err != nil {
		return nil, boundaryErr(ctx, CodeEncodingFailed, err)
	}
	ret, err := c.Encode(withNested(ctx), val)
	if err != nil {
		return nil, boundaryErr(ctx, CodeEncodingFailed, err)
	}
	return ret, nil
}

// Decode reads the wire value wire into the value pointed to by
// ptr. If wire is a string and ptr's type does not decode from
// strings, wire is parsed as JSON text first.
//
// Decode uses the inverse of the encodings that [Encode] uses,
// allocating maps, slices, and pointers as necessary. Null wire
// values and absent optional keys leave the corresponding Go values
// at their zero value. Only an absent required key is an error.
//
// If a required property is absent, or a wire value has the wrong
// kind for the Go value it decodes into, Decode returns a
// [DecodeError] naming the offending field. Properties of a platform
// group are only required when decoding with a matching
// [WithPlatform] context.
//
// Decode is all or nothing: ptr is only written if decoding
// succeeds. All errors returned by Decode are [*Error] values with
// code [CodeDecodingFailed].
func Decode(ctx context.Context, wire any, ptr any) error {
	if err := decode(withNested(ctx), wire, ptr); err != nil {
		return boundaryErr(ctx, CodeDecodingFailed, err)
	}
	return nil
}

func decode(ctx context.Context, wire any, ptr any) error {
	v := reflect.ValueOf(ptr)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return errors.New("can't decode into a non-pointer or nil pointer")
	}
	t := v.Type().Elem()
	c, err := converterFor(t)
	if err != nil {
		return err
	}

	if s, ok := wire.(string); ok && c.Kind != KindString && c.Kind != KindAny {
		if wire, err = fragments.Parse(s); err != nil {
			return &DecodeError{Type: t.String(), Reason: err}
		}
	}
	if !c.Kind.Matches(wire) && !(wire == nil && nillableKinds.Has(t.Kind())) {
		return &DecodeError{Type: t.String(), Reason: kindErr(c.Kind, wire)}
	}

	nv := reflect.New(t)
	if err := c.Decode(ctx, wire, nv.Elem()); err != nil {
		var de *DecodeError
		if !errors.As(err, &de) {
			err = &DecodeError{Type: t.String(), Reason: err}
		}
		return err
	}
	v.Elem().Set(nv.Elem())
	return nil
}

// boundaryErr converts err to an [*Error] with the given code, unless
// ctx belongs to an enclosing Encode or Decode call. Nested calls
// made by custom converters return raw errors, which the outermost
// call wraps exactly once.
func boundaryErr(ctx context.Context, code ErrorCode, err error) error {
	if isNested(ctx) {
		return err
	}
	return codeErr(code, err)
}

// Marshal returns the JSON text of v's wire representation.
func Marshal(ctx context.Context, v any) ([]byte, error) {
	w, err := Encode(ctx, v)
	if err != nil {
		return nil, err
	}
	bs, err := json.Marshal(w)
	if err != nil {
		return nil, boundaryErr(ctx, CodeEncodingFailed, err)
	}
	return bs, nil
}

// Unmarshal parses the JSON text data and decodes it into the value
// pointed to by ptr.
func Unmarshal(ctx context.Context, data []byte, ptr any) error {
	w, err := fragments.Parse(string(data))
	if err != nil {
		return boundaryErr(ctx, CodeDecodingFailed, &DecodeError{Type: fmt.Sprintf("%T", ptr), Reason: err})
	}
	return Decode(ctx, w, ptr)
}

// Coder encodes and decodes values of type T.
type Coder[T any] struct {
	conv *converter
}

// NewCoder returns a Coder for T. It returns an error if T cannot be
// represented on the wire.
func NewCoder[T any]() (*Coder[T], error) {
	c, err := converterFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, codeErr(CodeEncodingFailed, err)
	}
	return &Coder[T]{c}, nil
}

// Schema returns the schema of T, or nil if T is not a struct.
func (c *Coder[T]) Schema() *Schema {
	return c.conv.Schema
}

// Encode returns the wire representation of v.
func (c *Coder[T]) Encode(ctx context.Context, v T) (any, error) {
	ret, err := c.conv.Encode(withNested(ctx), reflect.ValueOf(&v).Elem())
	if err != nil {
		return nil, boundaryErr(ctx, CodeEncodingFailed, err)
	}
	return ret, nil
}

// Decode returns the value of type T represented by wire.
func (c *Coder[T]) Decode(ctx context.Context, wire any) (T, error) {
	var ret T
	if err := Decode(ctx, wire, &ret); err != nil {
		return ret, err
	}
	return ret, nil
}
