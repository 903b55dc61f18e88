package bridge

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/danderson/bridge/fragments"
)

// Property describes how one struct field maps to a wire key.
type Property struct {
	// Name is the Go field name.
	Name string
	// Key is the wire key of the property. Keys with more than one
	// fragment are stored in nested wire objects.
	Key fragments.Path
	// Required is whether the property must be present in decoded
	// wire data.
	Required bool
	// Document is whether the property is stored on the wire as an
	// embedded JSON document in a string.
	Document bool
	// Kind is the primitive kind of the property's wire value.
	Kind Kind
	// Type is the Go type of the field.
	Type reflect.Type

	index []int
	conv  *converter
}

// Group is a set of properties that only one platform reports. A
// group is stored in the model as a pointer to a struct, and shares
// the flat wire object with the other properties of its schema.
//
// A nil group pointer means the wire data has none of the group's
// keys. A group whose properties are all absent encodes to no keys,
// so it decodes back as nil.
type Group struct {
	Platform Platform
	// Name is the Go field name holding the group.
	Name string
	// Type is the struct type pointed to by the group field.
	Type       reflect.Type
	Properties []*Property

	index []int
}

// Schema is the wire mapping of a Go struct type.
type Schema struct {
	// Name is the struct's name, for use in diagnostics.
	Name string
	// Type is the struct's type.
	Type       reflect.Type
	Properties []*Property
	Groups     []*Group

	postDecode bool
}

// Group returns the schema's group for platform p, or nil.
func (s *Schema) Group(p Platform) *Group {
	for _, g := range s.Groups {
		if g.Platform == p {
			return g
		}
	}
	return nil
}

func (s *Schema) String() string {
	var ret strings.Builder
	fmt.Fprintf(&ret, "%s, properties:\n", s.Name)
	for _, p := range s.Properties {
		ret.WriteString(p.String())
		ret.WriteByte('\n')
	}
	for _, g := range s.Groups {
		fmt.Fprintf(&ret, "%s group %s:\n", g.Platform, g.Name)
		for _, p := range g.Properties {
			ret.WriteString("  ")
			ret.WriteString(p.String())
			ret.WriteByte('\n')
		}
	}
	return ret.String()
}

func (p *Property) String() string {
	var opts []string
	if p.Required {
		opts = append(opts, "required")
	}
	if p.Document {
		opts = append(opts, "document")
	}
	optStr := ""
	if len(opts) > 0 {
		optStr = " (" + strings.Join(opts, ", ") + ")"
	}
	return fmt.Sprintf("%s: %s as %s %q%s", p.Name, p.Type, p.Kind, p.Key, optStr)
}

// SchemaFor returns the Schema for t, which must be a struct or a
// pointer to a struct.
func SchemaFor(t reflect.Type) (*Schema, error) {
	t = derefType(t)
	if t.Kind() != reflect.Struct {
		return nil, typeErr(t, "not a struct")
	}
	c, err := converterFor(t)
	if err != nil {
		return nil, err
	}
	if c.Schema == nil {
		return nil, typeErr(t, "has a custom wire encoding")
	}
	return c.Schema, nil
}

// SchemaOf returns the Schema for T.
func SchemaOf[T any]() (*Schema, error) {
	return SchemaFor(reflect.TypeFor[T]())
}

// tagInfo is the information contained in a "wire" struct tag.
type tagInfo struct {
	Key      string
	Skip     bool
	Required bool
	Document bool
	Platform Platform
}

// parseStructTag returns the information contained in field's
// "wire" struct tag, and whether the tag is present at all.
func parseStructTag(field reflect.StructField) (tagInfo, bool, error) {
	tag, ok := field.Tag.Lookup("wire")
	if !ok {
		return tagInfo{}, false, nil
	}
	if tag == "-" {
		return tagInfo{Skip: true}, true, nil
	}
	key, opts, _ := strings.Cut(tag, ",")
	ret := tagInfo{Key: key}
	for _, o := range strings.Split(opts, ",") {
		switch o {
		case "":
		case "required":
			ret.Required = true
		case "document":
			ret.Document = true
		case "ios":
			ret.Platform = PlatformIOS
		case "android":
			ret.Platform = PlatformAndroid
		default:
			return tagInfo{}, true, fmt.Errorf("unknown wire tag option %q", o)
		}
	}
	return ret, true, nil
}

var postDecoderType = reflect.TypeFor[PostDecoder]()

// schema builds the Schema for struct type t.
func (b *builder) schema(t reflect.Type) (*Schema, error) {
	ret := &Schema{
		Name:       t.String(),
		Type:       t,
		postDecode: reflect.PointerTo(t).Implements(postDecoderType),
	}

	for field := range structFields(t, nil) {
		tag, ok, err := parseStructTag(field)
		if err != nil {
			return nil, &EncodeError{ret.Name, field.Name, err}
		}
		if tag.Skip {
			continue
		}
		if field.Anonymous {
			return nil, &EncodeError{ret.Name, field.Name, errors.New("embedded fields must be untagged struct values")}
		}
		if !field.IsExported() {
			if ok {
				return nil, &EncodeError{ret.Name, field.Name, errors.New("wire tag on unexported field")}
			}
			continue
		}
		if !ok {
			return nil, &EncodeError{ret.Name, field.Name, errors.New("exported field has no wire tag")}
		}

		if tag.Platform != "" {
			g, err := b.group(ret, field, tag)
			if err != nil {
				return nil, err
			}
			ret.Groups = append(ret.Groups, g)
			continue
		}

		p, err := b.property(ret, field, tag)
		if err != nil {
			return nil, err
		}
		ret.Properties = append(ret.Properties, p)
	}

	if err := checkKeys(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// group builds the platform Group held in field.
func (b *builder) group(s *Schema, field reflect.StructField, tag tagInfo) (*Group, error) {
	fail := func(msg string, args ...any) error {
		return &EncodeError{s.Name, field.Name, fmt.Errorf(msg, args...)}
	}
	if tag.Key != "" || tag.Required || tag.Document {
		return nil, fail("platform group tag must not have a key or other options")
	}
	if field.Type.Kind() != reflect.Pointer || field.Type.Elem().Kind() != reflect.Struct {
		return nil, fail("platform group must be a pointer to a struct, not %s", field.Type)
	}
	if s.Group(tag.Platform) != nil {
		return nil, fail("duplicate %s group", tag.Platform)
	}

	ret := &Group{
		Platform: tag.Platform,
		Name:     field.Name,
		Type:     field.Type.Elem(),
		index:    field.Index,
	}
	for gf := range structFields(ret.Type, nil) {
		gtag, ok, err := parseStructTag(gf)
		if err != nil {
			return nil, &EncodeError{ret.Type.String(), gf.Name, err}
		}
		if gtag.Skip || (!ok && !gf.IsExported()) {
			continue
		}
		if !ok {
			return nil, &EncodeError{ret.Type.String(), gf.Name, errors.New("exported field has no wire tag")}
		}
		if gtag.Platform != "" {
			return nil, &EncodeError{ret.Type.String(), gf.Name, errors.New("platform groups cannot be nested")}
		}
		p, err := b.property(s, gf, gtag)
		if err != nil {
			return nil, err
		}
		ret.Properties = append(ret.Properties, p)
	}
	return ret, nil
}

// property builds the Property for field.
func (b *builder) property(s *Schema, field reflect.StructField, tag tagInfo) (*Property, error) {
	fail := func(err error) error {
		return &EncodeError{s.Name, field.Name, err}
	}
	key := fragments.ParsePath(tag.Key)
	if key == nil {
		return nil, fail(fmt.Errorf("invalid wire key %q", tag.Key))
	}
	if !tag.Required && !nillableKinds.Has(field.Type.Kind()) {
		return nil, fail(fmt.Errorf("optional property must be a pointer, slice, map or interface, not %s", field.Type))
	}

	ret := &Property{
		Name:     field.Name,
		Key:      key,
		Required: tag.Required,
		Document: tag.Document,
		Type:     field.Type,
		index:    field.Index,
	}
	var err error
	if tag.Document {
		ret.conv, err = b.document(field.Type)
	} else {
		ret.conv, err = b.converter(field.Type)
	}
	if err != nil {
		return nil, fail(err)
	}
	ret.Kind = ret.conv.Kind
	return ret, nil
}

// checkKeys verifies that no two properties of s would be written to
// the same place in the wire object.
func checkKeys(s *Schema) error {
	all := append([]*Property(nil), s.Properties...)
	for _, g := range s.Groups {
		all = append(all, g.Properties...)
	}
	for i, p := range all {
		for _, o := range all[:i] {
			if p.Key.Overlaps(o.Key) {
				return &EncodeError{s.Name, p.Name, fmt.Errorf("wire key %q conflicts with key %q of field %s", p.Key, o.Key, o.Name)}
			}
		}
	}
	return nil
}

// encode writes the properties of the struct value v to a new wire
// object.
func (s *Schema) encode(ctx context.Context, v reflect.Value) (any, error) {
	var e fragments.Encoder
	for _, p := range s.Properties {
		if err := p.encode(ctx, s, &e, v.FieldByIndex(p.index)); err != nil {
			return nil, err
		}
	}
	for _, g := range s.Groups {
		gv := v.FieldByIndex(g.index)
		if gv.IsNil() {
			continue
		}
		gv = gv.Elem()
		for _, p := range g.Properties {
			if err := p.encode(ctx, s, &e, gv.FieldByIndex(p.index)); err != nil {
				return nil, err
			}
		}
	}
	return e.Object(), nil
}

func (p *Property) encode(ctx context.Context, s *Schema, e *fragments.Encoder, fv reflect.Value) error {
	if isNil(fv) {
		if !p.Required {
			return nil
		}
		if k := fv.Kind(); k == reflect.Pointer || k == reflect.Interface {
			return &EncodeError{s.Name, p.Name, ErrMissingProperty}
		}
	}
	w, err := p.conv.Encode(ctx, fv)
	if err != nil {
		return &EncodeError{s.Name, p.Name, err}
	}
	if err := e.Set(p.Key, w); err != nil {
		return &EncodeError{s.Name, p.Name, err}
	}
	return nil
}

// decode reads the properties of s from wire into the struct value
// v.
func (s *Schema) decode(ctx context.Context, wire any, v reflect.Value) error {
	d := fragments.Decoder{In: wire}
	if _, err := d.Object(); err != nil {
		return &DecodeError{Type: s.Name, Reason: err}
	}

	for _, p := range s.Properties {
		if _, err := p.decode(ctx, s, &d, v.FieldByIndex(p.index), true); err != nil {
			return err
		}
	}

	platform, hasPlatform := ContextPlatform(ctx)
	for _, g := range s.Groups {
		enforce := hasPlatform && platform == g.Platform
		gv := reflect.New(g.Type)
		found := false
		for _, p := range g.Properties {
			present, err := p.decode(ctx, s, &d, gv.Elem().FieldByIndex(p.index), enforce)
			if err != nil {
				return err
			}
			found = found || present
		}
		if found {
			v.FieldByIndex(g.index).Set(gv)
		}
	}

	if s.postDecode {
		if err := v.Addr().Interface().(PostDecoder).PostDecode(ctx); err != nil {
			return &DecodeError{Type: s.Name, Reason: err}
		}
	}
	return nil
}

// decode reads p's wire value from d into fv, and reports whether the
// key was present. Absent required properties are an error only if
// enforce is set. A key holding null leaves fv at its zero value,
// even for required properties.
func (p *Property) decode(ctx context.Context, s *Schema, d *fragments.Decoder, fv reflect.Value, enforce bool) (bool, error) {
	fail := func(err error) error {
		return &DecodeError{s.Name, p.Name, p.Key.String(), err}
	}
	raw, present, err := d.Get(p.Key)
	if err != nil {
		return false, fail(err)
	}
	if !present {
		if p.Required && enforce {
			return false, fail(ErrMissingProperty)
		}
		return false, nil
	}
	if raw == nil {
		fv.SetZero()
		return true, nil
	}
	if !p.Kind.Matches(raw) {
		return false, fail(kindErr(p.Kind, raw))
	}
	if err := p.conv.Decode(ctx, raw, fv); err != nil {
		return false, fail(err)
	}
	return true, nil
}
