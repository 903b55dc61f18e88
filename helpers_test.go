package bridge

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func ptr[T any](v T) *T { return &v }

// Address is a struct with a required and an optional field.
type Address struct {
	Street string `wire:"street,required"`
	Unit   *int   `wire:"unit"`
}

// Audit is embedded by value into Model.
type Audit struct {
	CreatedBy *string `wire:"created_by"`
}

// ModelIOS is the iOS group of Model.
type ModelIOS struct {
	Token     *string `wire:"identity.app_account_token"`
	Shareable bool    `wire:"is_family_shareable,required"`
}

// ModelAndroid is the Android group of Model.
type ModelAndroid struct {
	BasePlan string  `wire:"base_plan_id,required"`
	Account  *string `wire:"identity.obfuscated_account_id"`
}

// Model exercises every kind of property.
type Model struct {
	Audit
	ID      string               `wire:"id,required"`
	Count   int                  `wire:"count,required"`
	Ratio   *float64             `wire:"ratio"`
	Enabled bool                 `wire:"enabled,required"`
	Tags    []string             `wire:"tags"`
	Addr    *Address             `wire:"address"`
	Attrs   map[string]any       `wire:"attrs"`
	Nested  map[string][]Address `wire:"nested"`
	When    time.Time            `wire:"when,required"`
	Doc     map[string]any       `wire:"doc,document"`
	Color   *Color               `wire:"color"`
	IOS     *ModelIOS            `wire:",ios"`
	Android *ModelAndroid        `wire:",android"`
	Derived string               `wire:"-"`
	hidden  int
}

// Color is a Marshaler that encodes as an upper-case string.
type Color string

func (c Color) WireKind() Kind { return KindString }

func (c Color) MarshalWire(ctx context.Context) (any, error) {
	if c == "" {
		return nil, fmt.Errorf("empty color")
	}
	return strings.ToUpper(string(c)), nil
}

func (c *Color) UnmarshalWire(ctx context.Context, wire any) error {
	s := wire.(string)
	if s != strings.ToUpper(s) {
		return fmt.Errorf("color %q is not upper case", s)
	}
	*c = Color(strings.ToLower(s))
	return nil
}

// Defaults fills in empty maps after decoding.
type Defaults struct {
	Attrs   map[string]any `wire:"attrs"`
	Derived string         `wire:"-"`
}

func (d *Defaults) PostDecode(ctx context.Context) error {
	if d.Attrs == nil {
		d.Attrs = map[string]any{}
	}
	d.Derived = fmt.Sprintf("%d attrs", len(d.Attrs))
	return nil
}

// Recursive refers to itself.
type Recursive struct {
	Next *Recursive `wire:"next"`
}

// Untagged has an exported field without a wire tag.
type Untagged struct {
	A string `wire:"a,required"`
	B string
}

// Conflict has two keys that can't share one wire object.
type Conflict struct {
	A *string `wire:"a"`
	B *string `wire:"a.b"`
}

// GroupConflict has a group key that conflicts with a flat key.
type GroupConflict struct {
	A   *string      `wire:"a"`
	IOS *conflictIOS `wire:",ios"`
}

type conflictIOS struct {
	A *string `wire:"a"`
}

// OptionalValue has an optional property that can't be absent.
type OptionalValue struct {
	A string `wire:"a"`
}

// BadOption has an unknown tag option.
type BadOption struct {
	A string `wire:"a,requird"`
}

// BadGroup has a group that isn't a struct pointer.
type BadGroup struct {
	IOS ModelIOS `wire:",ios"`
}

// IntKeys has a map with non-string keys.
type IntKeys struct {
	M map[int]string `wire:"m"`
}
