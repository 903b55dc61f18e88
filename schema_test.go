package bridge

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchemaOf(t *testing.T) {
	s, err := SchemaOf[Model]()
	if err != nil {
		t.Fatalf("SchemaOf[Model] failed: %v", err)
	}

	type prop struct {
		Name     string
		Key      string
		Required bool
		Kind     Kind
	}
	props := func(ps []*Property) []prop {
		var ret []prop
		for _, p := range ps {
			ret = append(ret, prop{p.Name, p.Key.String(), p.Required, p.Kind})
		}
		return ret
	}

	want := []prop{
		{"CreatedBy", "created_by", false, KindString},
		{"ID", "id", true, KindString},
		{"Count", "count", true, KindNumber},
		{"Ratio", "ratio", false, KindNumber},
		{"Enabled", "enabled", true, KindBool},
		{"Tags", "tags", false, KindArray},
		{"Addr", "address", false, KindObject},
		{"Attrs", "attrs", false, KindObject},
		{"Nested", "nested", false, KindObject},
		{"When", "when", true, KindString},
		{"Doc", "doc", false, KindString},
		{"Color", "color", false, KindString},
	}
	if diff := cmp.Diff(props(s.Properties), want); diff != "" {
		t.Errorf("wrong properties (-got+want):\n%s", diff)
	}

	if len(s.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(s.Groups))
	}
	ios := s.Group(PlatformIOS)
	if ios == nil || ios.Name != "IOS" || ios.Type != reflect.TypeFor[ModelIOS]() {
		t.Fatalf("wrong ios group %+v", ios)
	}
	wantIOS := []prop{
		{"Token", "identity.app_account_token", false, KindString},
		{"Shareable", "is_family_shareable", true, KindBool},
	}
	if diff := cmp.Diff(props(ios.Properties), wantIOS); diff != "" {
		t.Errorf("wrong ios properties (-got+want):\n%s", diff)
	}
	if android := s.Group(PlatformAndroid); android == nil || android.Name != "Android" {
		t.Errorf("wrong android group %+v", android)
	}

	// Pointers resolve to the same schema.
	ps, err := SchemaFor(reflect.TypeFor[*Model]())
	if err != nil {
		t.Fatalf("SchemaFor(*Model) failed: %v", err)
	}
	if ps != s {
		t.Errorf("SchemaFor(*Model) returned a different schema than SchemaOf[Model]")
	}

	str := s.String()
	for _, want := range []string{"bridge.Model", `"identity.app_account_token"`, "(required)", "(document)", "ios group IOS"} {
		if !strings.Contains(str, want) {
			t.Errorf("Schema.String() does not contain %q:\n%s", want, str)
		}
	}
}

func TestSchemaErrors(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeFor[Untagged](), "field B: exported field has no wire tag"},
		{reflect.TypeFor[Recursive](), "recursive type"},
		{reflect.TypeFor[Conflict](), `wire key "a.b" conflicts with key "a"`},
		{reflect.TypeFor[GroupConflict](), `wire key "a" conflicts with key "a"`},
		{reflect.TypeFor[OptionalValue](), "optional property must be"},
		{reflect.TypeFor[BadOption](), `unknown wire tag option "requird"`},
		{reflect.TypeFor[BadGroup](), "must be a pointer to a struct"},
		{reflect.TypeFor[IntKeys](), "map keys must be strings"},
		{reflect.TypeFor[string](), "not a struct"},
	}
	for _, tc := range tests {
		_, err := SchemaFor(tc.typ)
		if err == nil {
			t.Errorf("SchemaFor(%s) succeeded, want error", tc.typ)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("SchemaFor(%s) error %q does not contain %q", tc.typ, err, tc.want)
		}
	}
}
