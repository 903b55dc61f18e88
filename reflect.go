package bridge

import (
	"iter"
	"reflect"
)

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func isNil(v reflect.Value) bool {
	return nillableKinds.Has(v.Kind()) && v.IsNil()
}

// structFields iterates over the fields of t, descending into
// embedded structs as if their fields were declared in t. Embedded
// struct pointers are yielded as-is, so that the caller can reject
// them.
func structFields(t reflect.Type, idx []int) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for i := range t.NumField() {
			f := t.Field(i)
			idx = append(idx, i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Tag.Get("wire") == "" {
				for af := range structFields(f.Type, idx) {
					if !yield(af) {
						return
					}
				}
				idx = idx[:len(idx)-1]
				continue
			}
			f.Index = append([]int(nil), idx...)
			if !yield(f) {
				return
			}
			idx = idx[:len(idx)-1]
		}
	}
}
