package fragments

import "strings"

// A Path is a wire key split on its dot separators. A single-fragment
// Path addresses a top-level key, longer paths address keys in nested
// wire objects.
type Path []string

// ParsePath splits a dotted wire key into its fragments. It returns
// nil if key is empty or has an empty fragment.
func ParsePath(key string) Path {
	if key == "" {
		return nil
	}
	ret := Path(strings.Split(key, "."))
	for _, f := range ret {
		if f == "" {
			return nil
		}
	}
	return ret
}

// String returns the dotted form of p.
func (p Path) String() string {
	return strings.Join(p, ".")
}

// HasPrefix reports whether p starts with all the fragments of
// prefix.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether p and o cannot both be written to the same
// wire object, because one of them addresses a key that the other
// needs to be an object.
func (p Path) Overlaps(o Path) bool {
	return p.HasPrefix(o) || o.HasPrefix(p)
}
