// Package schemadoc renders human-readable references of wire
// schemas.
package schemadoc

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/creachadair/mds/mapset"

	"github.com/danderson/bridge"
)

type generator struct {
	out bytes.Buffer
	// queue is the struct types still to document, in discovery
	// order.
	queue []reflect.Type
	seen  mapset.Set[reflect.Type]
}

// Types returns a reference of the wire schemas of ts, and of every
// struct type reachable from their properties. Each type is listed
// once, in the order it is first reached.
func Types(ts ...reflect.Type) (string, error) {
	if len(ts) == 0 {
		return "", errors.New("no types provided")
	}
	g := generator{seen: mapset.New[reflect.Type]()}
	for _, t := range ts {
		g.enqueue(t)
	}
	if len(g.queue) == 0 {
		return "", fmt.Errorf("none of %v have a wire schema", ts)
	}
	for len(g.queue) > 0 {
		t := g.queue[0]
		g.queue = g.queue[1:]
		s, err := bridge.SchemaFor(t)
		if err != nil {
			return "", err
		}
		g.Schema(s)
	}
	return strings.TrimSpace(g.out.String()) + "\n", nil
}

func (g *generator) s(s string) {
	g.out.WriteString(s)
}

func (g *generator) f(msg string, args ...any) {
	fmt.Fprintf(&g.out, msg, args...)
}

// enqueue adds the struct type underlying t to the work queue, if it
// has a schema and hasn't been seen yet. It returns the struct type,
// or nil if t doesn't lead to a schema.
func (g *generator) enqueue(t reflect.Type) reflect.Type {
	t = structType(t)
	if t == nil {
		return nil
	}
	if _, err := bridge.SchemaFor(t); err != nil {
		return nil
	}
	if !g.seen.Has(t) {
		g.seen.Add(t)
		g.queue = append(g.queue, t)
	}
	return t
}

func (g *generator) Schema(s *bridge.Schema) {
	g.f("%s\n", s.Name)
	for _, p := range s.Properties {
		g.Property("", p)
	}
	for _, grp := range s.Groups {
		for _, p := range grp.Properties {
			g.Property(string(grp.Platform), p)
		}
	}
	g.s("\n")
}

func (g *generator) Property(platform string, p *bridge.Property) {
	g.s("  ")
	if platform != "" {
		g.f("[%s] ", platform)
	}
	g.f("%s: %s", p.Key, p.Kind)
	if p.Required {
		g.s(", required")
	}
	if p.Document {
		g.s(", document")
	}
	if st := g.enqueue(p.Type); st != nil {
		g.f(", see %s", st)
	}
	g.s("\n")
}

// structType returns the struct type at the bottom of t's pointers,
// slices and maps, or nil.
func structType(t reflect.Type) reflect.Type {
	for {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
			t = t.Elem()
		case reflect.Struct:
			return t
		default:
			return nil
		}
	}
}
