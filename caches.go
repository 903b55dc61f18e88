package bridge

import (
	"fmt"
	"reflect"
	"sync"
)

// cache is a concurrent map of per-type values. Entries are written
// once and never change afterwards.
type cache[V any] struct {
	m sync.Map
}

func (c *cache[V]) Get(t reflect.Type) (val V, found bool) {
	ent, ok := c.m.Load(t)
	if !ok {
		var zero V
		return zero, false
	}
	if val, ok := ent.(V); ok {
		return val, true
	}
	panic(fmt.Sprintf("mystery value %v (%T) in cache", ent, ent))
}

// Put stores val for t, unless another goroutine got there first. It
// returns the value that ended up in the cache.
func (c *cache[V]) Put(t reflect.Type, val V) V {
	ent, _ := c.m.LoadOrStore(t, val)
	return ent.(V)
}
